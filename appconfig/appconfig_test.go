package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	for _, tt := range []struct {
		msg     string
		envs    map[string]string
		wantErr string
	}{
		{
			msg:     "it should fail without a database uri",
			envs:    map[string]string{"JWT_SECRET_KEY": "secret"},
			wantErr: "POSTGRES_DB_URI env is empty",
		},
		{
			msg:     "it should fail without a jwt secret",
			envs:    map[string]string{"POSTGRES_DB_URI": "postgres://x:y@localhost:5432/db"},
			wantErr: "JWT_SECRET_KEY env is empty",
		},
		{
			msg: "it should load with the required envs",
			envs: map[string]string{
				"POSTGRES_DB_URI": "postgres://x:y@localhost:5432/db",
				"JWT_SECRET_KEY":  "secret",
			},
		},
	} {
		t.Run(tt.msg, func(t *testing.T) {
			t.Setenv("POSTGRES_DB_URI", "")
			t.Setenv("JWT_SECRET_KEY", "")
			t.Setenv("PORT", "")
			t.Setenv("MIGRATION_PATH_FILES", "")
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			err := Load()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			conf := Get()
			assert.True(t, conf.IsLoaded())
			assert.Equal(t, "postgres://x:y@localhost:5432/db", conf.PgURI())
			assert.Equal(t, []byte("secret"), conf.JWTSecretKey())
			assert.Equal(t, "8080", conf.ApiPort())
			assert.Equal(t, "models/bootstrap/migrations", conf.MigrationPathFiles())
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POSTGRES_DB_URI", "postgres://x:y@localhost:5432/db")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("MIGRATION_PATH_FILES", "/var/lib/orgspace/migrations")

	assert.NoError(t, Load())
	assert.Equal(t, "9000", Get().ApiPort())
	assert.Equal(t, "/var/lib/orgspace/migrations", Get().MigrationPathFiles())
}
