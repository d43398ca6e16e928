package appconfig

import (
	"fmt"
	"net/url"
	"os"
)

// Config is the runtime configuration of the gateway. It is loaded
// once at startup and must not be mutated afterwards.
type Config struct {
	pgURI              string
	jwtSecretKey       []byte
	apiPort            string
	migrationPathFiles string

	isLoaded bool
}

var runtimeConfig Config

// Load validates for any errors and sets the runtime config.
func Load() error {
	pgURI := os.Getenv("POSTGRES_DB_URI")
	if pgURI == "" {
		return fmt.Errorf("POSTGRES_DB_URI env is empty")
	}
	if _, err := url.Parse(pgURI); err != nil {
		return fmt.Errorf("POSTGRES_DB_URI env is not a valid connection uri: %v", err)
	}
	jwtSecretKey := os.Getenv("JWT_SECRET_KEY")
	if jwtSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY env is empty")
	}
	apiPort := os.Getenv("PORT")
	if apiPort == "" {
		apiPort = "8080"
	}
	migrationPathFiles := os.Getenv("MIGRATION_PATH_FILES")
	if migrationPathFiles == "" {
		migrationPathFiles = "models/bootstrap/migrations"
	}
	runtimeConfig = Config{
		pgURI:              pgURI,
		jwtSecretKey:       []byte(jwtSecretKey),
		apiPort:            apiPort,
		migrationPathFiles: migrationPathFiles,
		isLoaded:           true,
	}
	return nil
}

func Get() Config { return runtimeConfig }

func (c Config) PgURI() string              { return c.pgURI }
func (c Config) JWTSecretKey() []byte       { return c.jwtSecretKey }
func (c Config) ApiPort() string            { return c.apiPort }
func (c Config) MigrationPathFiles() string { return c.migrationPathFiles }
func (c Config) IsLoaded() bool             { return c.isLoaded }
