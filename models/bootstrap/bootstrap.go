package modelsbootstrap

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/orgspacehq/orgspace/common/log"
)

// MigrateDB runs the schema migrations. It is safe to run on every startup,
// an up to date database is a no-op.
func MigrateDB(postgresURI, migrationPathFiles string) error {
	sourceURL := "file://" + migrationPathFiles
	m, err := migrate.New(sourceURL, postgresURI)
	if err != nil {
		return fmt.Errorf("failed initializing db migration, err=%v", err)
	}
	ver, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed obtaining db migration version, err=%v", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state, requires manual intervention to fix it")
	}
	log.Infof("loaded migration version=%v, is-nil-version=%v", ver, err == migrate.ErrNilVersion)
	err = m.Up()
	switch err {
	case migrate.ErrNilVersion, migrate.ErrNoChange, nil:
		log.Infof("processed db migration with success, nochange=%v", err == migrate.ErrNoChange)
	default:
		return fmt.Errorf("failed running db migration, err=%v", err)
	}
	return nil
}
