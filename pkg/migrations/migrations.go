package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var bundled embed.FS

// Bundled returns the migrations shipped with the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// OpenPostgres opens a database/sql handle on dsn through the pgx driver.
func OpenPostgres(dsn string) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}
	return stdlib.OpenDB(*connCfg), nil
}

// MigrateStore applies every pending migration. The migrations are read from
// migrationFolder, or from the bundled set when the folder is empty.
func MigrateStore(db *sql.DB, dialect string, migrationFolder string) error {
	goose.SetLogger(&logger{})

	migrationsFS := Bundled()
	if migrationFolder != "" {
		fi, err := os.Stat(migrationFolder)
		if err != nil {
			return err
		}

		if !fi.Mode().IsDir() {
			return fmt.Errorf("failed to open migration folder: %s is not a folder", migrationFolder)
		}
		migrationsFS = os.DirFS(migrationFolder)
	}

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return goose.Up(db, ".")
}

/*
logger implements goose.Logger interface

	type Logger interface {
		Fatalf(format string, v ...interface{})
		Printf(format string, v ...interface{})
	}
*/
type logger struct{}

func (m *logger) Printf(format string, v ...interface{}) {
	zap.S().Named("migrations").Infof(format, v...)
}
func (m *logger) Fatalf(format string, v ...interface{}) {
	zap.S().Named("migrations").Fatalf(format, v...)
}
