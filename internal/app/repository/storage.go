package repository

import (
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/celerysoft/scholar-tool-manager/internal/app/config"
	"github.com/celerysoft/scholar-tool-manager/migrations"
)

type DBStorage struct {
	DBConn *sqlx.DB
}

func NewDBStorage(cfg config.AppConfig) *DBStorage {
	db := Open(cfg.DatabaseDSN)
	// Migrate the database
	err := MigrateFS(db, migrations.FS, ".")
	if err != nil {
		panic(err)
	}

	return &DBStorage{DBConn: db}
}

func Open(dsn string) *sqlx.DB {
	return sqlx.MustOpen("pgx", dsn)
}

func MigrateFS(db *sqlx.DB, fsys fs.FS, dir string) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db.DB, dir)
}
