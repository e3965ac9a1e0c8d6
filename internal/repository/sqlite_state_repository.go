package repository

import (
	"context"
	"database/sql"
	"errors"

	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS lifeos_records (
	name TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);`

type SQLiteStateRepo struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the database file at path.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.New("opening sqlite database error: " + err.Error())
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.New("pinging sqlite database error: " + err.Error())
	}
	return db, nil
}

func NewSQLiteStateRepo(db *sql.DB) (*SQLiteStateRepo, error) {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, errors.New("creating records table error: " + err.Error())
	}
	return &SQLiteStateRepo{db: db}, nil
}

func (sr *SQLiteStateRepo) Load(ctx context.Context) (*entity.State, error) {
	rows, err := sr.db.QueryContext(ctx, `SELECT name, value FROM lifeos_records WHERE name IN (?, ?);`, ProfileRecord, DataRecord)
	if err != nil {
		return nil, errors.New("loading state error: " + err.Error())
	}
	defer rows.Close()
	records := make(map[string][]byte, 2)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, errors.New("scanning record error: " + err.Error())
		}
		records[name] = []byte(value)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	if len(records) < 2 {
		return nil, errorvalues.ErrNoState
	}
	return decodeState(records[ProfileRecord], records[DataRecord])
}

func (sr *SQLiteStateRepo) Save(ctx context.Context, profile *entity.Profile, data *entity.AppData) error {
	p, d, err := encodeState(profile, data)
	if err != nil {
		return err
	}
	tx, err := sr.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback()
	const upsert = `INSERT INTO lifeos_records (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now');`
	if _, err := tx.ExecContext(ctx, upsert, ProfileRecord, string(p)); err != nil {
		return errors.New("saving profile error: " + err.Error())
	}
	if _, err := tx.ExecContext(ctx, upsert, DataRecord, string(d)); err != nil {
		return errors.New("saving app data error: " + err.Error())
	}
	if err := tx.Commit(); err != nil {
		return errors.New("committing state error: " + err.Error())
	}
	return nil
}

func (sr *SQLiteStateRepo) Reset(ctx context.Context) error {
	_, err := sr.db.ExecContext(ctx, `DELETE FROM lifeos_records WHERE name IN (?, ?);`, ProfileRecord, DataRecord)
	if err != nil {
		return errors.New("resetting state error: " + err.Error())
	}
	return nil
}

var _ StateRepositoryI = (*SQLiteStateRepo)(nil)
