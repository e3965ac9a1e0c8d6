package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/cleanup"
	"github.com/limbo/lifeos/pkg/entity"
)

const (
	pgSchemaQuery = `CREATE TABLE IF NOT EXISTS lifeos_records (name TEXT PRIMARY KEY, value JSONB NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW());`
	pgLoadQuery   = `SELECT name, value::text FROM lifeos_records WHERE name IN ($1, $2);`
	pgUpsertQuery = `INSERT INTO lifeos_records (name, value) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`
	pgResetQuery  = `DELETE FROM lifeos_records WHERE name IN ($1, $2);`
)

type PostgresStateRepo struct {
	conn PgConnection
}

func NewPostgresStateRepo(cfg DBConfig) *PostgresStateRepo {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for stateRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for stateRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PostgresStateRepo{
		conn: pool,
	}
}

func NewPostgresStateRepoWithConn(conn PgConnection) *PostgresStateRepo {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for stateRepo: " + err.Error())
	}
	return &PostgresStateRepo{
		conn: conn,
	}
}

// Migrate creates the records table when it doesn't exist yet.
func (pr *PostgresStateRepo) Migrate(ctx context.Context) error {
	if _, err := pr.conn.Exec(ctx, pgSchemaQuery); err != nil {
		return errors.New("creating records table error: " + err.Error())
	}
	return nil
}

func (pr *PostgresStateRepo) Load(ctx context.Context) (*entity.State, error) {
	rows, err := pr.conn.Query(ctx, pgLoadQuery, ProfileRecord, DataRecord)
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

func (pr *PostgresStateRepo) Save(ctx context.Context, profile *entity.Profile, data *entity.AppData) error {
	p, d, err := encodeState(profile, data)
	if err != nil {
		return err
	}
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	if _, err := tx.Exec(ctx, pgUpsertQuery, ProfileRecord, string(p)); err != nil {
		return errors.New("saving profile error: " + err.Error())
	}
	if _, err := tx.Exec(ctx, pgUpsertQuery, DataRecord, string(d)); err != nil {
		return errors.New("saving app data error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing state error: " + err.Error())
	}
	return nil
}

func (pr *PostgresStateRepo) Reset(ctx context.Context) error {
	_, err := pr.conn.Exec(ctx, pgResetQuery, ProfileRecord, DataRecord)
	if err != nil {
		return errors.New("resetting state error: " + err.Error())
	}
	return nil
}

var _ StateRepositoryI = (*PostgresStateRepo)(nil)
