package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/lifeos/pkg/entity"
)

// Record names, shared by every backend
const (
	ProfileRecord = "lifeos_user"
	DataRecord    = "lifeos_data"
)

type StateRepositoryI interface {
	// Reads both records. ErrNoState if any is missing, ErrCorruptState if any can't be decoded
	Load(ctx context.Context) (*entity.State, error)
	// Overwrites both records as a whole
	Save(ctx context.Context, profile *entity.Profile, data *entity.AppData) error
	// Deletes both records
	Reset(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
