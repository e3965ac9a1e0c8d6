package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresLoadState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostgresStateRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT name, value::text FROM lifeos_records WHERE name IN ($1, $2);`)
	ctx := context.Background()
	profile, data := testState()
	p, err := sonic.ConfigStd.Marshal(profile)
	require.NoError(t, err)
	d, err := sonic.ConfigStd.Marshal(data)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(repository.ProfileRecord, repository.DataRecord).
			WillReturnRows(pgxmock.NewRows([]string{"name", "value"}).
				AddRow(repository.ProfileRecord, string(p)).
				AddRow(repository.DataRecord, string(d)),
			)
		st, err := repo.Load(ctx)
		assert.NoError(t, err)
		assert.Equal(t, *profile, st.Profile)
		assert.Equal(t, *data, st.Data)
	})
	t.Run("missing record", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(repository.ProfileRecord, repository.DataRecord).
			WillReturnRows(pgxmock.NewRows([]string{"name", "value"}).
				AddRow(repository.ProfileRecord, string(p)),
			)
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrNoState)
	})
	t.Run("corrupt record", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(repository.ProfileRecord, repository.DataRecord).
			WillReturnRows(pgxmock.NewRows([]string{"name", "value"}).
				AddRow(repository.ProfileRecord, string(p)).
				AddRow(repository.DataRecord, `{"logs": 12}`),
			)
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrCorruptState)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(repository.ProfileRecord, repository.DataRecord).
			WillReturnError(errors.New("db error"))
		_, err := repo.Load(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrNoState)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostgresStateRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO lifeos_records (name, value) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`)
	ctx := context.Background()
	profile, data := testState()

	t.Run("both records in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(repository.ProfileRecord, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(query).
			WithArgs(repository.DataRecord, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		err := repo.Save(ctx, profile, data)
		assert.NoError(t, err)
	})
	t.Run("rolls back on failure", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(repository.ProfileRecord, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(query).
			WithArgs(repository.DataRecord, pgxmock.AnyArg()).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := repo.Save(ctx, profile, data)
		assert.Error(t, err)
	})
	t.Run("nil record", func(t *testing.T) {
		err := repo.Save(ctx, nil, data)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresResetAndMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostgresStateRepoWithConn(mock)
	ctx := context.Background()
	t.Run("migrate", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS lifeos_records`)).
			WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
		assert.NoError(t, repo.Migrate(ctx))
	})
	t.Run("reset", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM lifeos_records WHERE name IN ($1, $2);`)).
			WithArgs(repository.ProfileRecord, repository.DataRecord).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		assert.NoError(t, repo.Reset(ctx))
	})
	t.Run("reset db error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM lifeos_records WHERE name IN ($1, $2);`)).
			WithArgs(repository.ProfileRecord, repository.DataRecord).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Reset(ctx))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
