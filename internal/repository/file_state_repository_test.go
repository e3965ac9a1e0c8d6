package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStateRepo(t *testing.T) {
	dir := t.TempDir()
	repo, err := repository.NewFileStateRepo(dir)
	require.NoError(t, err)
	ctx := context.Background()
	profile, data := testState()

	t.Run("no state on first run", func(t *testing.T) {
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrNoState)
	})
	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, profile, data))
		st, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, *profile, st.Profile)
		assert.Equal(t, *data, st.Data)
	})
	t.Run("overwrite keeps no temp files", func(t *testing.T) {
		data.Streak = 2
		require.NoError(t, repo.Save(ctx, profile, data))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		st, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, st.Data.Streak)
	})
	t.Run("corrupt data file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, repository.DataRecord+".json"), []byte("{not json"), 0o644))
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrCorruptState)
	})
	t.Run("empty profile file", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, profile, data))
		require.NoError(t, os.WriteFile(filepath.Join(dir, repository.ProfileRecord+".json"), nil, 0o644))
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrCorruptState)
	})
	t.Run("reset", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, profile, data))
		require.NoError(t, repo.Reset(ctx))
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrNoState)
		// nothing left to remove
		assert.NoError(t, repo.Reset(ctx))
	})
}

func TestFileStateRepoReadsLegacyFields(t *testing.T) {
	dir := t.TempDir()
	repo, err := repository.NewFileStateRepo(dir)
	require.NoError(t, err)
	profile := `{"name":"Sam","age":"30+","focus":"Fitness & Health","struggle":"Overwhelm","style":"Soft","joinedDate":"2026-01-05T10:00:00Z"}`
	data := `{"logs":[{"id":"0195f1a2-0000-7000-8000-00000000000a","date":"2026-01-06T21:00:00Z","focus":"8","wastedTime":2,"wins":"gym","failures":"","mood":"Neutral","feedback":"ok"}],"goals":[],"lifeScore":50,"streak":1,"lastLogin":null}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, repository.ProfileRecord+".json"), []byte(profile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, repository.DataRecord+".json"), []byte(data), 0o644))

	st, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sam", st.Profile.Name)
	require.Len(t, st.Data.Logs, 1)
	assert.EqualValues(t, 8, st.Data.Logs[0].Focus)
	assert.EqualValues(t, "2", st.Data.Logs[0].WastedTime)
	assert.Nil(t, st.Data.LastLogin)
}
