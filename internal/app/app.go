package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limbo/lifeos/internal/coach"
	"github.com/limbo/lifeos/internal/provider/gemini"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/cleanup"
	"github.com/limbo/lifeos/pkg/config"
	"go.uber.org/zap"
)

// Options override config values, e.g. from command line flags.
type Options struct {
	Backend  string
	StateDir string
}

func ResolveBackend(cfg *config.Config, opts Options) string {
	if b := strings.TrimSpace(opts.Backend); b != "" {
		return strings.ToLower(b)
	}
	return strings.ToLower(cfg.GetString("STORE_BACKEND"))
}

// ResolveStateDir falls back to <user config dir>/lifeos.
func ResolveStateDir(cfg *config.Config, opts Options) (string, error) {
	if d := strings.TrimSpace(opts.StateDir); d != "" {
		return d, nil
	}
	if d := cfg.GetString("STATE_DIR"); d != "" {
		return d, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.New("resolving config dir error: " + err.Error())
	}
	return filepath.Join(base, "lifeos"), nil
}

// OpenStore builds the configured state repository. Connections it opens are
// registered with cleanup.
func OpenStore(ctx context.Context, cfg *config.Config, opts Options) (repository.StateRepositoryI, error) {
	switch b := ResolveBackend(cfg, opts); b {
	case "file":
		dir, err := ResolveStateDir(cfg, opts)
		if err != nil {
			return nil, err
		}
		repo, err := repository.NewFileStateRepo(dir)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case "sqlite":
		path := cfg.GetString("SQLITE_PATH")
		if path == "" {
			dir, err := ResolveStateDir(cfg, opts)
			if err != nil {
				return nil, err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.New("creating state dir error: " + err.Error())
			}
			path = filepath.Join(dir, "lifeos.db")
		}
		db, err := repository.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		cleanup.Register(&cleanup.Job{Name: "closing sqlite database", F: db.Close})
		repo, err := repository.NewSQLiteStateRepo(db)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case "postgres":
		repo := repository.NewPostgresStateRepo(&repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		})
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case "redis":
		return repository.NewRedisStateRepo(&repository.RedisCfg{
			Address:  cfg.GetString("REDIS_ADDRESS"),
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected file, sqlite, postgres or redis)", b)
	}
}

func NewCoach(cfg *config.Config, l *zap.Logger) *coach.Client {
	return coach.NewClient(&gemini.Client{
		APIKey:  cfg.GetString("GEMINI_API_KEY"),
		Model:   cfg.GetString("GEMINI_MODEL"),
		BaseURL: cfg.GetString("GEMINI_BASE_URL"),
	}, cfg.GetDuration("AI_TIMEOUT"), l)
}

// NewTracker opens the store and loads the saved state into a tracker.
func NewTracker(ctx context.Context, cfg *config.Config, opts Options, l *zap.Logger) (*service.TrackerService, error) {
	repo, err := OpenStore(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}
	l.Debug("state store ready", zap.String("backend", ResolveBackend(cfg, opts)))
	guard := coach.NewGuard(coach.WithQueueWait(cfg.GetDuration("AI_TIMEOUT")))
	return service.NewTrackerService(ctx, repo, NewCoach(cfg, l), service.WithLogger(l), service.WithGuard(guard))
}
