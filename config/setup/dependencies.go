package setup

import (
	"context"
	"fmt"
	"log/slog"

	"quick-notes/app"
	"quick-notes/config"
	"quick-notes/database"
	"quick-notes/session"
	"quick-notes/storage"
)

// Resources are the long-lived handles main must release on shutdown.
type Resources struct {
	Store    *database.Store
	Prefs    storage.PreferenceStore
	Sessions *session.Store
}

// InitStore opens the notes database. It must succeed before anything else
// touches notes.
func InitStore(ctx context.Context, dbPath string, logger *slog.Logger) (*database.Store, error) {
	store := database.NewStore(dbPath)
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return store, nil
}

// InitApp initializes the application with all dependencies
func InitApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app.App, *Resources, error) {
	store, err := InitStore(ctx, cfg.DBPath, logger)
	if err != nil {
		return nil, nil, err
	}

	prefs, err := storage.NewPreferenceStore(ctx, storage.Options{
		Backend:  cfg.PrefsBackend,
		Path:     cfg.PrefsPath,
		RedisURL: cfg.RedisURL,
	})
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	logger.Info("preference store initialized", "backend", cfg.PrefsBackend)

	sessions := session.NewStore(cfg.SessionTTL, cfg.SessionCleanup)
	logger.Info("editor session store initialized", "ttl", cfg.SessionTTL)

	application := app.New(store, sessions, prefs, logger, cfg.Env)

	// Preferences are read once at startup so a broken backend shows up now
	loaded, err := application.Preferences.Load(ctx)
	if err != nil {
		logger.Warn("failed to read preferences", "error", err)
	} else {
		logger.Info("preferences loaded", "dark_mode", loaded.DarkMode, "sidebar_collapsed", loaded.SidebarCollapsed)
	}

	return application, &Resources{Store: store, Prefs: prefs, Sessions: sessions}, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(res *Resources, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if res == nil {
		return
	}

	if res.Sessions != nil {
		res.Sessions.Flush()
		logger.Info("editor sessions discarded")
	}

	if res.Prefs != nil {
		if err := res.Prefs.Close(); err != nil {
			logger.Error("failed to close preference store", "error", err)
		}
	}

	if res.Store != nil {
		if err := res.Store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		} else {
			logger.Info("database closed")
		}
	}
}
