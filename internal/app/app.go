// Package app wires the backend dependency graph from configuration.
// Both the CLI commands and the bridge server build their collaborators
// through it, so the two surfaces always behave identically.
package app

import (
	"log/slog"
	"path/filepath"

	"agentdeck/internal/analytics"
	"agentdeck/internal/bridge"
	"agentdeck/internal/config"
	"agentdeck/internal/marketplace"
	"agentdeck/internal/memory"
	"agentdeck/internal/paths"
	"agentdeck/internal/session"
	"agentdeck/internal/store"
	"agentdeck/internal/sync"
	"agentdeck/internal/theme"
)

// App is the assembled backend.
type App struct {
	Config    *config.Config
	Store     *store.Store
	Memory    *memory.Store
	Session   *session.Store
	Syncer    *sync.Syncer
	Market    *marketplace.Client
	Installer *marketplace.Installer
	Analytics *analytics.Client
	Bridge    *bridge.Bridge
	Theme     theme.Theme
	Log       *slog.Logger
}

// New assembles an App from an already-loaded config.
func New(cfg *config.Config, log *slog.Logger) *App {
	storeDir := cfg.EffectiveStoreDir()
	st := store.New(storeDir)
	mem := memory.NewStore(filepath.Join(storeDir, "memory"))
	syncer := sync.New(st, sync.DefaultTargets(), log)
	market := marketplace.NewClient(cfg.Marketplace.Endpoint, log)
	installer := marketplace.NewInstaller(st)

	track := analytics.New(log)
	track.Init(cfg.Analytics.UserID, cfg.Analytics.Enabled)

	a := &App{
		Config:    cfg,
		Store:     st,
		Memory:    mem,
		Session:   session.NewStore(paths.SessionPath()),
		Syncer:    syncer,
		Market:    market,
		Installer: installer,
		Analytics: track,
		Theme:     theme.Get(cfg.Theme),
		Log:       log,
	}
	a.Bridge = bridge.New(bridge.Deps{
		Store:     st,
		Memory:    mem,
		Syncer:    syncer,
		Market:    market,
		Installer: installer,
		Analytics: track,
		Log:       log,
	})
	return a
}

// Load reads configuration and assembles an App.
func Load(log *slog.Logger) (*App, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	return New(cfg, log), nil
}
