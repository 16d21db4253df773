// Package app wires the process-wide dependencies and runs the TUI. One
// session store and one API client are created at startup and injected
// into every screen that needs them.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/screens"
	"github.com/kerbaras/anitrack/pkg/config"
	"github.com/kerbaras/anitrack/pkg/logger"
	"github.com/kerbaras/anitrack/pkg/session"
)

type App struct {
	cfg    *config.Config
	client *api.Client
	store  *session.Store
}

// New builds the dependency graph: token file first, then the API client
// reading the token through it, then the session store on top of both.
func New(cfg *config.Config) *App {
	tokens := session.NewTokenFile(cfg.TokenFile)
	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, tokens.Current)
	store := session.NewStore(client, tokens)
	return &App{cfg: cfg, client: client, store: store}
}

// Session exposes the store for non-interactive commands.
func (a *App) Session() *session.Store {
	return a.store
}

// Client exposes the API client for non-interactive commands.
func (a *App) Client() *api.Client {
	return a.client
}

func (a *App) Run() error {
	defer logger.Sync()

	root := screens.NewRootScreen(a.store, a.client)
	p := tea.NewProgram(root, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
