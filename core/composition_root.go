package core

import (
	"context"
	"fmt"
	"log"

	"github.com/status-im/market-dashboard/api"
	"github.com/status-im/market-dashboard/coingecko"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/favorites"
	"github.com/status-im/market-dashboard/render"
	"github.com/status-im/market-dashboard/storage"
)

// App exposes the wired components so callers and tests can reach them
type App struct {
	Registry   *Registry
	Storage    storage.Storage
	Favorites  *favorites.Store
	Client     *coingecko.Client
	Controller *dashboard.Controller
	Hub        *api.Hub
	Server     *api.Server
}

// storageCloser closes the storage backend when the registry stops
type storageCloser struct {
	storage storage.Storage
}

func (c *storageCloser) Start(ctx context.Context) error { return nil }

func (c *storageCloser) Stop() {
	if err := c.storage.Close(); err != nil {
		log.Printf("Core: failed to close storage: %v", err)
	}
}

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config, opts ...coingecko.Option) (*App, error) {
	st, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	renderer, err := render.New()
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Watcher picks up favorites written by other processes sharing the backend
	watcher := storage.NewWatcher(st, cfg.Favorites.GetKey(), cfg.Storage.GetWatchInterval())
	store := favorites.NewStore(st, cfg.Favorites.GetKey(), watcher)

	client := coingecko.NewClient(&cfg.CoinGecko, opts...)
	controller := dashboard.NewController(client, store, cfg.Dashboard.GetPerPage(), cfg.Dashboard.GetRefreshInterval())

	hub := api.NewHub(cfg.WebSocket, controller)
	server := api.New(cfg.GetListenPort(), controller, client, store, renderer, hub)

	registry := NewRegistry()
	registry.Register("storage", &storageCloser{storage: st})
	registry.Register("storage watcher", watcher)
	registry.Register("favorites", store)
	registry.Register("dashboard", controller)
	registry.Register("websocket hub", hub)
	registry.Register("http server", server)

	return &App{
		Registry:   registry,
		Storage:    st,
		Favorites:  store,
		Client:     client,
		Controller: controller,
		Hub:        hub,
		Server:     server,
	}, nil
}
