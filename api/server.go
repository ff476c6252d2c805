package api

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/render"
)

type Server struct {
	port       string
	controller *dashboard.Controller
	client     interfaces.IMarketDataClient
	favorites  interfaces.IFavoritesStore
	renderer   *render.Renderer
	hub        *Hub
	server     *http.Server
}

func New(port string, controller *dashboard.Controller, client interfaces.IMarketDataClient, favorites interfaces.IFavoritesStore, renderer *render.Renderer, hub *Hub) *Server {
	return &Server{
		port:       port,
		controller: controller,
		client:     client,
		favorites:  favorites,
		renderer:   renderer,
		hub:        hub,
	}
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	// Dashboard pages
	router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	router.HandleFunc("/coins/{id}", s.handleCoinPage).Methods(http.MethodGet)

	// Form actions, each answered with 303 to /
	router.HandleFunc("/tab", s.handleSetTab).Methods(http.MethodPost)
	router.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost)
	router.HandleFunc("/sort", s.handleSort).Methods(http.MethodPost)
	router.HandleFunc("/page/next", s.handleNextPage).Methods(http.MethodPost)
	router.HandleFunc("/page/prev", s.handlePrevPage).Methods(http.MethodPost)
	router.HandleFunc("/refresh", s.handleRefresh).Methods(http.MethodPost)
	router.HandleFunc("/favorites/clear", s.handleClearFavorites).Methods(http.MethodPost)
	router.HandleFunc("/favorites/{id}/toggle", s.handleToggleFavorite).Methods(http.MethodPost)

	// JSON endpoints; search must precede {id}
	router.HandleFunc("/api/v1/coins", s.handleCoins).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins/search", s.handleSearchCoins).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins/{id}", s.handleCoinDetail).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/favorites", s.handleFavorites).Methods(http.MethodGet)

	if s.hub != nil {
		router.Handle("/ws", s.hub)
	}
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(render.StaticFiles()))))

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:        ":" + s.port,
		Handler:     s.Router(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}
