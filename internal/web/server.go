package web

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/trends-intl/internal/geo"
	"github.com/trends-intl/internal/match"
	"github.com/trends-intl/internal/overrides"
	"github.com/trends-intl/internal/store"
	"github.com/trends-intl/internal/web/handlers"
	"github.com/trends-intl/internal/web/middleware"
)

// Server represents the dashboard API server
type Server struct {
	config     *Config
	db         *sql.DB
	store      *store.Store
	catalog    *geo.Catalog
	terms      *overrides.TermTable
	resolver   *match.Resolver
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new server instance
func NewServer(config *Config) (*Server, error) {
	db, err := sql.Open("postgres", config.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(config.Database.MaxConnections)
	db.SetMaxIdleConns(config.Database.MaxConnections / 2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	server := &Server{
		config:   config,
		db:       db,
		store:    store.New(db),
		catalog:  geo.NewCatalog(config.Data.CatalogDir),
		resolver: match.NewResolver(config.Data.Threshold),
	}

	// Term grouping is optional; without the CSV every term maps to itself.
	if config.Data.TermGroupsCSV != "" {
		terms, err := overrides.LoadTermTable(config.Data.TermGroupsCSV)
		if err != nil {
			fmt.Printf("Warning: term groups not loaded: %v\n", err)
		} else {
			server.terms = terms
		}
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	trendsHandler := &handlers.TrendsHandler{Store: s.store, Terms: s.terms}
	regionsHandler := &handlers.RegionsHandler{Store: s.store, Catalog: s.catalog, Resolver: s.resolver}
	statsHandler := &handlers.StatsHandler{Store: s.store}

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/countries", trendsHandler.ListCountries).Methods("GET")
	api.HandleFunc("/trends", trendsHandler.ListTrends).Methods("GET")
	api.HandleFunc("/trends/top-terms", trendsHandler.TopTerms).Methods("GET")
	api.HandleFunc("/terms/{term}/countries", trendsHandler.TermCountries).Methods("GET")

	api.HandleFunc("/regions/{iso3}/geojson", regionsHandler.GetGeoJSON).Methods("GET")
	api.HandleFunc("/regions/{iso3}", regionsHandler.ListRegionNames).Methods("GET")
	api.HandleFunc("/resolve", regionsHandler.Resolve).Methods("GET")

	api.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging())
}

// Start starts the web server and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("Server shutdown error: %v\n", err)
	}

	if err := s.db.Close(); err != nil {
		fmt.Printf("Database close error: %v\n", err)
	}

	fmt.Println("Server stopped")
	return nil
}
