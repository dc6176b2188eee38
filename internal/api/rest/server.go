// Package rest exposes the operational HTTP surface: health, a manual run
// trigger and run status. It is not a data API; consumers read the database.
package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/pipeline"
	"github.com/fortuna/courtside/internal/store"
)

// Server is the REST API server.
type Server struct {
	server *http.Server
	log    *zap.Logger
}

// NewServer creates the REST server and wires its routes.
func NewServer(port int, db *store.Database, svc *pipeline.Service, defaultWindow store.Window, log *zap.Logger) *Server {
	handler := NewHandler(db, svc, defaultWindow, log)

	router := mux.NewRouter()
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggingMiddleware(log))

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/pipeline/run", handler.TriggerRun).Methods("POST")
	api.HandleFunc("/pipeline/status", handler.RunStatus).Methods("GET")

	return &Server{
		log: log,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.log.Info("rest server listening", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts the server down.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
