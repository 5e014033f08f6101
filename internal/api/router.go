package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmazur/sketchbluff/internal/api/handler"
	"github.com/tmazur/sketchbluff/internal/api/middleware"
	"github.com/tmazur/sketchbluff/internal/services/phrases"
	"github.com/tmazur/sketchbluff/internal/storage"
	"github.com/tmazur/sketchbluff/internal/transport/ws"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Storage        storage.Storage
	PhrasesService *phrases.Service
	WSHandler      *ws.Handler
}

// NewRouter creates a new router with all routes configured. The
// game protocol itself runs over /ws; the REST surface is the small
// set of lookups a client needs before it has a connection.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	phrasesHandler := handler.NewPhrasesHandler(cfg.PhrasesService)
	roomsHandler := handler.NewRoomsHandler(cfg.Storage)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/rooms/{id}", roomsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/phrases/suggestions", phrasesHandler.Suggestions).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.Handle("/ws", cfg.WSHandler)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
