package httpserver

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"janggi/internal/server/game"
)

// Options tune NewRouter. A zero value serves only the API and logs every
// request to log.Default().
type Options struct {
	Logger    *log.Logger
	WebDir    string // empty: no static files
	AccessLog bool
}

// NewRouter wires the game API, the websocket feed and optional static
// files behind the request-id / recover / access-log middleware.
func NewRouter(mgr *game.Manager, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	h := NewHandler(mgr)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", h.handleNewGame).Methods(http.MethodPost)
	api.HandleFunc("/games/{gameID}", h.handleState).Methods(http.MethodGet)
	api.HandleFunc("/games/{gameID}/moves", h.handlePlay).Methods(http.MethodPost)
	api.HandleFunc("/games/{gameID}/moves", h.handleDestinations).Methods(http.MethodGet)
	api.HandleFunc("/games/{gameID}/check", h.handleCheck).Methods(http.MethodGet)
	api.HandleFunc("/games/{gameID}/ws", h.handleWatch).Methods(http.MethodGet)
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	})

	if opts.WebDir != "" {
		RegisterStaticRoutes(r, opts.WebDir)
	}

	r.Use(withRequestID, withRecover(logger))
	if opts.AccessLog {
		r.Use(withAccessLog(logger))
	}
	return r
}
