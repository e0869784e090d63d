package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"janggi/internal/janggi"
	"janggi/internal/server/game"
)

// Handler serves /api/games/*.
type Handler struct {
	mgr      *game.Manager
	upgrader websocket.Upgrader
}

func NewHandler(mgr *game.Manager) *Handler {
	return &Handler{
		mgr: mgr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the local server is opened from the browser on the same machine
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// empty body means the standard opening
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	var (
		snap game.Snapshot
		err  error
	)
	if req.Position == "" {
		snap, err = h.mgr.NewGame(r.Context())
	} else {
		snap, err = h.mgr.NewGameFromFEN(r.Context(), req.Position)
	}
	if err != nil {
		writeMgrError(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, snapshotToResponse(snap))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := h.mgr.Get(mux.Vars(r)["gameID"])
	if err != nil {
		writeMgrError(w, err)
		return
	}
	writeJSON(w, snapshotToResponse(snap))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	from, err := janggi.ParseSquare(req.From)
	if err != nil {
		writeMgrError(w, err)
		return
	}
	to, err := janggi.ParseSquare(req.To)
	if err != nil {
		writeMgrError(w, err)
		return
	}

	snap, err := h.mgr.Play(r.Context(), mux.Vars(r)["gameID"], from, to)
	if err != nil && snap.ID == "" {
		writeMgrError(w, err)
		return
	}
	if err != nil {
		// applied in memory, persistence failed
		log.Printf("play %s: %v", snap.ID, err)
	}
	writeJSON(w, snapshotToResponse(snap))
}

func (h *Handler) handleDestinations(w http.ResponseWriter, r *http.Request) {
	from, err := janggi.ParseSquare(r.URL.Query().Get("from"))
	if err != nil {
		writeMgrError(w, err)
		return
	}
	dests, err := h.mgr.LegalDestinations(mux.Vars(r)["gameID"], from)
	if err != nil {
		writeMgrError(w, err)
		return
	}
	resp := DestinationsResponse{From: from.String(), Destinations: make([]string, len(dests))}
	for i, d := range dests {
		resp.Destinations[i] = d.String()
	}
	writeJSON(w, resp)
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	side, ok := janggi.ParseSide(r.URL.Query().Get("side"))
	if !ok {
		writeError(w, http.StatusBadRequest, "side must be red or blue")
		return
	}
	inCheck, mate, err := h.mgr.CheckStatus(mux.Vars(r)["gameID"], side)
	if err != nil {
		writeMgrError(w, err)
		return
	}
	writeJSON(w, CheckResponse{Side: side.String(), InCheck: inCheck, InCheckmate: mate})
}

// statusFor maps rule and lookup errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, janggi.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, janggi.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, janggi.ErrEmptySource),
		errors.Is(err, janggi.ErrIllegalMove),
		errors.Is(err, janggi.ErrOffBoard),
		errors.Is(err, janggi.ErrBadSquare),
		errors.Is(err, janggi.ErrInvalidFEN):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeMgrError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Println("internal error:", err)
	}
	writeError(w, code, err.Error())
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSONStatus(w, code, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
