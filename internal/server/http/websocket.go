package httpserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

// handleWatch streams the game to a websocket: the current state first,
// then one message per accepted move.
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["gameID"]
	snap, err := h.mgr.Get(id)
	if err != nil {
		writeMgrError(w, err)
		return
	}
	updates, cancel, err := h.mgr.Subscribe(id)
	if err != nil {
		writeMgrError(w, err)
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied
		log.Printf("ws upgrade %s: %v", id, err)
		return
	}
	defer conn.Close()

	// 读协程只负责发现断开
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(v any) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		return conn.WriteJSON(v) == nil
	}
	if !send(snapshotToResponse(snap)) {
		return
	}

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case s, ok := <-updates:
			if !ok || !send(snapshotToResponse(s)) {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
}
