// Package mobile is the gomobile bind surface for the Android shell.
package mobile

import (
	"context"
	"log"
	"net/http"

	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
	"janggi/internal/store"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// dataDir: app-private directory for saved games; "" keeps them in memory
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, dataDir string, port string) {
	var repo store.Repo = store.NewMemoryRepo()
	if dataDir != "" {
		fr, err := store.NewFileRepo(dataDir)
		if err != nil {
			log.Printf("saved games unavailable, using memory: %v", err)
		} else {
			repo = fr
		}
	}

	mgr := game.NewManager(repo)
	if _, err := mgr.Load(context.Background()); err != nil {
		log.Printf("restore games: %v", err)
	}
	h := httpserver.NewRouter(mgr, httpserver.Options{WebDir: webDir})

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, h); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
