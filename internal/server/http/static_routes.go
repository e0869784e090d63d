package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterStaticRoutes mounts:
// - /web/* -> board UI assets from webDir
// - /      -> redirect to /web/
func RegisterStaticRoutes(r *mux.Router, webDir string) {
	if r == nil {
		return
	}
	if webDir == "" {
		webDir = "."
	}
	r.PathPrefix("/web/").Handler(http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))
	r.Path("/web").Handler(http.RedirectHandler("/web/", http.StatusFound))
	r.Path("/").Handler(http.RedirectHandler("/web/", http.StatusFound))
}
