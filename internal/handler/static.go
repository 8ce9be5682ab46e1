package handler

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves the static browser client, falling back to index.html
// for paths that do not match a file on disk
type SPAHandler struct {
	staticDir string
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{staticDir: staticDir}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
