package handler

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// HomeHandler serves the landing page — a static form page for trying the API
// by hand, the counterpart of the upstream service's views/index.html.
type HomeHandler struct {
	indexPath string
	logger    *slog.Logger
}

func NewHomeHandler(staticDir string, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		indexPath: filepath.Join(staticDir, "index.html"),
		logger:    logger,
	}
}

// HandleIndex serves the landing page.
//
// HTTP: GET /
func (h *HomeHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.indexPath); err != nil {
		// The API works fine without the page; don't 500 the root path just
		// because the static assets weren't deployed next to the binary.
		h.logger.Warn("landing page missing", slog.String("path", h.indexPath))
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, h.indexPath)
}
