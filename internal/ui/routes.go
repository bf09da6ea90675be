package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"martview/internal/ui/assets"
)

func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.Overview)
	r.Get("/tables/{tableName}", h.TableDetail)
	r.Get("/query", h.QueryPage)
	r.Post("/query/run", h.QueryRun)
}
