// Package ui renders the dashboard: table browsing, summary views, and
// the SQL console. All pages are server-rendered gomponents trees.
package ui

import (
	"io"
	"log/slog"
	"net/http"

	gomponents "maragu.dev/gomponents"

	"martview/internal/service/catalog"
	"martview/internal/service/charts"
	"martview/internal/service/query"
)

// Handler holds the services the pages consume.
type Handler struct {
	Catalog *catalog.Service
	Charts  *charts.Service
	Query   *query.Service
	Logger  *slog.Logger
}

func NewHandler(catalogSvc *catalog.Service, chartSvc *charts.Service, querySvc *query.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		Catalog: catalogSvc,
		Charts:  chartSvc,
		Query:   querySvc,
		Logger:  logger,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
