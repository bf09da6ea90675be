// Package app provides application-level wiring for the dashboard.
package app

import (
	"database/sql"
	"log/slog"

	"martview/internal/config"
	"martview/internal/db/repository"
	"martview/internal/service/catalog"
	"martview/internal/service/charts"
	"martview/internal/service/query"
)

// Deps holds the external dependencies that main() must provide:
// config, the database handle, and the logger.
type Deps struct {
	Cfg    *config.Config
	DB     *sql.DB
	Logger *slog.Logger
}

// Services groups the service pointers the UI handler needs.
type Services struct {
	Catalog *catalog.Service
	Charts  *charts.Service
	Query   *query.Service
}

// App holds the fully-wired application.
type App struct {
	Services Services
}

// New wires repository and services from the provided deps.
func New(deps Deps) *App {
	repo := repository.NewMartRepo(deps.DB, deps.Cfg.PGSchema)

	catalogSvc := catalog.New(repo, deps.Cfg.CacheTTL, deps.Cfg.RowLimit,
		deps.Logger.With("component", "catalog"))
	chartSvc := charts.New(repo)
	querySvc := query.New(repo, deps.Logger.With("component", "query"))

	return &App{
		Services: Services{
			Catalog: catalogSvc,
			Charts:  chartSvc,
			Query:   querySvc,
		},
	}
}
