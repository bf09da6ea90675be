package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"martview/internal/service/stats"
)

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Catalog.ListTables(r.Context())
	if err != nil {
		h.Logger.Error("list tables failed", "error", err)
		renderHTML(w, http.StatusInternalServerError, errorPage("Catalog Error", err.Error()))
		return
	}
	renderHTML(w, http.StatusOK, overviewPage(h.Catalog.Schema(), tables))
}

func (h *Handler) TableDetail(w http.ResponseWriter, r *http.Request) {
	tableName := chi.URLParam(r, "tableName")

	tables, err := h.Catalog.ListTables(r.Context())
	if err != nil {
		h.Logger.Error("list tables failed", "error", err)
		renderHTML(w, http.StatusInternalServerError, errorPage("Catalog Error", err.Error()))
		return
	}

	// Only catalog-listed names reach the loader; its identifier
	// interpolation depends on that.
	if !containsTable(tables, tableName) {
		renderHTML(w, http.StatusNotFound, errorPage("Unknown Table", "Table \""+tableName+"\" is not in schema \""+h.Catalog.Schema()+"\"."))
		return
	}

	rs, err := h.Catalog.LoadTable(r.Context(), tableName)
	if err != nil {
		h.Logger.Error("load table failed", "table", tableName, "error", err)
		renderHTML(w, http.StatusInternalServerError, errorPage("Load Error", err.Error()))
		return
	}

	summary := stats.Summarize(rs)

	chart, chartErr := h.Charts.MaybeOrdersChart(r.Context(), tableName, rs, tables)
	chartErrMsg := ""
	if chartErr != nil {
		// The heuristic fired but the aggregation failed (for example a
		// missing orders.customer_id). Shown inline, page still renders.
		h.Logger.Warn("default chart failed", "table", tableName, "error", chartErr)
		chartErrMsg = chartErr.Error()
	}

	renderHTML(w, http.StatusOK, browsePage(tableName, tables, rs, summary, chart, chartErrMsg))
}

func containsTable(tables []string, want string) bool {
	for _, t := range tables {
		if t == want {
			return true
		}
	}
	return false
}
