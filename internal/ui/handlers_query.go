package ui

import (
	"net/http"
	"strings"

	"martview/internal/domain"
	"martview/internal/service/charts"
)

func (h *Handler) QueryPage(w http.ResponseWriter, r *http.Request) {
	sqlText := strings.TrimSpace(r.URL.Query().Get("sql"))
	h.renderQueryPage(w, r, sqlText, nil, "")
}

func (h *Handler) QueryRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Bad Request", "The submitted form could not be parsed."))
		return
	}

	sqlText := strings.TrimSpace(r.Form.Get("sql"))
	result, err := h.Query.Execute(r.Context(), sqlText)
	if err != nil {
		// A QueryError is user-visible content, not a server failure.
		h.renderQueryPage(w, r, sqlText, nil, err.Error())
		return
	}

	h.renderQueryPage(w, r, sqlText, result, "")
}

func (h *Handler) renderQueryPage(w http.ResponseWriter, r *http.Request, sqlText string, result *domain.ResultSet, runError string) {
	tables, err := h.Catalog.ListTables(r.Context())
	if err != nil {
		// Sidebar listing is best-effort on the query page; the console
		// must stay usable even when the catalog is broken.
		h.Logger.Warn("list tables failed", "error", err)
		tables = nil
	}

	var scatter *domain.ChartSpec
	scatterNote := ""
	if result != nil {
		scatter, scatterNote = charts.SuggestScatter(result)
	}

	renderHTML(w, http.StatusOK, queryPage(tables, sqlText, result, runError, scatter, scatterNote, h.Query.History()))
}
