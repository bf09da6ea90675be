package ui

import (
	"strconv"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"martview/internal/domain"
	"martview/internal/service/stats"
)

func browsePage(tableName string, tables []string, rs *domain.ResultSet, summary stats.Summary, chart *domain.ChartSpec, chartErr string) gomponents.Node {
	body := []gomponents.Node{
		metricsCard(rs, summary),
		resultGrid("Table: "+tableName, rs),
		columnSchemaCard(rs),
	}

	if node := summaryCard(summary); node != nil {
		body = append(body, node)
	}

	if chartErr != "" {
		body = append(body, errorCard("Chart Error", chartErr))
	} else if chart != nil {
		body = append(body, chartCard(chart))
	}

	return appPage("Table: "+tableName, "table:"+tableName, tables, body...)
}

func metricsCard(rs *domain.ResultSet, summary stats.Summary) gomponents.Node {
	return html.Div(
		html.Class("card"),
		html.H2(gomponents.Text("Metrics")),
		html.Div(
			html.Class("metrics"),
			metric(strconv.Itoa(summary.RowCount), "Total rows loaded"),
			metric(strconv.Itoa(len(rs.Columns)), "Columns"),
			metric(strconv.Itoa(len(summary.Columns)), "Numeric columns"),
		),
		html.P(html.Class("muted"), gomponents.Text("Row sets are capped at 1000 rows; the cap is a database-chosen prefix, not a sample.")),
	)
}

func metric(value, label string) gomponents.Node {
	return html.Div(
		html.Div(html.Class("metric-value"), gomponents.Text(value)),
		html.Div(html.Class("metric-label"), gomponents.Text(label)),
	)
}

func columnSchemaCard(rs *domain.ResultSet) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(rs.Columns))
	for i := range rs.Columns {
		c := rs.Columns[i]
		rows = append(rows, html.Tr(
			html.Td(gomponents.Text(c.Name)),
			html.Td(gomponents.Text(c.DeclaredType)),
			html.Td(gomponents.Text(c.Type.String())),
		))
	}
	return html.Div(
		html.Class("card table-wrap"),
		html.H2(gomponents.Text("Columns")),
		html.Table(
			html.THead(html.Tr(
				html.Th(gomponents.Text("Name")),
				html.Th(gomponents.Text("Declared type")),
				html.Th(gomponents.Text("Classified as")),
			)),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

func summaryCard(summary stats.Summary) gomponents.Node {
	if len(summary.Columns) == 0 {
		return nil
	}

	rows := make([]gomponents.Node, 0, len(summary.Columns))
	for _, name := range summary.Columns {
		cs := summary.ByColumn[name]
		rows = append(rows, html.Tr(
			html.Td(gomponents.Text(name)),
			html.Td(gomponents.Text(strconv.Itoa(cs.Count))),
			html.Td(gomponents.Text(formatStat(cs.Mean))),
			html.Td(gomponents.Text(formatStat(cs.Std))),
			html.Td(gomponents.Text(formatStat(cs.Min))),
			html.Td(gomponents.Text(formatStat(cs.P25))),
			html.Td(gomponents.Text(formatStat(cs.P50))),
			html.Td(gomponents.Text(formatStat(cs.P75))),
			html.Td(gomponents.Text(formatStat(cs.Max))),
		))
	}

	return html.Div(
		html.Class("card table-wrap"),
		html.H2(gomponents.Text("Numeric columns summary")),
		html.Table(
			html.THead(html.Tr(
				html.Th(gomponents.Text("Column")),
				html.Th(gomponents.Text("Count")),
				html.Th(gomponents.Text("Mean")),
				html.Th(gomponents.Text("Std")),
				html.Th(gomponents.Text("Min")),
				html.Th(gomponents.Text("25%")),
				html.Th(gomponents.Text("50%")),
				html.Th(gomponents.Text("75%")),
				html.Th(gomponents.Text("Max")),
			)),
			html.TBody(gomponents.Group(rows)),
		),
	)
}
