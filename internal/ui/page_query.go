package ui

import (
	"fmt"
	"net/url"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"martview/internal/domain"
	"martview/internal/service/query"
)

func queryPage(tables []string, sqlText string, result *domain.ResultSet, runError string, scatter *domain.ChartSpec, scatterNote string, history []query.Run) gomponents.Node {
	resultNode := gomponents.Node(html.P(html.Class("muted"), gomponents.Text("Run a query to see results.")))
	if runError != "" {
		resultNode = errorCard("Query Error", runError)
	} else if result != nil {
		resultNode = resultGrid("Results", result)
	}

	body := []gomponents.Node{
		html.Div(
			html.Class("card"),
			html.Form(
				html.Method("post"),
				html.Action("/query/run"),
				html.Label(gomponents.Text("SQL")),
				html.Textarea(html.Name("sql"), html.Required(), gomponents.Text(sqlText)),
				html.Div(
					html.Class("button-row"),
					html.Button(html.Type("submit"), html.Class("btn btn-primary"), gomponents.Text("Run query")),
				),
			),
			html.P(html.Class("muted"), gomponents.Text("Queries run verbatim against the database. The single operating user is trusted; nothing is validated or rewritten.")),
		),
		resultNode,
	}

	if scatterNote != "" {
		body = append(body, html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Scatter chart")),
			html.P(html.Class("muted"), gomponents.Text(scatterNote)),
		))
	} else if scatter != nil {
		body = append(body, chartCard(scatter))
	}

	if node := historyCard(history); node != nil {
		body = append(body, node)
	}

	return appPage("SQL Console", "query", tables, body...)
}

func historyCard(history []query.Run) gomponents.Node {
	if len(history) == 0 {
		return nil
	}

	rows := make([]gomponents.Node, 0, len(history))
	for _, run := range history {
		status := "ok"
		detail := fmt.Sprintf("%d row(s)", run.RowCount)
		if !run.OK() {
			status = "error"
			detail = run.Err
		}
		rerun := "/query?" + url.Values{"sql": {run.SQL}}.Encode()
		rows = append(rows, html.Tr(
			html.Td(gomponents.Text(run.At.Format("15:04:05"))),
			html.Td(html.A(html.Href(rerun), gomponents.Text(truncateSQL(run.SQL)))),
			html.Td(gomponents.Text(status)),
			html.Td(gomponents.Text(detail)),
			html.Td(gomponents.Text(fmt.Sprintf("%d ms", run.Duration.Milliseconds()))),
		))
	}

	return html.Div(
		html.Class("card table-wrap"),
		html.H2(gomponents.Text("Recent queries")),
		html.P(html.Class("muted"), gomponents.Text("In-memory only; cleared on restart. Click a query to load it into the editor.")),
		html.Table(
			html.THead(html.Tr(
				html.Th(gomponents.Text("At")),
				html.Th(gomponents.Text("SQL")),
				html.Th(gomponents.Text("Status")),
				html.Th(gomponents.Text("Result")),
				html.Th(gomponents.Text("Duration")),
			)),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

func truncateSQL(s string) string {
	const max = 80
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
