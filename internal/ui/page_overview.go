package ui

import (
	"strconv"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func overviewPage(schema string, tables []string) gomponents.Node {
	if len(tables) == 0 {
		return appPage("Overview", "home", tables,
			html.Div(
				html.Class("card"),
				html.H2(gomponents.Text("No tables")),
				html.P(html.Class("muted"), gomponents.Text("Schema \""+schema+"\" contains no tables.")),
			),
		)
	}

	rows := make([]gomponents.Node, 0, len(tables))
	for _, t := range tables {
		rows = append(rows, html.Tr(
			html.Td(html.A(html.Href("/tables/"+t), gomponents.Text(t))),
		))
	}

	return appPage("Overview", "home", tables,
		html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Schema: "+schema)),
			html.P(html.Class("muted"), gomponents.Text(strconv.Itoa(len(tables))+" table(s). Pick one to browse, or open the SQL console.")),
		),
		html.Div(
			html.Class("card table-wrap"),
			html.H2(gomponents.Text("Tables")),
			html.Table(
				html.THead(html.Tr(html.Th(gomponents.Text("Name")))),
				html.TBody(gomponents.Group(rows)),
			),
		),
	)
}
