package ui

import (
	"math"
	"strconv"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"

	"martview/internal/domain"
)

// displayRowCap bounds how many rows a grid renders. The table loader's
// 1000-row ceiling is separate and unchanged.
const displayRowCap = 200

// appPage is the shared shell: sidebar with mode navigation and the
// table list, topbar, and the page body. The active key is "home",
// "query", or "table:<name>".
func appPage(title, active string, tables []string, body ...Node) Node {
	nav := []Node{
		navLink("Overview", "/", active == "home"),
		navLink("SQL Console", "/query", active == "query"),
		Div(Class("app-nav-section"), Text("Tables")),
		Div(
			Class("mb-2"),
			Input(Type("search"), data.Bind("q"), Placeholder("Filter tables"), AutoComplete("off")),
		),
	}
	for _, t := range tables {
		link := navLink(t, "/tables/"+t, active == "table:"+t)
		nav = append(nav, Div(data.Show(containsExpr(t)), link))
	}

	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | Mart Explorer")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			Link(Rel("stylesheet"), Href("/static/app.css")),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		Body(
			Main(Class("app-shell"),
				Aside(
					Class("app-sidebar"),
					data.Signals(map[string]any{"q": ""}),
					Div(
						Class("brand"),
						Strong(Text("Mart Explorer")),
						P(Class("muted"), Text("Browse the mart schema")),
					),
					Nav(Class("app-nav"), Group(nav)),
				),
				Section(
					Class("app-main"),
					Div(
						Class("topbar"),
						H1(Class("page-title"), Text(title)),
					),
					Div(Class("content"), Group(body)),
				),
			),
		),
	)
}

func navLink(label, href string, active bool) Node {
	className := "app-nav-link"
	if active {
		className += " active"
	}
	return A(Href(href), Class(className), Text(label))
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | Mart Explorer")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("stylesheet"), Href("/static/app.css")),
		),
		Body(
			Main(
				Class("app-main"),
				H1(Class("page-title"), Text(title)),
				P(Text(message)),
				P(A(Href("/"), Text("Back to overview"))),
			),
		),
	)
}

func errorCard(title, message string) Node {
	return Div(
		Class("card error-card"),
		H2(Text(title)),
		Pre(Text(message)),
	)
}

// containsExpr builds the datastar filter expression for the sidebar
// quick filter.
func containsExpr(value string) string {
	return "$q === '' || " + strconv.Quote(value) + ".toLowerCase().includes($q.toLowerCase())"
}

// resultGrid renders a result set as a table, capped at displayRowCap
// rows with a truncation note.
func resultGrid(heading string, rs *domain.ResultSet) Node {
	headerCols := make([]Node, 0, len(rs.Columns))
	for i := range rs.Columns {
		headerCols = append(headerCols, Th(Text(rs.Columns[i].Name)))
	}

	displayRows := rs.Rows
	truncated := false
	if len(displayRows) > displayRowCap {
		displayRows = displayRows[:displayRowCap]
		truncated = true
	}

	rows := make([]Node, 0, len(displayRows))
	for i := range displayRows {
		cells := make([]Node, 0, len(displayRows[i]))
		for j := range displayRows[i] {
			cells = append(cells, Td(Text(displayRows[i][j].String())))
		}
		rows = append(rows, Tr(Group(cells)))
	}

	meta := strconv.Itoa(rs.RowCount()) + " row(s)"
	if truncated {
		meta += ", showing first " + strconv.Itoa(displayRowCap)
	}

	return Div(
		Class("card table-wrap"),
		H2(Text(heading)),
		P(Class("muted"), Text(meta)),
		Table(
			THead(Tr(Group(headerCols))),
			TBody(Group(rows)),
		),
	)
}

// formatStat renders a statistic for the summary grid. NaN (empty
// column, or stddev of one observation) renders as a dash.
func formatStat(f float64) string {
	if math.IsNaN(f) {
		return "-"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
