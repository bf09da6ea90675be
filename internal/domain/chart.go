package domain

// ChartKind selects the rendering style of a chart.
type ChartKind int

const (
	ChartBar ChartKind = iota
	ChartScatter
)

// ChartPoint is one (x, y) pair. X keeps its display label so bar
// charts can carry non-numeric category labels.
type ChartPoint struct {
	XLabel string
	X      float64
	Y      float64
}

// ChartSpec describes a renderable chart. The presentation layer owns
// how it is drawn; the core only decides what to plot.
type ChartSpec struct {
	Kind   ChartKind
	Title  string
	XLabel string
	YLabel string
	Points []ChartPoint
}
