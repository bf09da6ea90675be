package ui

import (
	"fmt"
	"sort"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"martview/internal/domain"
)

// Chart canvas geometry. Fixed-size SVG scaled down by CSS.
const (
	chartWidth     = 720
	chartHeight    = 280
	chartPadLeft   = 48
	chartPadBottom = 36
)

// chartCard renders a ChartSpec as an inline SVG inside a card.
func chartCard(spec *domain.ChartSpec) Node {
	if spec == nil || len(spec.Points) == 0 {
		return nil
	}

	var plot Node
	switch spec.Kind {
	case domain.ChartBar:
		plot = barChartSVG(spec)
	case domain.ChartScatter:
		plot = scatterChartSVG(spec)
	default:
		return nil
	}

	return Div(
		Class("card chart"),
		H2(Text(spec.Title)),
		P(Class("muted"), Text(spec.XLabel+" vs "+spec.YLabel)),
		plot,
	)
}

func barChartSVG(spec *domain.ChartSpec) Node {
	points := append([]domain.ChartPoint(nil), spec.Points...)
	sort.Slice(points, func(i, j int) bool { return points[i].X < points[j].X })

	maxY := 0.0
	for _, p := range points {
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	plotW := float64(chartWidth - chartPadLeft - 8)
	plotH := float64(chartHeight - chartPadBottom - 8)
	slot := plotW / float64(len(points))
	barW := slot * 0.8

	nodes := []Node{axesSVG(maxY)}
	for i, p := range points {
		h := p.Y / maxY * plotH
		x := float64(chartPadLeft) + float64(i)*slot + slot*0.1
		y := 8 + plotH - h
		nodes = append(nodes, El("rect",
			Attr("class", "chart-bar"),
			Attr("x", f(x)), Attr("y", f(y)),
			Attr("width", f(barW)), Attr("height", f(h)),
			El("title", Text(fmt.Sprintf("%s=%s, %s=%s", spec.XLabel, p.XLabel, spec.YLabel, f(p.Y)))),
		))
		// Label every bar while they stay readable, then thin out.
		step := len(points)/12 + 1
		if i%step == 0 {
			nodes = append(nodes, El("text",
				Attr("class", "chart-label"),
				Attr("x", f(x+barW/2)), Attr("y", f(float64(chartHeight-chartPadBottom)+14)),
				Attr("text-anchor", "middle"),
				Text(p.XLabel),
			))
		}
	}

	return svgCanvas(nodes)
}

func scatterChartSVG(spec *domain.ChartSpec) Node {
	minX, maxX := rangeOf(spec.Points, func(p domain.ChartPoint) float64 { return p.X })
	minY, maxY := rangeOf(spec.Points, func(p domain.ChartPoint) float64 { return p.Y })
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	plotW := float64(chartWidth - chartPadLeft - 8)
	plotH := float64(chartHeight - chartPadBottom - 8)

	nodes := []Node{axesSVG(maxY)}
	for _, p := range spec.Points {
		cx := float64(chartPadLeft) + (p.X-minX)/(maxX-minX)*plotW
		cy := 8 + plotH - (p.Y-minY)/(maxY-minY)*plotH
		nodes = append(nodes, El("circle",
			Attr("class", "chart-dot"),
			Attr("cx", f(cx)), Attr("cy", f(cy)), Attr("r", "3.5"),
		))
	}

	nodes = append(nodes,
		El("text",
			Attr("class", "chart-label"),
			Attr("x", f(float64(chartPadLeft))), Attr("y", f(float64(chartHeight-chartPadBottom)+14)),
			Text(f(minX)),
		),
		El("text",
			Attr("class", "chart-label"),
			Attr("x", f(float64(chartWidth-8))), Attr("y", f(float64(chartHeight-chartPadBottom)+14)),
			Attr("text-anchor", "end"),
			Text(f(maxX)),
		),
	)

	return svgCanvas(nodes)
}

// axesSVG draws the x/y axis lines and the y-maximum label.
func axesSVG(maxY float64) Node {
	bottom := f(float64(chartHeight - chartPadBottom))
	left := f(float64(chartPadLeft))
	return Group([]Node{
		El("line", Attr("class", "chart-axis"),
			Attr("x1", left), Attr("y1", "8"),
			Attr("x2", left), Attr("y2", bottom)),
		El("line", Attr("class", "chart-axis"),
			Attr("x1", left), Attr("y1", bottom),
			Attr("x2", f(float64(chartWidth-8))), Attr("y2", bottom)),
		El("text", Attr("class", "chart-label"),
			Attr("x", f(float64(chartPadLeft-4))), Attr("y", "16"),
			Attr("text-anchor", "end"),
			Text(f(maxY))),
	})
}

func svgCanvas(nodes []Node) Node {
	return El("svg",
		Attr("viewBox", fmt.Sprintf("0 0 %d %d", chartWidth, chartHeight)),
		Attr("width", fmt.Sprint(chartWidth)),
		Attr("height", fmt.Sprint(chartHeight)),
		Attr("xmlns", "http://www.w3.org/2000/svg"),
		Group(nodes),
	)
}

func rangeOf(points []domain.ChartPoint, get func(domain.ChartPoint) float64) (min, max float64) {
	min, max = get(points[0]), get(points[0])
	for _, p := range points[1:] {
		v := get(p)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func f(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
