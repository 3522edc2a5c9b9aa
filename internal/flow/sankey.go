package flow

import (
	"fmt"
	"html/template"
	"io"

	"github.com/shopspring/decimal"
)

// Node labels for the three category nodes.
const (
	LabelIn          = "Cash_in"
	LabelOut         = "Cash_out"
	LabelInvestments = "Cash_investments"
)

// Link is one weighted edge in the Sankey diagram, by node index.
type Link struct {
	Source int
	Target int
	Value  decimal.Decimal
}

// Diagram is the node/link form the renderer consumes.
type Diagram struct {
	Labels []string
	Links  []Link
}

// BuildSankey lays out the flow diagram: Cash_in feeds Cash_out and
// Cash_investments with the category totals, and each category feeds
// its vendors with the per-vendor sums. A vendor appearing under both
// categories gets one node with an edge from each.
func BuildSankey(s Summary) Diagram {
	labels := []string{LabelIn, LabelOut, LabelInvestments}
	index := map[string]int{LabelIn: 0, LabelOut: 1, LabelInvestments: 2}

	nodeFor := func(label string) int {
		if i, ok := index[label]; ok {
			return i
		}
		labels = append(labels, label)
		index[label] = len(labels) - 1
		return len(labels) - 1
	}

	links := []Link{
		{Source: index[LabelIn], Target: index[LabelOut], Value: s.TotalOut},
		{Source: index[LabelIn], Target: index[LabelInvestments], Value: s.TotalInvestments},
	}
	for _, vt := range s.OutByVendor {
		links = append(links, Link{Source: index[LabelOut], Target: nodeFor(vt.Vendor), Value: vt.Total})
	}
	for _, vt := range s.InvestmentsByVendor {
		links = append(links, Link{Source: index[LabelInvestments], Target: nodeFor(vt.Vendor), Value: vt.Total})
	}

	return Diagram{Labels: labels, Links: links}
}

var pageTemplate = template.Must(template.New("sankey").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
</head>
<body>
<div id="chart"></div>
<script>
Plotly.newPlot("chart", [{
  type: "sankey",
  node: {
    pad: 15,
    thickness: 20,
    line: {color: "black", width: 0.5},
    label: {{.Labels}}
  },
  link: {
    source: {{.Source}},
    target: {{.Target}},
    value: {{.Value}}
  }
}], {title: {text: {{.Title}}}, font: {size: 10}});
</script>
</body>
</html>
`))

// RenderHTML writes a self-contained Plotly Sankey page for the
// diagram. This is a pure rendering step over already-aggregated sums.
func RenderHTML(w io.Writer, d Diagram, title string) error {
	source := make([]int, len(d.Links))
	target := make([]int, len(d.Links))
	value := make([]float64, len(d.Links))
	for i, l := range d.Links {
		source[i] = l.Source
		target[i] = l.Target
		value[i], _ = l.Value.Float64()
	}

	data := struct {
		Title          string
		Labels         []string
		Source, Target []int
		Value          []float64
	}{
		Title:  title,
		Labels: d.Labels,
		Source: source,
		Target: target,
		Value:  value,
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering sankey page: %w", err)
	}
	return nil
}
