package diagram

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/agentstation/bimmap/internal/utils/ptr"
	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/report"
)

// RenderHTML writes the graph, and the QA charts when rep is not nil, as one
// HTML page.
func RenderHTML(w io.Writer, g *Graph, rep *report.Report) error {
	page := components.NewPage()
	page.PageTitle = "bimmap data model"
	page.AddCharts(graphChart(g))

	if rep != nil {
		page.AddCharts(
			pieChart("Relationship Types Distribution", rep.RelationshipTypes),
			pieChart("Entity System Distribution", rep.EntitySystems),
			attributeChart(rep),
		)
	}

	if err := page.Render(w); err != nil {
		return errors.WrapResource("render", "diagram", "", err)
	}
	return nil
}

func graphChart(g *Graph) *charts.Graph {
	categories := make([]*opts.GraphCategory, len(g.Systems))
	for i, s := range g.Systems {
		categories[i] = &opts.GraphCategory{Name: s}
	}

	nodes := make([]opts.GraphNode, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = opts.GraphNode{
			Name:       n.Name,
			Value:      float32(n.ID),
			Category:   g.Category(n.System),
			SymbolSize: 15,
			ItemStyle:  &opts.ItemStyle{Color: g.Color(n.System)},
		}
	}

	links := make([]opts.GraphLink, len(g.Edges))
	for i, e := range g.Edges {
		links[i] = opts.GraphLink{Source: e.Source, Target: e.Target}
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "800px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Data Model Diagram",
			Subtitle: fmt.Sprintf("%d entities, %d relationships", len(g.Nodes), len(g.Edges)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: ptr.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: ptr.Bool(true)}),
	)
	graph.AddSeries("entities", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:     "force",
			Force:      &opts.GraphForce{Repulsion: 300},
			Categories: categories,
		}),
	)
	return graph
}

func pieChart(title string, counts []report.Count) *charts.Pie {
	data := make([]opts.PieData, len(counts))
	for i, c := range counts {
		data[i] = opts.PieData{Name: c.Label, Value: c.Count}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "300px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: ptr.Bool(true)}),
	)
	pie.AddSeries(title, data)
	return pie
}

func attributeChart(rep *report.Report) *charts.Bar {
	names := make([]string, len(rep.AttributesPerEntity))
	counts := make([]opts.BarData, len(rep.AttributesPerEntity))
	for i, e := range rep.AttributesPerEntity {
		names[i] = e.Name
		counts[i] = opts.BarData{Value: e.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %d Entities by Attribute Count", rep.TopN)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: ptr.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Entity",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Attributes"}),
	)
	bar.SetXAxis(names).AddSeries("Attributes", counts)
	return bar
}
