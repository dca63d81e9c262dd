package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/stepwise/engine"
	"github.com/katalvlaran/stepwise/internal/config"
	"github.com/katalvlaran/stepwise/trace"
)

// printer renders events as they arrive and the outcome once the run ends.
type printer struct {
	w    io.Writer
	json bool
	enc  *json.Encoder
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, json: format == config.OutputJSON, enc: json.NewEncoder(w)}
}

// event is the engine sink.
func (p *printer) event(ev trace.Event) {
	if p.json {
		_ = p.enc.Encode(ev)
		return
	}
	fmt.Fprintf(p.w, "%4d  %s\n", ev.Seq, ev)
}

// outcome writes a JSON outcome line, or hands t to the table renderer.
func (p *printer) outcome(v any, t func() table.Writer) error {
	if p.json {
		return p.enc.Encode(map[string]any{"outcome": v})
	}
	tw := t()
	tw.SetOutputMirror(p.w)
	tw.SetStyle(table.StyleLight)
	tw.Render()

	return nil
}

func joinInts(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, ",")
}

func sortTable(kind string, out *engine.SortOutcome) func() table.Writer {
	return func() table.Writer {
		tw := table.NewWriter()
		tw.SetTitle("sort/" + kind)
		tw.AppendHeader(table.Row{"Status", "Result", "Comparisons", "Swaps", "Events"})
		tw.AppendRow(table.Row{out.Status, joinInts(out.Result), out.Comparisons, out.Swaps, out.Events})
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 60},
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
		})
		return tw
	}
}

func traversalTable(kind string, out *engine.TraversalOutcome) func() table.Writer {
	return func() table.Writer {
		tw := table.NewWriter()
		tw.SetTitle(fmt.Sprintf("traverse/%s (%s)", kind, out.Status))
		header := table.Row{"#", "Node", "Parent"}
		if out.Distances != nil {
			header = append(header, "Distance")
		}
		tw.AppendHeader(header)
		for i, id := range out.VisitOrder {
			row := table.Row{i + 1, id, out.Parent[id]}
			if out.Distances != nil {
				row = append(row, out.Distances[id])
			}
			tw.AppendRow(row)
		}
		tw.AppendFooter(table.Row{"", "visited", len(out.VisitOrder)})
		return tw
	}
}

func mstTable(kind string, out *engine.MSTOutcome) func() table.Writer {
	return func() table.Writer {
		tw := table.NewWriter()
		tw.SetTitle(fmt.Sprintf("mst/%s (%s)", kind, out.Status))
		tw.AppendHeader(table.Row{"#", "Edge", "Weight", "Cost"})
		var cost int64
		for i, e := range out.CommittedEdges {
			cost += e.Weight
			tw.AppendRow(table.Row{i + 1, e.From + "-" + e.To, e.Weight, cost})
		}
		tw.AppendFooter(table.Row{"", "total", "", out.TotalCost})
		if len(out.Rejected) > 0 {
			rejected := make([]string, len(out.Rejected))
			for i, e := range out.Rejected {
				rejected[i] = e.String()
			}
			tw.SetCaption("rejected: %s", strings.Join(rejected, " "))
		}
		return tw
	}
}
