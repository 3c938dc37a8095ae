package report

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/viant/featsim/metric"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = cellStyle.Bold(true)
)

// RenderTable renders rows as a bordered table with one column per metric.
func RenderTable(rows []Row) string {
	names := metric.Names()
	headers := make([]string, 0, len(names)+1)
	headers = append(headers, "(pair)")
	for _, n := range names {
		headers = append(headers, n.String())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return cellStyle.Align(lipgloss.Right)
			}
		})
	for _, r := range rows {
		cells := make([]string, 0, len(names)+1)
		cells = append(cells, r.Label)
		for _, n := range names {
			cells = append(cells, FormatValue(r.Result[n]))
		}
		t.Row(cells...)
	}
	return t.Render()
}

// FormatValue prints a rounded value with the fewest digits needed.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type jsonRow struct {
	Pair    string              `json:"pair"`
	Metrics map[string]*float64 `json:"metrics"`
}

// RenderJSON writes rows as a JSON array. NaN and infinite values are
// encoded as null.
func RenderJSON(w io.Writer, rows []Row) error {
	out := make([]jsonRow, 0, len(rows))
	for _, r := range rows {
		jr := jsonRow{Pair: r.Label, Metrics: make(map[string]*float64, len(r.Result))}
		for name, v := range r.Result {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				jr.Metrics[name.String()] = nil
				continue
			}
			jr.Metrics[name.String()] = &v
		}
		out = append(out, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
