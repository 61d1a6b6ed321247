package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tzq-dev/tzq/pkg/query"
	"github.com/tzq-dev/tzq/pkg/tzconvert"
)

type jsonOutput struct {
	Query   string                    `json:"query"`
	Parsed  query.ParsedQuery         `json:"parsed"`
	Results []tzconvert.ConvertedTime `json:"results"`
}

func renderJSON(w io.Writer, raw string, pq query.ParsedQuery, results []tzconvert.ConvertedTime) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{Query: raw, Parsed: pq, Results: results})
}

func renderTable(w io.Writer, results []tzconvert.ConvertedTime) {
	localZones := make(map[string]bool, len(results))
	for _, r := range results {
		if r.IsLocal {
			localZones[r.ZoneID] = true
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Zone", "Abbrev", "Time", "UTC", "Day", "Note"})
	for _, r := range results {
		t.AppendRow(table.Row{
			r.ZoneID, r.Abbreviation, r.FormattedTime, r.UTCOffsetText,
			formatDayOffset(r.DayOffset), r.Label,
		})
	}
	t.SetRowPainter(func(row table.Row) text.Colors {
		if zone, ok := row[0].(string); ok && localZones[zone] {
			return text.Colors{text.FgGreen}
		}
		return nil
	})
	t.Render()
}

func formatDayOffset(days int) string {
	if days == 0 {
		return ""
	}
	return fmt.Sprintf("%+d", days)
}
