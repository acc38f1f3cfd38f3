package tables

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/soil-insights/soilboard/internal/render"
)

// Write prints every metric section of page, across all tabs, as terminal tables.
func Write(w io.Writer, page render.Page, useColors bool) error {
	best, worst := fmt.Sprint, fmt.Sprint
	if useColors {
		best = color.New(color.FgGreen, color.Bold).SprintFunc()
		worst = color.New(color.FgRed).SprintFunc()
	}

	if _, err := fmt.Fprintf(w, "%s\n", page.Info.Title); err != nil {
		return err
	}

	for _, s := range render.Sections(page.Nodes) {
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Caption()); err != nil {
			return err
		}
		if err := writeTable(w, s.Section.Table, best, worst); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, t render.Table, best, worst func(...any) string) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header(append([]string{t.LabelHeader}, lo.Map(t.Columns, func(c render.Column, _ int) string {
		return c.Header
	})...))
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
		// keep headers such as "R²" as written
		cfg.Header.Formatting.AutoFormat = tw.Off
	})

	marks := t.Marks()
	data := make([][]string, 0, len(t.Rows))
	for i, r := range t.Rows {
		row := []string{r.Label}
		for c, col := range t.Columns {
			if c >= len(r.Values) {
				row = append(row, "")
				continue
			}
			cell := render.FormatFixed(r.Values[c], col.Decimals)
			switch i {
			case marks[c].Best:
				cell = best(cell)
			case marks[c].Worst:
				cell = worst(cell)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
