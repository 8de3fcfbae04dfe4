package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the visited airports table.
func (m *Model) refreshAttrs() {
	cols, rows := m.buildAttributes()
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no visited airports"
		return
	}
	tcols := make([]table.Column, 0, len(cols))
	maxColW := 24
	for i, c := range cols {
		w := len(c.title) + 2
		for _, r := range rows {
			w = max(w, len([]rune(r[i]))+1)
		}
		tcols = append(tcols, table.Column{Title: c.title, Width: min(w, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, table.Row(r))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

type attrColumn struct {
	title string
}

// buildAttributes lists visited airports with the number of routes that can
// be drawn from each.
func (m *Model) buildAttributes() ([]attrColumn, [][]string) {
	cols := []attrColumn{{"code"}, {"city"}, {"country"}, {"alt ft"}, {"lat"}, {"lon"}, {"routes"}}
	var rows [][]string
	for mk := range m.data.Index.All() {
		if !mk.Visited() {
			continue
		}
		n := 0
		for r := range m.data.Routes.RoutesFor(mk.Code) {
			if r.Drawable() {
				n++
			}
		}
		rows = append(rows, []string{
			mk.Code,
			mk.City,
			mk.Country,
			strconv.Itoa(mk.Altitude),
			fmt.Sprintf("%.4f", mk.Location.Lat),
			fmt.Sprintf("%.4f", mk.Location.Lon),
			strconv.Itoa(n),
		})
	}
	return cols, rows
}
