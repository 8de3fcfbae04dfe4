package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"airmap/internal/marker"
)

func airportsCmd() *cobra.Command {
	var (
		search      string
		visitedOnly bool
	)
	cmd := &cobra.Command{
		Use:   "airports",
		Short: "Summarize the merged airport index",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := requireDataset()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s := ds.Summary()
			fmt.Fprintf(out, "airports: %d\nvisited: %d\nroutes: %d (%d drawable)\ncountries: %d\n",
				s.Airports, s.Visited, s.Routes, s.Drawable, s.Countries)

			var list []*marker.Marker
			switch {
			case search != "":
				list = ds.Index.Search(search)
			case visitedOnly:
				list = ds.VisitedMarkers()
			default:
				return nil
			}
			if len(list) == 0 {
				fmt.Fprintln(out, "no matching airports")
				return nil
			}
			fmt.Fprintln(out, airportTable(list))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "list airports whose code, city or country contains this text")
	cmd.Flags().BoolVar(&visitedOnly, "visited", false, "list visited airports")
	return cmd
}

func airportTable(list []*marker.Marker) string {
	rows := make([][]string, 0, len(list))
	for _, m := range list {
		v := ""
		if m.Visited() {
			v = "yes"
		}
		rows = append(rows, []string{
			m.Code, m.City, m.Country, strconv.Itoa(m.Altitude), m.Location.String(), v,
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CODE", "CITY", "COUNTRY", "ALT", "LOCATION", "VISITED").
		Rows(rows...).
		String()
}
