package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "routes CODE",
		Short: "Print the drawable routes of an airport as GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := requireDataset()
			if err != nil {
				return err
			}
			out, err := ds.RoutesGeoJSON(args[0])
			if err != nil {
				return err
			}
			if pretty {
				var buf bytes.Buffer
				if err := json.Indent(&buf, out, "", "  "); err != nil {
					return err
				}
				out = buf.Bytes()
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output")
	return cmd
}
