// Package commands defines the airmap CLI.
//
// Commands
//
//   - airmap            Open the interactive map
//   - airmap airports   Summarize the merged airport index, or search it
//   - airmap routes     Print the drawable routes of an airport as GeoJSON
//
// The root command loads configuration (file, AIRMAP_* environment, flags),
// opens the log file and loads the dataset before any subcommand runs. The
// map still opens when loading fails and shows the error on its status line;
// the subcommands fail instead.
package commands
