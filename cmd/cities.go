package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/geoprofile-cli/internal/citytable"
)

var (
	citiesJSON bool
	citiesFile string
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Print the city table",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := citiesFile
		if path == "" {
			path = cfg.Generate.CitiesFile
		}

		tbl := citytable.Default()
		if path != "" {
			var err error
			if tbl, err = citytable.LoadYAML(tbl, path); err != nil {
				return err
			}
		}

		return printCities(cmd.OutOrStdout(), tbl, citiesJSON)
	},
}

func printCities(w io.Writer, tbl *citytable.Table, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(tbl.All()), "encode cities")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CITY\tSTATE\tZIP\tAREA\tLAT\tLON")
	for _, c := range tbl.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.4f\t%.4f\n", c.Name, c.State, c.ZipPrefix, c.AreaCode, c.Lat, c.Lon)
	}
	return eris.Wrap(tw.Flush(), "write cities")
}

func init() {
	citiesCmd.Flags().BoolVar(&citiesJSON, "json", false, "print as JSON")
	citiesCmd.Flags().StringVar(&citiesFile, "cities", "", "YAML file with additional cities (default from config)")
	rootCmd.AddCommand(citiesCmd)
}
