package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sells-group/geoprofile-cli/internal/config"
	"github.com/sells-group/geoprofile-cli/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate profiles and write the enabled outputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := generateOptions(cmd, cfg.Generate)

		res, err := pipeline.Run(cmd.Context(), opts)
		if err != nil {
			return err
		}

		zap.L().Info("generate complete",
			zap.Int("profiles", res.Table.Len()),
			zap.Strings("files", res.Files),
		)
		return nil
	},
}

// generateOptions starts from the config file values and applies only the
// flags the user actually set.
func generateOptions(cmd *cobra.Command, gc config.GenerateConfig) pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.NumProfiles = gc.NumProfiles
	opts.OutputDir = gc.OutputDir
	opts.Seed = gc.Seed
	opts.CitiesFile = gc.CitiesFile
	opts.SaveExcel = gc.SaveExcel
	opts.SaveCSV = gc.SaveCSV
	opts.CreateMap = gc.CreateMap
	opts.SaveJSON = gc.SaveJSON
	opts.SaveGeoJSON = gc.SaveGeoJSON
	opts.SaveSQLite = gc.SaveSQLite

	f := cmd.Flags()
	if f.Changed("num") {
		opts.NumProfiles, _ = f.GetInt("num")
	}
	if f.Changed("output") {
		opts.OutputDir, _ = f.GetString("output")
	}
	if f.Changed("seed") {
		opts.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("cities") {
		opts.CitiesFile, _ = f.GetString("cities")
	}
	for name, dst := range map[string]*bool{
		"excel":   &opts.SaveExcel,
		"csv":     &opts.SaveCSV,
		"map":     &opts.CreateMap,
		"json":    &opts.SaveJSON,
		"geojson": &opts.SaveGeoJSON,
		"sqlite":  &opts.SaveSQLite,
	} {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
	return opts
}

func addGenerateFlags(f *pflag.FlagSet) {
	f.IntP("num", "n", 1000, "number of profiles to generate")
	f.StringP("output", "o", ".", "output directory")
	f.Uint64("seed", 0, "random seed (0 = random)")
	f.String("cities", "", "YAML file with additional cities")
	f.Bool("excel", true, "write XLSX")
	f.Bool("csv", true, "write CSV")
	f.Bool("map", true, "render the HTML map")
	f.Bool("json", false, "write JSON")
	f.Bool("geojson", false, "write GeoJSON")
	f.Bool("sqlite", false, "write SQLite database")
}

func init() {
	addGenerateFlags(generateCmd.Flags())
	rootCmd.AddCommand(generateCmd)
}
