// Package pipeline runs the end-to-end generation: build the dataset, write
// the enabled exports and render the map.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/geoprofile-cli/internal/citytable"
	"github.com/sells-group/geoprofile-cli/internal/dataset"
	"github.com/sells-group/geoprofile-cli/internal/export"
	"github.com/sells-group/geoprofile-cli/internal/geomap"
	"github.com/sells-group/geoprofile-cli/internal/model"
	"github.com/sells-group/geoprofile-cli/internal/synth"
)

// Options selects how many profiles to generate and which outputs to write.
type Options struct {
	NumProfiles int
	SaveExcel   bool
	SaveCSV     bool
	CreateMap   bool
	SaveJSON    bool
	SaveGeoJSON bool
	SaveSQLite  bool
	OutputDir   string
	Seed        uint64    // 0 draws a random seed
	CitiesFile  string    // optional YAML extending the built-in city table
	Now         time.Time // reference time for purchase dates; zero means time.Now

	// Progress receives the 10% notifications; nil logs through zap.
	Progress dataset.ProgressFunc
}

// DefaultOptions returns 1000 profiles with spreadsheet, CSV and map output
// in the working directory.
func DefaultOptions() Options {
	return Options{
		NumProfiles: 1000,
		SaveExcel:   true,
		SaveCSV:     true,
		CreateMap:   true,
		OutputDir:   ".",
		Progress:    dataset.LogProgress,
	}
}

// Result is the generated table and the files written for it.
type Result struct {
	Table *dataset.Table
	Files []string
}

// FileName returns the output file name for a format and profile count.
func FileName(f export.Format, n int) string {
	return fmt.Sprintf("random_data_%d.%s", n, f)
}

// Run executes the pipeline. The first failure aborts the run; files
// written before it are left in place.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.NumProfiles <= 0 {
		return nil, eris.Wrapf(model.ErrInvalidArgument, "pipeline: num_profiles must be positive, got %d", opts.NumProfiles)
	}

	cities, err := loadCities(opts.CitiesFile)
	if err != nil {
		return nil, err
	}

	synthOpts := []synth.Option{synth.WithNow(opts.Now)}
	if opts.Seed != 0 {
		synthOpts = append(synthOpts, synth.WithSeed(opts.Seed))
	}
	gen := synth.New(cities, synthOpts...)

	zap.L().Info("pipeline: generating profiles",
		zap.Int("count", opts.NumProfiles),
		zap.Int("cities", cities.Len()),
		zap.Uint64("seed", opts.Seed),
	)

	progress := opts.Progress
	if progress == nil {
		progress = dataset.LogProgress
	}
	tbl, err := dataset.Build(ctx, gen, opts.NumProfiles, dataset.WithProgress(progress))
	if err != nil {
		return nil, err
	}

	res := &Result{Table: tbl}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	if !opts.anyOutput() {
		return res, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, model.NewIOError("create output dir", dir, err)
	}

	for _, step := range []struct {
		enabled bool
		format  export.Format
	}{
		{opts.SaveExcel, export.FormatXLSX},
		{opts.SaveCSV, export.FormatCSV},
		{opts.SaveJSON, export.FormatJSON},
		{opts.SaveGeoJSON, export.FormatGeoJSON},
		{opts.SaveSQLite, export.FormatSQLite},
	} {
		if !step.enabled {
			continue
		}
		write, err := writerFor(step.format)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, FileName(step.format, tbl.Len()))
		if err := write(ctx, tbl, path); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
	}

	if opts.CreateMap {
		path := filepath.Join(dir, geomap.DefaultFileName)
		if err := geomap.Render(tbl, path); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
	}

	return res, nil
}

func writerFor(f export.Format) (export.WriteFunc, error) {
	write, ok := export.Writer(f)
	if !ok {
		return nil, eris.Wrapf(model.ErrInvalidArgument, "pipeline: no writer for format %q", f)
	}
	return write, nil
}

func (o Options) anyOutput() bool {
	return o.SaveExcel || o.SaveCSV || o.CreateMap || o.SaveJSON || o.SaveGeoJSON || o.SaveSQLite
}

func loadCities(path string) (*citytable.Table, error) {
	base := citytable.Default()
	if path == "" {
		return base, nil
	}
	return citytable.LoadYAML(base, path)
}
