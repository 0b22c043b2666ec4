package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sells-group/geoprofile-cli/internal/export"
	"github.com/sells-group/geoprofile-cli/internal/geomap"
	"github.com/sells-group/geoprofile-cli/internal/model"
)

func testOptions(dir string, n int) Options {
	opts := DefaultOptions()
	opts.NumProfiles = n
	opts.OutputDir = dir
	opts.Seed = 500
	opts.Now = time.Date(2026, time.May, 20, 10, 0, 0, 0, time.UTC)
	return opts
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()
	assert.Equal(t, 1000, opts.NumProfiles)
	assert.True(t, opts.SaveExcel)
	assert.True(t, opts.SaveCSV)
	assert.True(t, opts.CreateMap)
	assert.False(t, opts.SaveJSON)
	assert.False(t, opts.SaveGeoJSON)
	assert.False(t, opts.SaveSQLite)
}

func TestFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "random_data_500.xlsx", FileName(export.FormatXLSX, 500))
	assert.Equal(t, "random_data_500.csv", FileName(export.FormatCSV, 500))
	assert.Equal(t, "random_data_12.db", FileName(export.FormatSQLite, 12))
}

func TestRun_FiveHundred(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	res, err := Run(context.Background(), testOptions(dir, 500))
	require.NoError(t, err)
	require.Equal(t, 500, res.Table.Len())

	xlsxPath := filepath.Join(dir, "random_data_500.xlsx")
	csvPath := filepath.Join(dir, "random_data_500.csv")
	mapPath := filepath.Join(dir, "geo_profiles_map.html")
	assert.Equal(t, []string{xlsxPath, csvPath, mapPath}, res.Files)

	rows, err := export.ReadXLSX(xlsxPath)
	require.NoError(t, err)
	assert.Len(t, rows, 501)
	assert.Equal(t, model.Columns, rows[0])

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(csvData), "\n"), "\n"), 501)

	// re-reading the csv yields the in-memory dataset
	profiles, err := export.ReadCSV(csvPath)
	require.NoError(t, err)
	assert.Equal(t, res.Table.Profiles(), profiles)

	page, err := os.ReadFile(mapPath)
	require.NoError(t, err)
	assert.Equal(t, 500, strings.Count(string(page), `"type":"Feature"`))
	assert.Equal(t, 2, strings.Count(string(page), `"type":"FeatureCollection"`))
	assert.Len(t, geomap.Layers(res.Table), 2)
}

func TestRun_AllFormats(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "out")

	opts := testOptions(dir, 30)
	opts.SaveJSON = true
	opts.SaveGeoJSON = true
	opts.SaveSQLite = true

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, res.Files, 6)
	for _, f := range res.Files {
		info, err := os.Stat(f)
		require.NoError(t, err, f)
		assert.Greater(t, info.Size(), int64(0), f)
	}
}

func TestRun_NoOutputs(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "unused")

	opts := testOptions(dir, 10)
	opts.SaveExcel, opts.SaveCSV, opts.CreateMap = false, false, false

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Table.Len())
	assert.Empty(t, res.Files)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_InvalidCount(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -5} {
		_, err := Run(context.Background(), testOptions(t.TempDir(), n))
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidArgument))
	}
}

func TestRun_OutputDirIsFile(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Run(context.Background(), testOptions(filepath.Join(file, "out"), 5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrIO))
}

func TestRun_SeedReproducible(t *testing.T) {
	t.Parallel()
	opts := testOptions("", 20)
	opts.SaveExcel, opts.SaveCSV, opts.CreateMap = false, false, false

	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, a.Table.Profiles(), b.Table.Profiles())
}

func TestRun_CitiesFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "cities.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cities:\n  - name: Lübeck\n    zip_prefix: \"235\"\n    area_code: \"451\"\n    lat: 53.8655\n    lon: 10.6866\n"), 0o644))

	opts := testOptions(dir, 3000)
	opts.SaveExcel, opts.SaveCSV, opts.CreateMap = false, false, false
	opts.CitiesFile = path

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)

	found := false
	for _, p := range res.Table.Profiles() {
		if p.City == "Lübeck" {
			found = true
			assert.True(t, strings.HasPrefix(p.ZipCode, "235"))
		}
	}
	assert.True(t, found)

	opts.CitiesFile = filepath.Join(dir, "missing.yaml")
	_, err = Run(context.Background(), opts)
	assert.True(t, errors.Is(err, model.ErrIO))
}

func TestRun_ZeroOptionsLogProgress(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	res, err := Run(context.Background(), Options{NumProfiles: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, res.Table.Len())
	assert.Empty(t, res.Files)

	progress := logs.FilterMessage("dataset: progress").All()
	require.Len(t, progress, 10)
	for i, entry := range progress {
		assert.Equal(t, int64((i+1)*10), entry.ContextMap()["percent"])
	}
}

func TestRun_CustomProgress(t *testing.T) {
	t.Parallel()
	opts := testOptions("", 20)
	opts.SaveExcel, opts.SaveCSV, opts.CreateMap = false, false, false

	var percents []int
	opts.Progress = func(_, _, percent int) { percents = append(percents, percent) }

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, percents)
}

func TestWriterFor(t *testing.T) {
	t.Parallel()
	for _, f := range []export.Format{export.FormatXLSX, export.FormatCSV, export.FormatJSON, export.FormatGeoJSON, export.FormatSQLite} {
		write, err := writerFor(f)
		require.NoError(t, err, f)
		assert.NotNil(t, write, f)
	}

	_, err := writerFor(export.Format("pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidArgument))
}

func TestRun_PurchaseDatesFollowNow(t *testing.T) {
	t.Parallel()
	opts := testOptions("", 200)
	opts.SaveExcel, opts.SaveCSV, opts.CreateMap = false, false, false

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	for _, p := range res.Table.Profiles() {
		assert.Equal(t, 2026, p.PurchaseDate.Year())
		assert.False(t, p.PurchaseDate.After(opts.Now))
	}
}
