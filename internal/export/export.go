// Package export writes an assembled dataset to XLSX, CSV, JSON, GeoJSON and
// SQLite files, and reads CSV and XLSX exports back for verification.
//
// Every writer overwrites its target. Failures are returned as
// *model.IOError; a failed write may leave a partial file behind.
package export

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/sells-group/geoprofile-cli/internal/dataset"
	"github.com/sells-group/geoprofile-cli/internal/model"
)

// Format identifies an output file type.
type Format string

const (
	FormatXLSX    Format = "xlsx"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatGeoJSON Format = "geojson"
	FormatSQLite  Format = "db"
)

// WriteFunc writes a table to path.
type WriteFunc func(ctx context.Context, t *dataset.Table, path string) error

// Writer returns the writer for the given format.
func Writer(f Format) (WriteFunc, bool) {
	switch f {
	case FormatXLSX:
		return func(_ context.Context, t *dataset.Table, path string) error { return WriteXLSX(t, path) }, true
	case FormatCSV:
		return func(_ context.Context, t *dataset.Table, path string) error { return WriteCSV(t, path) }, true
	case FormatJSON:
		return func(_ context.Context, t *dataset.Table, path string) error { return WriteJSON(t, path) }, true
	case FormatGeoJSON:
		return func(_ context.Context, t *dataset.Table, path string) error { return WriteGeoJSON(t, path) }, true
	case FormatSQLite:
		return WriteSQLite, true
	default:
		return nil, false
	}
}

// writeFile replaces path with data.
func writeFile(op, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.NewIOError(op, path, err)
	}
	return nil
}

func logWritten(format Format, path string, rows int) {
	zap.L().Info("export: wrote file",
		zap.String("format", string(format)),
		zap.String("path", path),
		zap.Int("rows", rows),
	)
}
