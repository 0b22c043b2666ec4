package export

import (
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/sells-group/geoprofile-cli/internal/dataset"
	"github.com/sells-group/geoprofile-cli/internal/model"
)

// MarshalCSV encodes profiles as CSV with a header row of model.Columns.
func MarshalCSV(profiles []model.Profile) ([]byte, error) {
	data, err := csvutil.Marshal(profiles)
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal csv")
	}
	return data, nil
}

// WriteCSV writes the table as comma-separated values with a header row.
func WriteCSV(t *dataset.Table, path string) error {
	data, err := MarshalCSV(t.Profiles())
	if err != nil {
		return err
	}
	if err := writeFile("write csv", path, data); err != nil {
		return err
	}
	logWritten(FormatCSV, path, t.Len())
	return nil
}

// ReadCSV reads a file written by WriteCSV.
func ReadCSV(path string) ([]model.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewIOError("read csv", path, err)
	}

	var profiles []model.Profile
	if err := csvutil.Unmarshal(data, &profiles); err != nil {
		return nil, eris.Wrapf(err, "export: unmarshal csv %s", path)
	}
	return profiles, nil
}
