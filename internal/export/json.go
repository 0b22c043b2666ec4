package export

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geoprofile-cli/internal/dataset"
)

// WriteJSON writes the table as an indented JSON array. Non-ASCII characters
// are kept as-is.
func WriteJSON(t *dataset.Table, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.Profiles()); err != nil {
		return eris.Wrap(err, "export: marshal json")
	}
	if err := writeFile("write json", path, buf.Bytes()); err != nil {
		return err
	}
	logWritten(FormatJSON, path, t.Len())
	return nil
}
