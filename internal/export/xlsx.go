package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/geoprofile-cli/internal/dataset"
	"github.com/sells-group/geoprofile-cli/internal/model"
)

// SheetName is the worksheet the profiles are written to.
const SheetName = "profiles"

var errSheetMissing = eris.New("sheet " + SheetName + " not found")

// WriteXLSX writes the table to a single-sheet workbook. Numeric columns are
// stored as numbers, everything else as text.
func WriteXLSX(t *dataset.Table, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return model.NewIOError("add sheet", path, err)
	}

	header := sheet.AddRow()
	for _, col := range t.Header() {
		header.AddCell().SetString(col)
	}

	for _, p := range t.Profiles() {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(string(p.Salutation))
		row.AddCell().SetString(p.FirstName)
		row.AddCell().SetString(p.LastName)
		row.AddCell().SetString(p.Street)
		row.AddCell().SetString(p.ZipCode)
		row.AddCell().SetString(p.City)
		row.AddCell().SetString(p.State)
		row.AddCell().SetString(p.Phone)
		row.AddCell().SetString(p.Email)
		row.AddCell().SetFloat(p.Latitude)
		row.AddCell().SetFloat(p.Longitude)
		row.AddCell().SetString(p.BirthDate.String())
		row.AddCell().SetString(p.PurchaseType)
		row.AddCell().SetString(p.Channel)
		row.AddCell().SetString(p.PurchaseDate.String())
		row.AddCell().SetFloat(p.BasePrice)
		row.AddCell().SetInt(p.Quantity)
		row.AddCell().SetFloat(p.Subtotal)
		row.AddCell().SetFloat(p.SalesTaxRate)
		row.AddCell().SetFloat(p.TaxAmount)
		row.AddCell().SetFloat(p.TotalAmount)
	}

	if err := f.Save(path); err != nil {
		return model.NewIOError("write xlsx", path, err)
	}
	logWritten(FormatXLSX, path, t.Len())
	return nil
}

// ReadXLSX returns every row of the profiles sheet, header included, as
// strings.
func ReadXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, model.NewIOError("read xlsx", path, err)
	}

	sheet, ok := f.Sheet[SheetName]
	if !ok {
		return nil, model.NewIOError("read xlsx", path, errSheetMissing)
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
