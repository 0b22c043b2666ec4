package export

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/sells-group/geoprofile-cli/internal/dataset"
	"github.com/sells-group/geoprofile-cli/internal/model"
)

const sqliteSchema = `
DROP TABLE IF EXISTS profiles;
CREATE TABLE profiles (
	id               TEXT PRIMARY KEY,
	salutation       TEXT NOT NULL,
	first_name       TEXT NOT NULL,
	last_name        TEXT NOT NULL,
	street           TEXT NOT NULL,
	zip_code         TEXT NOT NULL,
	city             TEXT NOT NULL,
	state            TEXT NOT NULL,
	phone            TEXT NOT NULL,
	email            TEXT NOT NULL,
	latitude         REAL NOT NULL,
	longitude        REAL NOT NULL,
	birth_date       TEXT NOT NULL,
	purchase_type    TEXT NOT NULL,
	purchase_channel TEXT NOT NULL,
	purchase_date    TEXT NOT NULL,
	base_price       REAL NOT NULL,
	quantity         INTEGER NOT NULL,
	subtotal         REAL NOT NULL,
	sales_tax_rate   REAL NOT NULL,
	tax_amount       REAL NOT NULL,
	total_amount     REAL NOT NULL
);
CREATE INDEX idx_profiles_city ON profiles(city);
CREATE INDEX idx_profiles_salutation ON profiles(salutation);
CREATE INDEX idx_profiles_state ON profiles(state);
`

const sqliteInsert = `INSERT INTO profiles (
	id, salutation, first_name, last_name, street, zip_code, city, state, phone,
	email, latitude, longitude, birth_date, purchase_type, purchase_channel,
	purchase_date, base_price, quantity, subtotal, sales_tax_rate, tax_amount,
	total_amount
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// WriteSQLite writes the table into a profiles table in the SQLite database
// at path. An existing profiles table is dropped first; other tables in the
// file are left alone.
func WriteSQLite(ctx context.Context, t *dataset.Table, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return model.NewIOError("open sqlite", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return model.NewIOError("migrate sqlite", path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return model.NewIOError("begin sqlite", path, err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, sqliteInsert)
	if err != nil {
		return model.NewIOError("prepare sqlite", path, err)
	}
	defer stmt.Close()

	for _, p := range t.Profiles() {
		if _, err := stmt.ExecContext(ctx,
			p.ID, string(p.Salutation), p.FirstName, p.LastName, p.Street,
			p.ZipCode, p.City, p.State, p.Phone, p.Email, p.Latitude, p.Longitude,
			p.BirthDate.String(), p.PurchaseType, p.Channel, p.PurchaseDate.String(),
			p.BasePrice, p.Quantity, p.Subtotal, p.SalesTaxRate, p.TaxAmount,
			p.TotalAmount,
		); err != nil {
			return model.NewIOError("insert sqlite", path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.NewIOError("commit sqlite", path, err)
	}
	logWritten(FormatSQLite, path, t.Len())
	return nil
}
