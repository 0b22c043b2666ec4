package geomap

import (
	"html"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/geoprofile-cli/internal/model"
)

var printer = message.NewPrinter(language.German)

// PopupFields are the popup labels in display order.
var PopupFields = []string{
	"ID",
	"Name",
	"Adresse",
	"E-Mail",
	"Telefon",
	"Geburtsdatum",
	"Kaufart",
	"Menge",
	"Mehrwertsteuer",
	"Gesamtbetrag",
}

// Popup returns the escaped HTML shown when a marker is clicked.
func Popup(p model.Profile) string {
	values := []string{
		p.ID,
		p.FullName(),
		p.Address(),
		p.Email,
		p.Phone,
		p.BirthDate.Format("02.01.2006"),
		p.PurchaseType,
		printer.Sprintf("%d", p.Quantity),
		printer.Sprintf("%d %%", int(math.Round(p.SalesTaxRate*100))),
		FormatEuro(p.TotalAmount),
	}

	var b strings.Builder
	b.WriteString(`<table class="profile">`)
	for i, label := range PopupFields {
		b.WriteString("<tr><th>")
		b.WriteString(html.EscapeString(label))
		b.WriteString("</th><td>")
		b.WriteString(html.EscapeString(values[i]))
		b.WriteString("</td></tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

// FormatEuro formats an amount the German way, e.g. "1.234,50 €".
func FormatEuro(v float64) string {
	return printer.Sprintf("%.2f €", v)
}
