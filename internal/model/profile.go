package model

import (
	"fmt"
	"math"
	"strconv"
)

// Salutation is the gendered German form of address.
type Salutation string

const (
	SalutationHerr Salutation = "Herr"
	SalutationFrau Salutation = "Frau"
)

// Salutations lists every valid salutation in layer order.
var Salutations = []Salutation{SalutationHerr, SalutationFrau}

// Valid reports whether s is one of the known salutations.
func (s Salutation) Valid() bool {
	return s == SalutationHerr || s == SalutationFrau
}

// Columns is the exported column order. Every tabular writer uses it as the
// header row, so it must stay in sync with the csv tags on Profile.
var Columns = []string{
	"id",
	"salutation",
	"first_name",
	"last_name",
	"street",
	"zip_code",
	"city",
	"state",
	"phone",
	"email",
	"latitude",
	"longitude",
	"birth_date",
	"purchase_type",
	"purchase_channel",
	"purchase_date",
	"base_price",
	"quantity",
	"subtotal",
	"sales_tax_rate",
	"tax_amount",
	"total_amount",
}

// Sales channels a purchase can be made through.
const (
	ChannelOnline  = "Online"
	ChannelInStore = "In-Store"
)

// Channels lists every sales channel.
var Channels = []string{ChannelOnline, ChannelInStore}

// Profile is one synthesized fictitious person with address, contact,
// location and a single purchase.
type Profile struct {
	ID           string     `json:"id" csv:"id"`
	Salutation   Salutation `json:"salutation" csv:"salutation"`
	FirstName    string     `json:"first_name" csv:"first_name"`
	LastName     string     `json:"last_name" csv:"last_name"`
	Street       string     `json:"street" csv:"street"`
	ZipCode      string     `json:"zip_code" csv:"zip_code"`
	City         string     `json:"city" csv:"city"`
	State        string     `json:"state" csv:"state"`
	Phone        string     `json:"phone" csv:"phone"`
	Email        string     `json:"email" csv:"email"`
	Latitude     float64    `json:"latitude" csv:"latitude"`
	Longitude    float64    `json:"longitude" csv:"longitude"`
	BirthDate    Date       `json:"birth_date" csv:"birth_date"`
	PurchaseType string     `json:"purchase_type" csv:"purchase_type"`
	Channel      string     `json:"purchase_channel" csv:"purchase_channel"`
	PurchaseDate Date       `json:"purchase_date" csv:"purchase_date"`
	BasePrice    float64    `json:"base_price" csv:"base_price"`
	Quantity     int        `json:"quantity" csv:"quantity"`
	Subtotal     float64    `json:"subtotal" csv:"subtotal"`
	SalesTaxRate float64    `json:"sales_tax_rate" csv:"sales_tax_rate"`
	TaxAmount    float64    `json:"tax_amount" csv:"tax_amount"`
	TotalAmount  float64    `json:"total_amount" csv:"total_amount"`
}

// FullName returns the salutation followed by first and last name.
func (p Profile) FullName() string {
	return fmt.Sprintf("%s %s %s", p.Salutation, p.FirstName, p.LastName)
}

// Address returns the single-line postal address.
func (p Profile) Address() string {
	return fmt.Sprintf("%s, %s %s", p.Street, p.ZipCode, p.City)
}

// Record returns the profile as strings in Columns order.
func (p Profile) Record() []string {
	return []string{
		p.ID,
		string(p.Salutation),
		p.FirstName,
		p.LastName,
		p.Street,
		p.ZipCode,
		p.City,
		p.State,
		p.Phone,
		p.Email,
		formatFloat(p.Latitude),
		formatFloat(p.Longitude),
		p.BirthDate.String(),
		p.PurchaseType,
		p.Channel,
		p.PurchaseDate.String(),
		formatFloat(p.BasePrice),
		strconv.Itoa(p.Quantity),
		formatFloat(p.Subtotal),
		formatFloat(p.SalesTaxRate),
		formatFloat(p.TaxAmount),
		formatFloat(p.TotalAmount),
	}
}

// Fields returns the profile keyed by column name, used for GeoJSON
// properties and the preview API.
func (p Profile) Fields() map[string]any {
	return map[string]any{
		"id":               p.ID,
		"salutation":       string(p.Salutation),
		"first_name":       p.FirstName,
		"last_name":        p.LastName,
		"street":           p.Street,
		"zip_code":         p.ZipCode,
		"city":             p.City,
		"state":            p.State,
		"phone":            p.Phone,
		"email":            p.Email,
		"latitude":         p.Latitude,
		"longitude":        p.Longitude,
		"birth_date":       p.BirthDate.String(),
		"purchase_type":    p.PurchaseType,
		"purchase_channel": p.Channel,
		"purchase_date":    p.PurchaseDate.String(),
		"base_price":       p.BasePrice,
		"quantity":         p.Quantity,
		"subtotal":         p.Subtotal,
		"sales_tax_rate":   p.SalesTaxRate,
		"tax_amount":       p.TaxAmount,
		"total_amount":     p.TotalAmount,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RoundCurrency rounds an amount to whole cents.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// Amounts is the price breakdown of a purchase, all rounded to cents.
type Amounts struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// Breakdown splits a purchase into net subtotal, tax and gross total. The
// total follows TotalAmount and the tax is the remainder, so
// Subtotal + TaxAmount == Total to the cent.
func Breakdown(basePrice float64, quantity int, taxRate float64) Amounts {
	total := TotalAmount(basePrice, quantity, taxRate)
	subtotal := RoundCurrency(basePrice * float64(quantity))
	return Amounts{
		Subtotal:  subtotal,
		TaxAmount: RoundCurrency(total - subtotal),
		Total:     total,
	}
}

// TotalAmount derives the gross total of a purchase from its unit price,
// quantity and sales tax rate, rounded to cents.
func TotalAmount(basePrice float64, quantity int, taxRate float64) float64 {
	return RoundCurrency(basePrice * float64(quantity) * (1 + taxRate))
}
