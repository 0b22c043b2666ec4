package synth

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/geoprofile-cli/internal/model"
)

// genders maps every pooled first name to the salutation it belongs to.
var genders = func() map[string]model.Salutation {
	m := make(map[string]model.Salutation, len(maleFirstNames)+len(femaleFirstNames))
	for _, n := range maleFirstNames {
		m[n] = model.SalutationHerr
	}
	for _, n := range femaleFirstNames {
		m[n] = model.SalutationFrau
	}
	return m
}()

// GenderOf returns the salutation registered for a first name.
func GenderOf(firstName string) (model.Salutation, bool) {
	s, ok := genders[firstName]
	return s, ok
}

// IsProvider reports whether domain is one of the default email providers.
func IsProvider(domain string) bool {
	for _, p := range emailProviders {
		if p == domain {
			return true
		}
	}
	return false
}

// IsProduct reports whether name is in the purchase catalog.
func IsProduct(name string) bool {
	for _, p := range products {
		if p == name {
			return true
		}
	}
	return false
}

var umlauts = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
	"Ä", "Ae", "Ö", "Oe", "Ü", "Ue",
)

// Transliterate rewrites German umlauts the conventional way and strips any
// remaining diacritics, so "Jördis Weiß" becomes "Joerdis Weiss" and "Zoë"
// becomes "Zoe".
func Transliterate(s string) string {
	s = umlauts.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// emailPart lower-cases and transliterates a name, keeping only a-z, 0-9
// and hyphens.
func emailPart(name string) string {
	name = strings.ToLower(Transliterate(name))
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
