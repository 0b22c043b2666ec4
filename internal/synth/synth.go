// Package synth composes fictitious German profiles from fixed pools and a
// seedable random stream.
package synth

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sells-group/geoprofile-cli/internal/citytable"
	"github.com/sells-group/geoprofile-cli/internal/model"
)

// JitterDegrees is the default maximum offset, per axis, between a profile's
// coordinates and its city's reference point.
const JitterDegrees = 0.05

var (
	minBirthDate = time.Date(1940, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxBirthDate = time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// MinBirthDate and MaxBirthDate bound every generated birth date (inclusive).
func MinBirthDate() model.Date { return model.Date{Time: minBirthDate} }
func MaxBirthDate() model.Date { return model.Date{Time: maxBirthDate} }

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed makes every draw, including profile IDs, reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) {
		var key [32]byte
		binary.LittleEndian.PutUint64(key[:8], seed)
		s.setSource(rand.NewChaCha8(key))
	}
}

// WithJitter overrides the coordinate jitter in degrees. Non-positive values
// are ignored.
func WithJitter(deg float64) Option {
	return func(s *Synthesizer) {
		if deg > 0 {
			s.jitter = deg
		}
	}
}

// WithEmailProviders overrides the email domain pool. An empty pool is
// ignored.
func WithEmailProviders(domains []string) Option {
	return func(s *Synthesizer) {
		if len(domains) > 0 {
			s.providers = domains
		}
	}
}

// WithNow fixes the reference time purchase dates are drawn up to.
func WithNow(now time.Time) Option {
	return func(s *Synthesizer) {
		if !now.IsZero() {
			s.now = now
		}
	}
}

// Synthesizer generates profiles. It is not safe for concurrent use.
type Synthesizer struct {
	cities    *citytable.Table
	rng       *rand.Rand
	ids       io.Reader
	jitter    float64
	providers []string
	now       time.Time
}

// New creates a Synthesizer drawing cities from the given table. Without
// WithSeed the stream is seeded from crypto/rand.
func New(cities *citytable.Table, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		cities:    cities,
		jitter:    JitterDegrees,
		providers: emailProviders,
		now:       time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		var key [32]byte
		mustRead(key[:])
		s.setSource(rand.NewChaCha8(key))
	}
	return s
}

func (s *Synthesizer) setSource(src *rand.ChaCha8) {
	s.rng = rand.New(src)
	s.ids = src
}

// Jitter returns the configured coordinate jitter in degrees.
func (s *Synthesizer) Jitter() float64 {
	return s.jitter
}

// Generate produces one complete profile.
func (s *Synthesizer) Generate() model.Profile {
	salutation := s.salutation()
	first, last := s.Name(salutation)
	city := s.cities.Pick(s.rng)
	lat, lon := s.coordinates(city)

	base := s.basePrice()
	qty := s.quantity()
	tax := s.taxRate()
	amounts := model.Breakdown(base, qty, tax)

	return model.Profile{
		ID:           s.id(),
		Salutation:   salutation,
		FirstName:    first,
		LastName:     last,
		Street:       s.street(),
		ZipCode:      s.zip(city),
		City:         city.Name,
		State:        city.State,
		Phone:        s.phone(city),
		Email:        s.Email(first, last),
		Latitude:     lat,
		Longitude:    lon,
		BirthDate:    s.birthDate(),
		PurchaseType: s.pick(products),
		Channel:      s.pick(model.Channels),
		PurchaseDate: s.purchaseDate(),
		BasePrice:    base,
		Quantity:     qty,
		Subtotal:     amounts.Subtotal,
		SalesTaxRate: tax,
		TaxAmount:    amounts.TaxAmount,
		TotalAmount:  amounts.Total,
	}
}

func (s *Synthesizer) salutation() model.Salutation {
	return model.Salutations[s.rng.IntN(len(model.Salutations))]
}

// Name returns a first name matching the salutation and a last name.
func (s *Synthesizer) Name(sal model.Salutation) (first, last string) {
	if sal == model.SalutationFrau {
		return s.pick(femaleFirstNames), s.pick(lastNames)
	}
	return s.pick(maleFirstNames), s.pick(lastNames)
}

// Email builds a lower-case ASCII address from one of the username
// patterns first.last, flast, firstl or last.first, followed by a number
// from 1 to 100.
func (s *Synthesizer) Email(first, last string) string {
	f, l := emailPart(first), emailPart(last)
	var user string
	switch s.rng.IntN(4) {
	case 0:
		user = f + "." + l
	case 1:
		user = initial(f) + l
	case 2:
		user = f + initial(l)
	default:
		user = l + "." + f
	}
	return fmt.Sprintf("%s%d@%s", user, 1+s.rng.IntN(100), s.pick(s.providers))
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

// id draws a version 4 UUID from the synthesizer's stream.
func (s *Synthesizer) id() string {
	u, err := uuid.NewRandomFromReader(s.ids)
	if err != nil {
		// ChaCha8 and crypto/rand readers never fail
		panic("synth: uuid: " + err.Error())
	}
	return u.String()
}

// zip pads the city prefix with random digits to five characters.
func (s *Synthesizer) zip(c citytable.City) string {
	var b strings.Builder
	b.WriteString(c.ZipPrefix)
	for b.Len() < 5 {
		b.WriteByte(byte('0' + s.rng.IntN(10)))
	}
	return b.String()
}

// coordinates offsets the city reference by up to the jitter on each axis.
func (s *Synthesizer) coordinates(c citytable.City) (lat, lon float64) {
	lat = c.Lat + (s.rng.Float64()*2-1)*s.jitter
	lon = c.Lon + (s.rng.Float64()*2-1)*s.jitter
	return round6(lat), round6(lon)
}

// street returns a street name and house number, sometimes with a letter.
func (s *Synthesizer) street() string {
	num := fmt.Sprintf("%d", 1+s.rng.IntN(199))
	if s.rng.IntN(10) == 0 {
		num += string(rune('a' + s.rng.IntN(3)))
	}
	return s.pick(streetNames) + " " + num
}

// phone returns a landline number in the city's area or a mobile number.
func (s *Synthesizer) phone(c citytable.City) string {
	if c.AreaCode == "" || s.rng.IntN(2) == 0 {
		return "+49 " + s.pick(mobilePrefixes) + " " + s.digits(7+s.rng.IntN(2))
	}
	// area code plus subscriber number is ten digits
	n := 10 - len(c.AreaCode)
	if n < 5 {
		n = 5
	}
	return "+49 " + c.AreaCode + " " + s.digits(n)
}

// digits returns n random digits with a non-zero first digit.
func (s *Synthesizer) digits(n int) string {
	b := make([]byte, n)
	b[0] = byte('1' + s.rng.IntN(9))
	for i := 1; i < n; i++ {
		b[i] = byte('0' + s.rng.IntN(10))
	}
	return string(b)
}

// birthDate is uniform over the days of [MinBirthDate, MaxBirthDate].
func (s *Synthesizer) birthDate() model.Date {
	days := int(maxBirthDate.Sub(minBirthDate).Hours() / 24)
	return model.Date{Time: minBirthDate.AddDate(0, 0, s.rng.IntN(days+1))}
}

// purchaseDate is uniform over the days from January 1 of the reference
// year up to the reference date.
func (s *Synthesizer) purchaseDate() model.Date {
	y, m, d := s.now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(start).Hours() / 24)
	return model.Date{Time: start.AddDate(0, 0, s.rng.IntN(days+1))}
}

// basePrice is a unit price between 5.00 and 199.99 EUR.
func (s *Synthesizer) basePrice() float64 {
	cents := 500 + s.rng.IntN(19999-500+1)
	return float64(cents) / 100
}

// quantity is usually one, otherwise 2-5.
func (s *Synthesizer) quantity() int {
	if s.rng.Float64() < 0.7 {
		return 1
	}
	return 2 + s.rng.IntN(4)
}

// taxRate is the standard rate for most purchases, else the reduced one.
func (s *Synthesizer) taxRate() float64 {
	if s.rng.Float64() < 0.8 {
		return taxRates.standard
	}
	return taxRates.reduced
}

func (s *Synthesizer) pick(pool []string) string {
	return pool[s.rng.IntN(len(pool))]
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// mustRead fills b with cryptographically random bytes.
func mustRead(b []byte) {
	if _, err := crand.Read(b); err != nil {
		panic("crypto/rand: " + err.Error())
	}
}
