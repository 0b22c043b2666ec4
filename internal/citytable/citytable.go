// Package citytable holds the German reference cities profiles are placed in.
// Each city carries the ZIP prefix, telephone area code and reference
// coordinates the synthesizer derives address, phone and location from.
package citytable

import (
	"math/rand/v2"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/geoprofile-cli/internal/model"
)

// City is one entry of the table.
type City struct {
	Name      string  `yaml:"name" json:"name"`
	State     string  `yaml:"state" json:"state"`
	ZipPrefix string  `yaml:"zip_prefix" json:"zip_prefix"`
	AreaCode  string  `yaml:"area_code" json:"area_code"`
	Lat       float64 `yaml:"lat" json:"lat"`
	Lon       float64 `yaml:"lon" json:"lon"`
}

// Validate checks that the city can be used for synthesis.
func (c City) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return eris.Wrap(model.ErrInvalidArgument, "citytable: city name is empty")
	}
	if len(c.ZipPrefix) == 0 || len(c.ZipPrefix) > 4 || !isDigits(c.ZipPrefix) {
		return eris.Wrapf(model.ErrInvalidArgument, "citytable: %s: zip prefix %q must be 1-4 digits", c.Name, c.ZipPrefix)
	}
	if c.AreaCode != "" && !isDigits(c.AreaCode) {
		return eris.Wrapf(model.ErrInvalidArgument, "citytable: %s: area code %q must be digits", c.Name, c.AreaCode)
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return eris.Wrapf(model.ErrInvalidArgument, "citytable: %s: coordinates (%f, %f) out of range", c.Name, c.Lat, c.Lon)
	}
	return nil
}

// Table is an ordered, non-empty set of cities keyed by name.
type Table struct {
	cities []City
	index  map[string]int
}

// New builds a table from the given cities. Later entries replace earlier
// ones with the same name.
func New(cities []City) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cities))}
	for _, c := range cities {
		if err := t.add(c); err != nil {
			return nil, err
		}
	}
	if len(t.cities) == 0 {
		return nil, eris.Wrap(model.ErrInvalidArgument, "citytable: table is empty")
	}
	return t, nil
}

// Default returns the built-in table.
func Default() *Table {
	t, err := New(defaultCities)
	if err != nil {
		// built-in data is static; a failure here is a programming error
		panic(err)
	}
	return t
}

func (t *Table) add(c City) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if i, ok := t.index[c.Name]; ok {
		t.cities[i] = c
		return nil
	}
	t.index[c.Name] = len(t.cities)
	t.cities = append(t.cities, c)
	return nil
}

// Pick returns a uniformly chosen city.
func (t *Table) Pick(r *rand.Rand) City {
	return t.cities[r.IntN(len(t.cities))]
}

// Lookup returns the city with the given name.
func (t *Table) Lookup(name string) (City, bool) {
	i, ok := t.index[name]
	if !ok {
		return City{}, false
	}
	return t.cities[i], true
}

// All returns a copy of every city in table order.
func (t *Table) All() []City {
	out := make([]City, len(t.cities))
	copy(out, t.cities)
	return out
}

// Len returns the number of cities.
func (t *Table) Len() int {
	return len(t.cities)
}

// file is the on-disk YAML layout accepted by LoadYAML.
type file struct {
	Cities []City `yaml:"cities"`
}

// LoadYAML returns a copy of base extended with the cities in the YAML file
// at path. Cities with an existing name override the built-in entry.
func LoadYAML(base *Table, path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewIOError("read cities", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(model.ErrInvalidArgument, "citytable: parse %s: %v", path, err)
	}

	merged := base.All()
	merged = append(merged, f.Cities...)
	return New(merged)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
