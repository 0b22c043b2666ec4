// Package geomap renders profiles as a self-contained Leaflet map with one
// clustered, toggleable layer per salutation.
package geomap

import (
	"bufio"
	"html/template"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/geoprofile-cli/internal/dataset"
	"github.com/sells-group/geoprofile-cli/internal/export"
	"github.com/sells-group/geoprofile-cli/internal/model"
)

// DefaultFileName is the map output file name.
const DefaultFileName = "geo_profiles_map.html"

// Style is the marker appearance for one salutation.
type Style struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Glyph string `json:"glyph"`
}

// Styles maps each salutation to its marker style.
var Styles = map[model.Salutation]Style{
	model.SalutationHerr: {Color: "#2a81cb", Icon: "male", Glyph: "♂"},
	model.SalutationFrau: {Color: "#e75480", Icon: "female", Glyph: "♀"},
}

// Layer is one toggleable overlay on the map.
type Layer struct {
	Name     string                     `json:"name"`
	Style    Style                      `json:"style"`
	Features *geojson.FeatureCollection `json:"features"`
}

// Options configures the rendered page.
type Options struct {
	Title     string
	CenterLat float64
	CenterLon float64
	Zoom      int
	TileURL   string
	TileAttr  string
}

// Option mutates Options.
type Option func(*Options)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithCenter sets the initial map center and zoom.
func WithCenter(lat, lon float64, zoom int) Option {
	return func(o *Options) {
		o.CenterLat, o.CenterLon, o.Zoom = lat, lon, zoom
	}
}

// WithTiles overrides the tile provider.
func WithTiles(url, attribution string) Option {
	return func(o *Options) { o.TileURL, o.TileAttr = url, attribution }
}

func defaultOptions() Options {
	return Options{
		Title:     "Geo Profiles",
		CenterLat: 51.1657,
		CenterLon: 10.4515,
		Zoom:      6,
		TileURL:   "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		TileAttr:  `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
	}
}

// Layers splits the table into one layer per salutation, in
// model.Salutations order. Every feature carries a rendered popup.
func Layers(t *dataset.Table) []Layer {
	layers := make([]Layer, 0, len(model.Salutations))
	for _, s := range model.Salutations {
		profiles := t.Filter(s)
		fc := export.FeatureCollection(profiles)
		for i, f := range fc.Features {
			f.Properties["popup"] = Popup(profiles[i])
		}
		layers = append(layers, Layer{Name: string(s), Style: Styles[s], Features: fc})
	}
	return layers
}

type pageData struct {
	Options
	Layers []Layer
	Total  int
}

// Write renders the map page for the table to w.
func Write(w io.Writer, t *dataset.Table, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	data := pageData{Options: o, Layers: Layers(t), Total: t.Len()}
	if err := pageTmpl.Execute(w, data); err != nil {
		return eris.Wrap(err, "geomap: render template")
	}
	return nil
}

// Render writes the map page for the table to path, replacing any existing
// file.
func Render(t *dataset.Table, path string, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return model.NewIOError("create map", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Write(bw, t, opts...); err != nil {
		return model.NewIOError("write map", path, err)
	}
	if err := bw.Flush(); err != nil {
		return model.NewIOError("write map", path, err)
	}
	if err := f.Close(); err != nil {
		return model.NewIOError("close map", path, err)
	}

	zap.L().Info("geomap: wrote map",
		zap.String("path", path),
		zap.Int("markers", t.Len()),
	)
	return nil
}

var pageTmpl = template.Must(template.New("map").Parse(pageHTML))
