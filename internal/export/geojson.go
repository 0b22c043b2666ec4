package export

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/geoprofile-cli/internal/dataset"
	"github.com/sells-group/geoprofile-cli/internal/model"
)

// Point returns the profile location as a WGS84 point (lon, lat order).
func Point(p model.Profile) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Longitude, p.Latitude}).SetSRID(4326)
}

// FeatureCollection converts profiles to point features carrying every
// column as a property. The collection bbox covers all points.
func FeatureCollection(profiles []model.Profile) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(profiles)),
	}
	if len(profiles) == 0 {
		return fc
	}

	bounds := geom.NewBounds(geom.XY)
	for _, p := range profiles {
		pt := Point(p)
		bounds.Extend(pt)
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         p.ID,
			Geometry:   pt,
			Properties: p.Fields(),
		})
	}
	fc.BBox = bounds
	return fc
}

// MarshalGeoJSON encodes profiles as a GeoJSON FeatureCollection.
func MarshalGeoJSON(profiles []model.Profile) ([]byte, error) {
	data, err := json.Marshal(FeatureCollection(profiles))
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal geojson")
	}
	return data, nil
}

// WriteGeoJSON writes the table as a GeoJSON FeatureCollection.
func WriteGeoJSON(t *dataset.Table, path string) error {
	data, err := MarshalGeoJSON(t.Profiles())
	if err != nil {
		return err
	}
	if err := writeFile("write geojson", path, data); err != nil {
		return err
	}
	logWritten(FormatGeoJSON, path, t.Len())
	return nil
}
