package figure

import (
	"github.com/bitmark-inc/foodprice-api/geo"
	"github.com/bitmark-inc/foodprice-api/schema"
)

const (
	ProjectionMercator     = "mercator"
	ProjectionOrthographic = "orthographic"

	TrackedColor   = "rgb(245, 10, 10)"
	UntrackedColor = "rgb(211, 211, 211)"

	choroplethType = "choropleth"
	fitBoundsGeo   = "geojson"
)

type Feature struct {
	Type     string          `json:"type"`
	ID       int             `json:"id"`
	Geometry schema.Geometry `json:"geometry"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Trace is a choropleth layer with a flat fill
type Trace struct {
	Type       string            `json:"type"`
	GeoJSON    FeatureCollection `json:"geojson"`
	Locations  []int             `json:"locations"`
	Z          []int             `json:"z"`
	Colorscale [][]interface{}   `json:"colorscale"`
	ShowScale  bool              `json:"showscale"`
}

type Projection struct {
	Type string `json:"type"`
}

type GeoLayout struct {
	Projection Projection `json:"projection"`
	FitBounds  string     `json:"fitbounds"`
}

type Layout struct {
	Title string    `json:"title,omitempty"`
	Geo   GeoLayout `json:"geo"`
}

// Figure is a plotly compatible figure document
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// ProjectionFor maps the state of the projection switch to a projection
func ProjectionFor(on bool) string {
	if on {
		return ProjectionMercator
	}
	return ProjectionOrthographic
}

func flatTrace(rows []geo.IndexedBoundary, color string, z int) Trace {
	t := Trace{
		Type: choroplethType,
		GeoJSON: FeatureCollection{
			Type:     "FeatureCollection",
			Features: make([]Feature, 0, len(rows)),
		},
		Locations:  make([]int, 0, len(rows)),
		Z:          make([]int, 0, len(rows)),
		Colorscale: [][]interface{}{{0, color}, {1, color}},
		ShowScale:  false,
	}

	for _, r := range rows {
		t.GeoJSON.Features = append(t.GeoJSON.Features, Feature{
			Type:     "Feature",
			ID:       r.Index,
			Geometry: r.Geometry,
		})
		t.Locations = append(t.Locations, r.Index)
		t.Z = append(t.Z, z)
	}

	return t
}

// Build returns the two layer world map of a partition. The projection is
// not validated.
func Build(p geo.Partition, title, projection string) Figure {
	return Figure{
		Data: []Trace{
			flatTrace(p.Matched, TrackedColor, 1),
			flatTrace(p.Unmatched, UntrackedColor, 2),
		},
		Layout: Layout{
			Title: title,
			Geo: GeoLayout{
				Projection: Projection{Type: projection},
				FitBounds:  fitBoundsGeo,
			},
		},
	}
}

// WithProjection returns a copy of the figure using another projection
func (f Figure) WithProjection(projection string) Figure {
	f.Layout.Geo.Projection.Type = projection
	return f
}
