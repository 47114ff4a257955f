package figure

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/foodprice-api/geo"
	"github.com/bitmark-inc/foodprice-api/schema"
)

func testPartition() geo.Partition {
	polygon := schema.Geometry{
		Type:        "Polygon",
		Coordinates: [][][]float64{{{0, 0}, {1, 0}, {0, 0}}},
	}
	return geo.Partition{
		Matched: []geo.IndexedBoundary{
			{Index: 0, Boundary: schema.Boundary{AdmISO: "AFG", Geometry: polygon}},
			{Index: 2, Boundary: schema.Boundary{AdmISO: "SYR", Geometry: polygon}},
		},
		Unmatched: []geo.IndexedBoundary{
			{Index: 1, Boundary: schema.Boundary{AdmISO: "FRA", Geometry: polygon}},
		},
	}
}

func TestProjectionFor(t *testing.T) {
	assert.Equal(t, ProjectionMercator, ProjectionFor(true))
	assert.Equal(t, ProjectionOrthographic, ProjectionFor(false))
}

func TestBuild(t *testing.T) {
	f := Build(testPartition(), "title", ProjectionMercator)

	assert.Len(t, f.Data, 2)

	tracked := f.Data[0]
	assert.Equal(t, "choropleth", tracked.Type)
	assert.Equal(t, []int{0, 2}, tracked.Locations)
	assert.Equal(t, []int{1, 1}, tracked.Z)
	assert.Equal(t, [][]interface{}{{0, TrackedColor}, {1, TrackedColor}}, tracked.Colorscale)
	assert.False(t, tracked.ShowScale)
	assert.Len(t, tracked.GeoJSON.Features, 2)
	assert.Equal(t, 2, tracked.GeoJSON.Features[1].ID)

	untracked := f.Data[1]
	assert.Equal(t, []int{1}, untracked.Locations)
	assert.Equal(t, []int{2}, untracked.Z)
	assert.Equal(t, [][]interface{}{{0, UntrackedColor}, {1, UntrackedColor}}, untracked.Colorscale)

	assert.Equal(t, ProjectionMercator, f.Layout.Geo.Projection.Type)
	assert.Equal(t, "geojson", f.Layout.Geo.FitBounds)
}

func TestWithProjectionOnlyChangesProjection(t *testing.T) {
	f := Build(testPartition(), "title", ProjectionMercator)
	g := f.WithProjection(ProjectionOrthographic)

	assert.Equal(t, ProjectionMercator, f.Layout.Geo.Projection.Type, "original figure should be untouched")
	assert.Equal(t, ProjectionOrthographic, g.Layout.Geo.Projection.Type)
	assert.Equal(t, f.Data, g.Data)
	assert.Equal(t, f.Layout.Title, g.Layout.Title)
	assert.Equal(t, f.Layout.Geo.FitBounds, g.Layout.Geo.FitBounds)
}

func TestWithUnknownProjection(t *testing.T) {
	f := Build(testPartition(), "", ProjectionMercator).WithProjection("no-such-projection")
	assert.Equal(t, "no-such-projection", f.Layout.Geo.Projection.Type)
}

func TestRender(t *testing.T) {
	r := NewRenderer(Build(testPartition(), "title", ProjectionMercator), 0, time.Minute)

	b, err := r.Render(ProjectionOrthographic)
	assert.NoError(t, err)

	var doc struct {
		Data   []json.RawMessage `json:"data"`
		Layout struct {
			Geo struct {
				Projection struct {
					Type string `json:"type"`
				} `json:"projection"`
			} `json:"geo"`
		} `json:"layout"`
	}
	assert.NoError(t, json.Unmarshal(b, &doc))
	assert.Len(t, doc.Data, 2)
	assert.Equal(t, ProjectionOrthographic, doc.Layout.Geo.Projection.Type)

	again, err := r.Render(ProjectionOrthographic)
	assert.NoError(t, err)
	assert.Equal(t, b, again)

	mercator, err := r.Render(ProjectionMercator)
	assert.NoError(t, err)
	assert.NotEqual(t, b, mercator)
}

func TestRenderOnlyCachesKnownProjections(t *testing.T) {
	r := NewRenderer(Build(testPartition(), "title", ProjectionMercator), 0, time.Minute)

	for i := 0; i < 50; i++ {
		b, err := r.Render(fmt.Sprintf("junk-%d", i))
		assert.NoError(t, err)
		assert.Contains(t, string(b), fmt.Sprintf(`"type":"junk-%d"`, i))
	}
	assert.Equal(t, 0, r.cache.Len(false))

	_, err := r.Render(ProjectionMercator)
	assert.NoError(t, err)
	_, err = r.Render(ProjectionOrthographic)
	assert.NoError(t, err)
	_, err = r.Render("junk-0")
	assert.NoError(t, err)

	assert.Equal(t, 2, r.cache.Len(false))
	assert.True(t, r.cache.Has(ProjectionMercator))
	assert.False(t, r.cache.Has("junk-0"))
}

func TestRendererUpdate(t *testing.T) {
	r := NewRenderer(Build(testPartition(), "title", ProjectionMercator), 0, time.Minute)

	before, err := r.Render(ProjectionMercator)
	assert.NoError(t, err)

	p := testPartition()
	p.Matched = append(p.Matched, p.Unmatched...)
	p.Unmatched = nil
	r.Update(Build(p, "title", ProjectionMercator))

	after, err := r.Render(ProjectionMercator)
	assert.NoError(t, err)
	assert.NotEqual(t, before, after)

	f := r.Figure(ProjectionMercator)
	assert.Equal(t, []int{0, 2, 1}, f.Data[0].Locations)
	assert.Empty(t, f.Data[1].Locations)
}
