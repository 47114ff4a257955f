package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testWorldMap = `{
  "name": "worldmap",
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"sovereignt": "Afghanistan", "sov_a3": "AFG", "level": 2, "adm0_iso": "AFG", "admin": "Afghanistan", "name": "Afghanistan", "name_long": "Afghanistan", "brk_a3": "AFG", "brk_name": "Afghanistan", "abbrev": "Afg."}, "geometry": {"type": "Polygon", "coordinates": [[[61.2, 35.6], [62.2, 35.2], [61.2, 35.6]]]}},
    {"type": "Feature", "properties": {"sovereignt": "France", "sov_a3": "FR1", "level": 2, "adm0_iso": "FRA", "admin": "France", "name": "France"}, "geometry": {"type": "Polygon", "coordinates": [[[2.5, 51.1], [2.6, 50.8], [2.5, 51.1]]]}},
    {"type": "Feature", "properties": {"sovereignt": "Syria", "sov_a3": "SYR", "level": 2, "adm0_iso": "syr", "admin": "Syria", "name": "Syria"}, "geometry": {"type": "Polygon", "coordinates": [[[38.8, 33.4], [36.8, 32.3], [38.8, 33.4]]]}},
    {"type": "Feature", "properties": {"sovereignt": "Japan", "sov_a3": "JPN", "level": 2, "adm0_iso": "JPN", "admin": "Japan", "name": "Japan"}, "geometry": {"type": "Polygon", "coordinates": [[[134.6, 34.1], [134.8, 33.8], [134.6, 34.1]]]}}
  ]
}`

func loadTestWorldMap(t *testing.T) *WorldMap {
	w, err := LoadWorldMap(strings.NewReader(testWorldMap))
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestLoadWorldMap(t *testing.T) {
	w := loadTestWorldMap(t)

	assert.Equal(t, 4, w.Len())
	assert.Equal(t, "AFG", w.Rows[0].AdmISO)
	assert.Equal(t, "Afg.", w.Rows[0].Abbrev)
	assert.Equal(t, 2, w.Rows[0].Level)
	assert.Equal(t, "Polygon", w.Rows[0].Geometry.Type)
	assert.Equal(t, "SYR", w.Rows[2].AdmISO, "iso code should be normalized")
}

func TestLoadWorldMapMissingISO(t *testing.T) {
	_, err := LoadWorldMap(strings.NewReader(`{"features": [{"type": "Feature", "properties": {"name": "Nowhere"}}]}`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ErrMissingISO.Error())
}

func TestLoadWorldMapInvalidJSON(t *testing.T) {
	_, err := LoadWorldMap(strings.NewReader(`{"features": [`))
	assert.Error(t, err)
}

func TestLoadWorldMapFileNotExist(t *testing.T) {
	_, err := LoadWorldMapFile("not-exist.json")
	assert.Error(t, err)
}
