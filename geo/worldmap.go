package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/foodprice-api/schema"
	"github.com/bitmark-inc/foodprice-api/utils"
)

const (
	logPrefix = "geo"
)

var (
	ErrMissingISO = fmt.Errorf("boundary without adm0_iso")
)

type geoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   schema.Geometry        `json:"geometry"`
}

type geoJSON struct {
	Name     string       `json:"name"`
	Features []geoFeature `json:"features"`
}

// WorldMap is the boundary table in the order of the source snapshot
type WorldMap struct {
	Rows []schema.Boundary
}

// Len returns the number of rows of the table
func (w *WorldMap) Len() int {
	return len(w.Rows)
}

// LoadWorldMapFile reads the boundary table from a GeoJSON file
func LoadWorldMapFile(path string) (*WorldMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadWorldMap(file)
}

// LoadWorldMap reads the boundary table from a GeoJSON feature collection
func LoadWorldMap(r io.Reader) (*WorldMap, error) {
	var result geoJSON
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, err
	}

	rows := make([]schema.Boundary, 0, len(result.Features))
	for i, f := range result.Features {
		iso := utils.NormalizeISO(stringProperty(f.Properties, "adm0_iso"))
		if iso == "" {
			return nil, fmt.Errorf("%w, feature #%d", ErrMissingISO, i)
		}

		rows = append(rows, schema.Boundary{
			Sovereignt: stringProperty(f.Properties, "sovereignt"),
			SovA3:      stringProperty(f.Properties, "sov_a3"),
			Level:      intProperty(f.Properties, "level"),
			AdmISO:     iso,
			Admin:      stringProperty(f.Properties, "admin"),
			Name:       stringProperty(f.Properties, "name"),
			NameLong:   stringProperty(f.Properties, "name_long"),
			BrkA3:      stringProperty(f.Properties, "brk_a3"),
			BrkName:    stringProperty(f.Properties, "brk_name"),
			Abbrev:     stringProperty(f.Properties, "abbrev"),
			Geometry:   f.Geometry,
		})
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"name":   result.Name,
		"rows":   len(rows),
	}).Info("world map loaded")

	return &WorldMap{Rows: rows}, nil
}

func stringProperty(properties map[string]interface{}, name string) string {
	v, ok := properties[name].(string)
	if !ok {
		return ""
	}
	return v
}

func intProperty(properties map[string]interface{}, name string) int {
	v, ok := properties[name].(float64)
	if !ok {
		return 0
	}
	return int(v)
}
