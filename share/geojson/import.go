package geojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/bitmark-inc/foodprice-api/schema"
	"github.com/bitmark-inc/foodprice-api/store"
)

type GeoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   schema.Geometry        `json:"geometry"`
}

type GeoJSON struct {
	Type     string       `json:"type"`
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}

var extensions = map[string]struct{}{
	".json":    {},
	".geojson": {},
}

// ValidateMap makes sure the content is a feature collection with features
func ValidateMap(content []byte) error {
	var result GeoJSON
	if err := json.Unmarshal(content, &result); err != nil {
		return err
	}

	if len(result.Features) == 0 {
		return fmt.Errorf("no feature found")
	}

	return nil
}

// ImportMaps uploads every GeoJSON file of a directory into the drive under
// its file name. Invalid files are skipped and reported in the error.
func ImportMaps(drive store.MapDrive, dir string) ([]string, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	var result *multierror.Error
	imported := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if _, ok := extensions[strings.ToLower(filepath.Ext(f.Name()))]; !ok {
			continue
		}

		content, err := ioutil.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		if err := ValidateMap(content); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", f.Name(), err))
			continue
		}

		if err := drive.PutMap(f.Name(), bytes.NewReader(content)); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", f.Name(), err))
			continue
		}
		imported = append(imported, f.Name())
	}

	return imported, result.ErrorOrNil()
}
