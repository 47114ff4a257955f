package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/foodprice-api/utils"
)

const (
	isoColumn       = "countryiso3"
	directoryColumn = "directory"
	byteOrderMark   = "\ufeff"
)

var (
	ErrDatasetNotListed = fmt.Errorf("dataset is not listed")
	ErrMissingColumn    = fmt.Errorf("missing column")
)

// CountryEntry is a row of the WFP countries list
type CountryEntry struct {
	ISO       string `json:"countryiso3"`
	Directory string `json:"directory"`
}

// CountryList is the list of countries that have a WFP food price dataset
type CountryList struct {
	Entries     []CountryEntry
	directories map[string]struct{}
}

// LoadCountryListFile reads the list from a CSV file
func LoadCountryListFile(path string) (*CountryList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCountryList(file)
}

// LoadCountryList reads the list from CSV with a header row. The directory
// column is optional.
func LoadCountryList(r io.Reader) (*CountryList, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}

	isoIndex, directoryIndex := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case isoColumn:
			isoIndex = i
		case directoryColumn:
			directoryIndex = i
		}
	}
	if isoIndex < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, isoColumn)
	}

	l := &CountryList{
		Entries:     make([]CountryEntry, 0),
		directories: make(map[string]struct{}),
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		e := CountryEntry{}
		if isoIndex < len(record) {
			e.ISO = utils.NormalizeISO(record[isoIndex])
		}
		if directoryIndex >= 0 && directoryIndex < len(record) {
			e.Directory = strings.TrimSpace(record[directoryIndex])
			if e.Directory != "" {
				l.directories[e.Directory] = struct{}{}
			}
		}
		if e.ISO == "" && e.Directory == "" {
			continue
		}
		l.Entries = append(l.Entries, e)
	}

	return l, nil
}

// ISOCodes returns the distinct ISO codes in file order
func (l *CountryList) ISOCodes() []string {
	codes := make([]string, 0, len(l.Entries))
	seen := make(map[string]struct{}, len(l.Entries))
	for _, e := range l.Entries {
		if e.ISO == "" {
			continue
		}
		if _, ok := seen[e.ISO]; ok {
			continue
		}
		seen[e.ISO] = struct{}{}
		codes = append(codes, e.ISO)
	}
	return codes
}

// Directories returns the dataset names in file order
func (l *CountryList) Directories() []string {
	names := make([]string, 0, len(l.directories))
	for _, e := range l.Entries {
		if e.Directory != "" {
			names = append(names, e.Directory)
		}
	}
	return names
}

// HasDirectory tells whether the dataset name is in the list
func (l *CountryList) HasDirectory(name string) bool {
	_, ok := l.directories[name]
	return ok
}

// CheckDirectory returns ErrDatasetNotListed for an unknown dataset name
func (l *CountryList) CheckDirectory(name string) error {
	if !l.HasDirectory(name) {
		return fmt.Errorf("%w: %s", ErrDatasetNotListed, name)
	}
	return nil
}
