package hdx

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
)

// PriceTable is the content of a price dataset
type PriceTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Prices downloads the CSV behind a dataset resource. The first row after
// the header holds HXL hashtags and is dropped.
func (h *hdx) Prices(downloadURL string) (*PriceTable, error) {
	u, err := url.Parse(downloadURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("downloadformat", "csv")
	u.RawQuery = q.Encode()

	d, err := h.get(u.String())
	if err != nil {
		return nil, err
	}

	return ParsePrices(bytes.NewReader(d))
}

// ParsePrices reads a price CSV with a header row and an HXL row
func ParsePrices(r io.Reader) (*PriceTable, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty csv", ErrInvalidResponse)
		}
		return nil, err
	}

	t := &PriceTable{
		Columns: header,
		Rows:    make([][]string, 0),
	}

	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			continue
		}
		t.Rows = append(t.Rows, record)
	}

	return t, nil
}
