package geo

import (
	"github.com/bitmark-inc/foodprice-api/schema"
	"github.com/bitmark-inc/foodprice-api/utils"
)

// IndexedBoundary is a boundary row along with its index in the world map
type IndexedBoundary struct {
	Index int
	schema.Boundary
}

// Partition splits the world map into the rows of tracked countries and
// the rest. Both keep the order of the world map.
type Partition struct {
	Matched   []IndexedBoundary
	Unmatched []IndexedBoundary
}

// Partition puts every row whose ISO code is one of the given codes into
// Matched and every other row into Unmatched. Codes without a row are
// ignored and repeated codes count once.
func (w *WorldMap) Partition(isoCodes []string) Partition {
	set := utils.ISOSet(isoCodes)

	p := Partition{
		Matched:   make([]IndexedBoundary, 0, len(set)),
		Unmatched: make([]IndexedBoundary, 0, len(w.Rows)),
	}
	for i, row := range w.Rows {
		b := IndexedBoundary{Index: i, Boundary: row}
		if _, ok := set[row.AdmISO]; ok {
			p.Matched = append(p.Matched, b)
		} else {
			p.Unmatched = append(p.Unmatched, b)
		}
	}

	return p
}

// MatchedISO returns the ISO codes of the matched rows
func (p Partition) MatchedISO() []string {
	codes := make([]string, 0, len(p.Matched))
	seen := make(map[string]struct{}, len(p.Matched))
	for _, b := range p.Matched {
		if _, ok := seen[b.AdmISO]; ok {
			continue
		}
		seen[b.AdmISO] = struct{}{}
		codes = append(codes, b.AdmISO)
	}
	return codes
}
