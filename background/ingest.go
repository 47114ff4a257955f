package background

import (
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/foodprice-api/catalog"
	"github.com/bitmark-inc/foodprice-api/external/hdx"
	"github.com/bitmark-inc/foodprice-api/store"
)

const (
	logPrefix = "ingest"
)

// Ingestor copies dataset metadata from the HDX catalog into the store
type Ingestor struct {
	catalog   hdx.Catalog
	store     store.CountryStore
	countries *catalog.CountryList
}

// NewIngestor - new ingestor. Only the datasets in the country list are
// accepted.
func NewIngestor(c hdx.Catalog, s store.CountryStore, countries *catalog.CountryList) *Ingestor {
	return &Ingestor{
		catalog:   c,
		store:     s,
		countries: countries,
	}
}

// Ingest stores the record of a single dataset and returns its key
func (i *Ingestor) Ingest(name string) (string, error) {
	if err := i.countries.CheckDirectory(name); err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"dataset": name,
		}).Warn("dataset is not located inside the country list")
		return "", err
	}

	country, err := i.catalog.Dataset(name)
	if err != nil {
		return "", err
	}

	key, err := i.store.PutCountry(*country)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"dataset": name,
			"error":   err,
		}).Error("could not insert dataset into database")
		return "", err
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"dataset": name,
		"key":     key,
		"country": country.CountryID,
	}).Info("included dataset inside database")

	return key, nil
}

// IngestAll ingests every dataset and collects the failures
func (i *Ingestor) IngestAll(names []string) error {
	var result *multierror.Error
	for _, name := range names {
		if _, err := i.Ingest(name); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
