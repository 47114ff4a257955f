package main

import (
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/foodprice-api/background"
)

type datasetCrawler struct {
	ingestor *background.Ingestor
	datasets []string
}

func (c datasetCrawler) Run() {
	err := c.ingestor.IngestAll(c.datasets)
	if err == nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "datasets": len(c.datasets)}).Info("ingested datasets from HDX")
		return
	}

	failed := 0
	if merr, ok := err.(*multierror.Error); ok {
		failed = len(merr.Errors)
	}
	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"datasets": len(c.datasets),
		"failed":   failed,
		"error":    err,
	}).Error("ingest datasets from HDX")
}

// newDatasetCrawler - new cron job refreshing every listed dataset
func newDatasetCrawler(ingestor *background.Ingestor, datasets []string) Cron {
	return &datasetCrawler{
		ingestor: ingestor,
		datasets: datasets,
	}
}
