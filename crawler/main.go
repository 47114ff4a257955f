package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/foodprice-api/background"
	"github.com/bitmark-inc/foodprice-api/catalog"
	"github.com/bitmark-inc/foodprice-api/config"
	"github.com/bitmark-inc/foodprice-api/external/hdx"
	"github.com/bitmark-inc/foodprice-api/store"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 15 * time.Second
)

type Cron interface {
	Run()
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	config.Load(configFile)
	config.InitLog()

	countries, err := catalog.LoadCountryListFile(viper.GetString("dataset.countries"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		viper.GetString("drive.name"),
	)

	hdxClient := hdx.New(viper.GetString("hdx.url"), &http.Client{
		Timeout: defaultTimeout,
	})

	crawler := newDatasetCrawler(background.NewIngestor(hdxClient, mStore, countries), countries.Directories())
	crawler.Run()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if mongoClient != nil {
		log.Info("Shutting down mongo store")
		_ = mongoClient.Disconnect(ctx)
	}
}
