package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
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

var (
	mongoClient *mongo.Client
	manager     *background.BackgroundManager
)

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Worker is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if manager != nil {
			manager.Stop()
		}

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			_ = mongoClient.Disconnect(ctx)
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	config.Load(configFile)
	config.InitLog()

	countries, err := catalog.LoadCountryListFile(viper.GetString("dataset.countries"))
	if err != nil {
		log.Panic(err)
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		viper.GetString("drive.name"),
	)

	hdxClient := hdx.New(viper.GetString("hdx.url"), &http.Client{
		Timeout: 15 * time.Second,
	})

	taskServer, err := machinery.NewServer(&machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "foodprice_background",
		ResultBackend: viper.GetString("redis.conn"),
	})
	if err != nil {
		log.Panic(err)
	}

	manager = background.New(taskServer, background.NewIngestor(hdxClient, mongoStore, countries))
	if err := manager.RegisterTasks(); err != nil {
		log.Panic(err)
	}

	log.WithField("prefix", "init").Info("Start background worker")
	log.Fatal(manager.Run(viper.GetInt("worker.concurrency")))
}
