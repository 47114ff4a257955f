package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/foodprice-api/api"
	"github.com/bitmark-inc/foodprice-api/background"
	"github.com/bitmark-inc/foodprice-api/catalog"
	"github.com/bitmark-inc/foodprice-api/config"
	"github.com/bitmark-inc/foodprice-api/external/hdx"
	"github.com/bitmark-inc/foodprice-api/figure"
	"github.com/bitmark-inc/foodprice-api/geo"
	"github.com/bitmark-inc/foodprice-api/store"
)

var (
	server      *api.Server
	mongoClient *mongo.Client
)

// loadWorldMap reads the boundary table from the local snapshot, or from
// the drive when no snapshot is present
func loadWorldMap(drive store.MapDrive) (*geo.WorldMap, error) {
	file := viper.GetString("worldmap.file")
	if _, err := os.Stat(file); err == nil {
		return geo.LoadWorldMapFile(file)
	}

	log.WithField("prefix", "init").Info("No local world map. Read it from the drive.")
	content, err := drive.GetMap(viper.GetString("worldmap.drive_name"))
	if err != nil {
		return nil, err
	}
	return geo.LoadWorldMap(bytes.NewReader(content))
}

// trackedFigure colors the countries having a stored record as tracked
func trackedFigure(worldMap *geo.WorldMap, countries store.CountryStore, list *catalog.CountryList) (figure.Figure, error) {
	tracked, err := countries.GetCountries(list.ISOCodes())
	if err != nil {
		return figure.Figure{}, err
	}

	isoCodes := make([]string, 0, len(tracked))
	for iso := range tracked {
		isoCodes = append(isoCodes, iso)
	}
	partition := worldMap.Partition(isoCodes)
	log.WithFields(log.Fields{
		"prefix":    "figure",
		"tracked":   len(partition.Matched),
		"untracked": len(partition.Unmatched),
	}).Info("Partitioned world map")

	return figure.Build(partition, viper.GetString("server.title"), figure.ProjectionMercator), nil
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
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

	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	countries, err := catalog.LoadCountryListFile(viper.GetString("dataset.countries"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof("Loaded %d countries", len(countries.ISOCodes()))

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		viper.GetString("drive.name"),
	)

	worldMap, err := loadWorldMap(mongoStore)
	if err != nil {
		log.Panicf("load world map with error: %s", err)
	}

	base, err := trackedFigure(worldMap, mongoStore, countries)
	if err != nil {
		log.Panicf("build world map figure with error: %s", err)
	}

	renderer := figure.NewRenderer(
		base,
		viper.GetInt("figure.cache.size"),
		viper.GetDuration("figure.cache.ttl"),
	)

	hdxClient := hdx.New(viper.GetString("hdx.url"), httpClient)

	var enqueuer background.Enqueuer
	if redisConn := viper.GetString("redis.conn"); redisConn != "" {
		taskServer, err := machinery.NewServer(&machineryconf.Config{
			Broker:        redisConn,
			DefaultQueue:  "foodprice_background",
			ResultBackend: redisConn,
		})
		if err != nil {
			log.Panic(err)
		}
		enqueuer = background.NewTaskEnqueuer(taskServer)
	} else {
		log.WithField("prefix", "init").Warn("No task broker. Ingest datasets inline.")
		ingestor := background.NewIngestor(hdxClient, mongoStore, countries)
		enqueuer = background.NewInlineEnqueuer(ingestor, func(key string) {
			f, err := trackedFigure(worldMap, mongoStore, countries)
			if err != nil {
				log.WithFields(log.Fields{"prefix": "ingest", "key": key, "error": err}).Error("rebuild world map figure")
				return
			}
			renderer.Update(f)
		})
	}

	// Init http server
	server = api.NewServer(
		mongoStore,
		hdxClient,
		countries,
		renderer,
		enqueuer)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
