package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const (
	EnvPrefix = "foodprice"
)

// Load reads the YAML configuration file and lets the environment override
// it. Variables in a `.env` file are exported before that.
func Load(file string) {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	SetDefaults()

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// SetDefaults sets the values used when neither the file nor the
// environment has one
func SetDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.title", "Global Food Price Tracker and Explorer")
	viper.SetDefault("mongo.database", "foodprice")
	viper.SetDefault("mongo.pool", 10)
	viper.SetDefault("dataset.countries", "assets/wfp_countries_global.csv")
	viper.SetDefault("worldmap.file", "assets/worldmap.json")
	viper.SetDefault("worldmap.drive_name", "worldmap.json")
	viper.SetDefault("drive.name", "geojson")
	viper.SetDefault("figure.cache.size", 200)
	viper.SetDefault("figure.cache.ttl", "100s")
	viper.SetDefault("worker.concurrency", 5)
}

// InitLog sets up the global logger
func InitLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}
