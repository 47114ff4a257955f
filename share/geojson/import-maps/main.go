package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/foodprice-api/share/geojson"
	"github.com/bitmark-inc/foodprice-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("foodprice")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var dir string
	flag.StringVar(&dir, "d", "./maps", "directory of the GeoJSON map files")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}
	defer client.Disconnect(ctx)

	drive := store.NewMongoStore(client, viper.GetString("mongo.database"), viper.GetString("drive.name"))

	imported, err := geojson.ImportMaps(drive, dir)
	for _, name := range imported {
		fmt.Println("imported", name)
	}
	if err != nil {
		panic(err)
	}
}
