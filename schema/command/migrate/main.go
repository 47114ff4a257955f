package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/foodprice-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("foodprice")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}
	defer client.Disconnect(ctx)

	fmt.Println("initialize country collection indexes")
	if err := schema.NewMongoDBIndexer(client, viper.GetString("mongo.database")).IndexAll(); err != nil {
		panic(err)
	}
}
