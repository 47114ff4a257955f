package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      context.Background(),
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func (m *MongoDBIndexer) IndexAll() error {
	return m.IndexCountryCollection()
}

func (m *MongoDBIndexer) IndexCountryCollection() error {
	if err := m.createIndex(CountryCollection, mongo.IndexModel{
		Keys: bson.M{
			"key": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	// one record per dataset id, records without an id are not indexed
	if err := m.createIndex(CountryCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"id": bson.M{"$gt": ""}}),
	}); err != nil {
		return err
	}

	return m.createIndex(CountryCollection, mongo.IndexModel{
		Keys: bson.M{
			"country_id": 1,
		},
	})
}
