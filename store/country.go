package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/foodprice-api/schema"
	"github.com/bitmark-inc/foodprice-api/utils"
)

const duplicateKeyCode = 11000

var (
	ErrCountryNotFound = fmt.Errorf("country not found")
)

// CountryStore - lookups over the per-country dataset records
type CountryStore interface {
	GetCountry(key string) (*schema.Country, error)
	GetCountries(isoCodes []string) (map[string]schema.Country, error)
	ListCountryKeys() ([]string, error)
	PutCountry(country schema.Country) (string, error)
}

// GetCountry returns the record stored under the key
func (m *mongoDB) GetCountry(key string) (*schema.Country, error) {
	c := m.client.Database(m.database).Collection(schema.CountryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var country schema.Country
	if err := c.FindOne(ctx, bson.M{"key": key}).Decode(&country); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCountryNotFound
		}
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"key":    key,
			"error":  err,
		}).Error("get country")
		return nil, err
	}

	return &country, nil
}

// GetCountries returns the records of the requested ISO codes keyed by
// ISO code. Codes without a record are left out of the result.
func (m *mongoDB) GetCountries(isoCodes []string) (map[string]schema.Country, error) {
	result := make(map[string]schema.Country)

	set := utils.ISOSet(isoCodes)
	if len(set) == 0 {
		return result, nil
	}

	codes := make([]string, 0, len(set))
	for c := range set {
		codes = append(codes, c)
	}

	c := m.client.Database(m.database).Collection(schema.CountryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"country_id": bson.M{
			"$in": codes,
		},
	}
	cur, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"key": 1}))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"codes":  codes,
			"error":  err,
		}).Error("find countries")
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var country schema.Country
		if err := cur.Decode(&country); err != nil {
			return nil, err
		}

		// the first record wins when a country has been ingested twice
		if _, ok := result[country.CountryID]; !ok {
			result[country.CountryID] = country
		}
	}

	return result, cur.Err()
}

// ListCountryKeys returns every record key in the collection
func (m *mongoDB) ListCountryKeys() ([]string, error) {
	c := m.client.Database(m.database).Collection(schema.CountryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"key": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	keys := make([]string, 0)
	for cur.Next(ctx) {
		var item struct {
			Key string `bson:"key"`
		}
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		keys = append(keys, item.Key)
	}

	return keys, cur.Err()
}

// PutCountry inserts or replaces a record by its key. A record without a
// key is upserted by its dataset id in one step, taking the key of the
// stored record or a new one.
func (m *mongoDB) PutCountry(country schema.Country) (string, error) {
	c := m.client.Database(m.database).Collection(schema.CountryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	country.CountryID = utils.NormalizeISO(country.CountryID)

	var err error
	switch {
	case country.Key != "":
		_, err = c.ReplaceOne(ctx, bson.M{"key": country.Key}, country,
			options.Replace().SetUpsert(true))
	case country.ID == "":
		country.Key = uuid.New().String()
		_, err = c.InsertOne(ctx, country)
	default:
		country.Key, err = upsertByDatasetID(ctx, c, country)
		if isDuplicateKey(err) {
			// a concurrent put inserted the dataset first
			country.Key, err = upsertByDatasetID(ctx, c, country)
		}
	}

	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"key":     country.Key,
			"id":      country.ID,
			"country": country.CountryID,
			"error":   err,
		}).Error("put country")
		return "", err
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"key":     country.Key,
		"country": country.CountryID,
	}).Debug("put country")

	return country.Key, nil
}

func upsertByDatasetID(ctx context.Context, c *mongo.Collection, country schema.Country) (string, error) {
	raw, err := bson.Marshal(country)
	if err != nil {
		return "", err
	}

	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	delete(fields, "key")

	var stored schema.Country
	err = c.FindOneAndUpdate(ctx,
		bson.M{"id": country.ID},
		bson.M{
			"$set":         fields,
			"$setOnInsert": bson.M{"key": uuid.New().String()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return "", err
	}

	return stored.Key, nil
}

func isDuplicateKey(err error) bool {
	switch e := err.(type) {
	case mongo.CommandError:
		return e.Code == duplicateKeyCode
	case mongo.WriteException:
		for _, we := range e.WriteErrors {
			if we.Code == duplicateKeyCode {
				return true
			}
		}
	}
	return false
}
