package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/foodprice-api/utils"
)

const (
	defaultDriveName = "geojson"
)

var (
	ErrMapNotFound = fmt.Errorf("map not found")
)

// MapDrive - blob storage of map files
type MapDrive interface {
	ListMaps() ([]string, error)
	GetMap(name string) ([]byte, error)
	PutMap(name string, content io.Reader) error
	CountryMap(isoCode string) ([]byte, error)
}

func (m *mongoDB) bucket() (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(
		m.client.Database(m.database),
		options.GridFSBucket().SetName(m.driveName),
	)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(defaultTimeout)
	if err := b.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	if err := b.SetWriteDeadline(deadline); err != nil {
		return nil, err
	}
	return b, nil
}

// ListMaps returns the names of all the files in the drive
func (m *mongoDB) ListMaps() ([]string, error) {
	b, err := m.bucket()
	if err != nil {
		return nil, err
	}

	cur, err := b.Find(bson.M{}, options.GridFSFind().SetSort(bson.M{"filename": 1}))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"drive":  m.driveName,
			"error":  err,
		}).Error("list maps")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	defer cur.Close(ctx)

	names := make([]string, 0)
	for cur.Next(ctx) {
		var file struct {
			Name string `bson:"filename"`
		}
		if err := cur.Decode(&file); err != nil {
			return nil, err
		}
		names = append(names, file.Name)
	}

	return names, cur.Err()
}

// GetMap returns the content of the latest revision of a file
func (m *mongoDB) GetMap(name string) ([]byte, error) {
	b, err := m.bucket()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := b.DownloadToStreamByName(name, &buf); err != nil {
		if err == gridfs.ErrFileNotFound {
			return nil, ErrMapNotFound
		}
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"name":   name,
			"error":  err,
		}).Error("get map")
		return nil, err
	}

	return buf.Bytes(), nil
}

// PutMap uploads a file. An upload of an existing name adds a new revision.
func (m *mongoDB) PutMap(name string, content io.Reader) error {
	b, err := m.bucket()
	if err != nil {
		return err
	}

	if _, err := b.UploadFromStream(name, content); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"name":   name,
			"error":  err,
		}).Error("put map")
		return err
	}

	return nil
}

// CountryMap returns the first map file whose name carries the ISO code
func (m *mongoDB) CountryMap(isoCode string) ([]byte, error) {
	code := utils.NormalizeISO(isoCode)
	if code == "" {
		return nil, ErrMapNotFound
	}

	names, err := m.ListMaps()
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if strings.Contains(name, code) {
			return m.GetMap(name)
		}
	}

	return nil, ErrMapNotFound
}
