// Package store is the narrow port the repositories use to talk to the
// document store. The production implementation wraps a mongo database; tests
// use the in-memory implementation from memstore.go.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Rolo3650/sicove-api/pkg/logger"
	"github.com/Rolo3650/sicove-api/prometheus"
)

// ErrNoDocuments is returned by FindOne when the filter matches nothing.
var ErrNoDocuments = errors.New("store: no documents in result")

// Store is the document-store surface the repositories depend on.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc bson.M) (primitive.ObjectID, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M) error
}

// Mongo implements Store on a mongo database.
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps a connected mongo database.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// logFailure reports a failed store call on the request-scoped logger.
func logFailure(ctx context.Context, operation, collection string, err error) {
	logger.FromContext(ctx).Error("store operation failed",
		zap.String("operation", operation),
		zap.String("collection", collection),
		zap.Error(err))
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc bson.M) (primitive.ObjectID, error) {
	defer prometheus.TrackStoreOperation("insert")()
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		logFailure(ctx, "insert", collection, err)
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	defer prometheus.TrackStoreOperation("find")()
	var doc bson.M
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocuments
	}
	if err != nil {
		logFailure(ctx, "find", collection, err)
		return nil, err
	}
	return doc, nil
}

func (m *Mongo) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	defer prometheus.TrackStoreOperation("find")()
	cursor, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		logFailure(ctx, "find", collection, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo) UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M) error {
	defer prometheus.TrackStoreOperation("update")()
	_, err := m.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		logFailure(ctx, "update", collection, err)
	}
	return err
}
