package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store used by tests. Documents are normalized through
// a bson round trip on insert so reads see the same types a real store would
// return.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: map[string][]bson.M{}}
}

func (m *Memory) InsertOne(_ context.Context, collection string, doc bson.M) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied, err := normalize(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := copied["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		copied["_id"] = id
	}
	m.collections[collection] = append(m.collections[collection], copied)
	return id, nil
}

func (m *Memory) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			return normalize(doc)
		}
	}
	return nil, ErrNoDocuments
}

func (m *Memory) Find(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []bson.M{}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			copied, err := normalize(doc)
			if err != nil {
				return nil, err
			}
			docs = append(docs, copied)
		}
	}
	return docs, nil
}

func (m *Memory) UpdateOne(_ context.Context, collection string, filter bson.M, update bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		set, _ := update["$set"].(bson.M)
		normalized, err := normalize(set)
		if err != nil {
			return err
		}
		for key, value := range normalized {
			doc[key] = value
		}
		return nil
	}
	return nil
}

// Count returns the number of documents in a collection, for test assertions.
func (m *Memory) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok {
			return false
		}
		if !equal(got, want) {
			return false
		}
	}
	return true
}

func equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// normalize deep-copies a document through a bson round trip.
func normalize(doc bson.M) (bson.M, error) {
	if doc == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var copied bson.M
	if err := bson.Unmarshal(raw, &copied); err != nil {
		return nil, err
	}
	return copied, nil
}
