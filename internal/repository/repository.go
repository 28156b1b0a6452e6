// Package repository implements the persistence pattern shared by every
// entity: soft-active filtering, foreign-key preconditions, partial merges and
// soft deletes, driven by a per-entity Descriptor instead of one hand-written
// class per entity.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rolo3650/sicove-api/internal/apperr"
	"github.com/Rolo3650/sicove-api/internal/store"
)

// Repository mediates all persistence access for one entity kind.
type Repository struct {
	store store.Store
	desc  Descriptor
}

// New builds a repository for the entity the descriptor describes.
func New(s store.Store, desc Descriptor) *Repository {
	return &Repository{store: s, desc: desc}
}

// Descriptor returns the entity descriptor backing this repository.
func (r *Repository) Descriptor() Descriptor {
	return r.desc
}

// activeFilter matches one active document by id.
func activeFilter(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "isActive": true}
}

// List returns every active entity, optionally with related records embedded.
func (r *Repository) List(ctx context.Context, expand bool) ([]bson.M, error) {
	docs, err := r.store.Find(ctx, r.desc.Collection, bson.M{"isActive": true})
	if err != nil {
		return nil, apperr.Internal("Could not list "+r.desc.NamePlural, err)
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, r.present(ctx, doc, expand))
	}
	return out, nil
}

// GetByID returns one active entity. An absent, inactive or malformed id is
// NotFound.
func (r *Repository) GetByID(ctx context.Context, id string, expand bool) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound(r.desc.Name + " not found")
	}

	doc, err := r.store.FindOne(ctx, r.desc.Collection, activeFilter(oid))
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, apperr.NotFound(r.desc.Name + " not found")
	}
	if err != nil {
		return nil, apperr.Internal("Could not read "+r.desc.Name, err)
	}
	return r.present(ctx, doc, expand), nil
}

// Create validates every foreign key in the payload against its parent
// collection, then inserts the document with the lifecycle fields set. Nothing
// is written when a parent check fails.
func (r *Repository) Create(ctx context.Context, payload interface{}) (bson.M, error) {
	doc, err := toDoc(payload)
	if err != nil {
		return nil, apperr.Internal("Could not encode "+r.desc.Name, err)
	}

	if err := r.checkForeignKeys(ctx, doc); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc["isActive"] = true
	doc["createdAt"] = now
	doc["updatedAt"] = now

	id, err := r.store.InsertOne(ctx, r.desc.Collection, doc)
	if err != nil {
		return nil, apperr.Internal("Could not create "+r.desc.Name, err)
	}
	return r.GetByID(ctx, id.Hex(), false)
}

// Update re-validates any foreign keys present in the payload, confirms the
// target is active, then applies a partial merge and refreshes the
// modification timestamp.
func (r *Repository) Update(ctx context.Context, id string, payload interface{}) (bson.M, error) {
	doc, err := toDoc(payload)
	if err != nil {
		return nil, apperr.Internal("Could not encode "+r.desc.Name, err)
	}

	if err := r.checkForeignKeys(ctx, doc); err != nil {
		return nil, err
	}

	oid, err := r.requireActive(ctx, id)
	if err != nil {
		return nil, err
	}

	doc["updatedAt"] = time.Now().UTC()
	if err := r.store.UpdateOne(ctx, r.desc.Collection, bson.M{"_id": oid}, bson.M{"$set": doc}); err != nil {
		return nil, apperr.Internal("Could not update "+r.desc.Name, err)
	}
	return r.GetByID(ctx, id, false)
}

// Delete flips the active flag. The record stays in the store; dependents are
// not touched. Deleting twice fails NotFound on the second call.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := r.requireActive(ctx, id)
	if err != nil {
		return err
	}

	set := bson.M{"isActive": false, "updatedAt": time.Now().UTC()}
	if err := r.store.UpdateOne(ctx, r.desc.Collection, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		return apperr.Internal("Could not delete "+r.desc.Name, err)
	}
	return nil
}

// requireActive confirms the target row exists and is active.
func (r *Repository) requireActive(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound(r.desc.Name + " not found")
	}
	_, err = r.store.FindOne(ctx, r.desc.Collection, activeFilter(oid))
	if errors.Is(err, store.ErrNoDocuments) {
		return primitive.NilObjectID, apperr.NotFound(r.desc.Name + " not found")
	}
	if err != nil {
		return primitive.NilObjectID, apperr.Internal("Could not read "+r.desc.Name, err)
	}
	return oid, nil
}

// checkForeignKeys resolves every foreign key present in the document against
// an active parent, failing fast on the first miss.
func (r *Repository) checkForeignKeys(ctx context.Context, doc bson.M) error {
	for _, fk := range r.desc.ForeignKeys {
		value, ok := doc[fk.Field]
		if !ok || value == nil {
			continue
		}
		id, ok := value.(string)
		if !ok || id == "" {
			continue
		}
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return apperr.NotFound(fk.Message)
		}
		_, err = r.store.FindOne(ctx, fk.Collection, activeFilter(oid))
		if errors.Is(err, store.ErrNoDocuments) {
			return apperr.NotFound(fk.Message)
		}
		if err != nil {
			return apperr.Internal("Could not check "+fk.Field, err)
		}
	}
	return nil
}

// present shapes a stored document for a response: the identifier is exposed
// as a 24-hex "id", hidden fields are stripped, and expansions are resolved.
func (r *Repository) present(ctx context.Context, doc bson.M, expand bool) bson.M {
	out := presentDoc(doc, r.desc.Hidden)
	if expand {
		r.expandInto(ctx, out, r.desc.Expansions)
	}
	return out
}

func presentDoc(doc bson.M, hidden []string) bson.M {
	out := bson.M{}
	for key, value := range doc {
		out[key] = value
	}
	if oid, ok := out["_id"].(primitive.ObjectID); ok {
		out["id"] = oid.Hex()
		delete(out, "_id")
	}
	for _, field := range hidden {
		delete(out, field)
	}
	return out
}

func (r *Repository) expandInto(ctx context.Context, doc bson.M, expansions []Expansion) {
	for _, ex := range expansions {
		if ex.Many {
			ids, ok := doc[ex.Field].(bson.A)
			if !ok {
				continue
			}
			embedded := make([]bson.M, 0, len(ids))
			for _, raw := range ids {
				id, ok := raw.(string)
				if !ok {
					continue
				}
				if child := r.resolve(ctx, ex, id); child != nil {
					embedded = append(embedded, child)
				}
			}
			doc[ex.Key] = embedded
			continue
		}

		id, ok := doc[ex.Field].(string)
		if !ok || id == "" {
			continue
		}
		if child := r.resolve(ctx, ex, id); child != nil {
			doc[ex.Key] = child
		}
	}
}

func (r *Repository) resolve(ctx context.Context, ex Expansion, id string) bson.M {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	doc, err := r.store.FindOne(ctx, ex.Collection, activeFilter(oid))
	if err != nil {
		return nil
	}
	out := presentDoc(doc, ex.Hidden)
	r.expandInto(ctx, out, ex.Nested)
	return out
}

// toDoc converts an input struct to a document through a bson round trip;
// omitempty tags prune unset fields of partial payloads.
func toDoc(payload interface{}) (bson.M, error) {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
