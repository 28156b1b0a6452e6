package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rolo3650/sicove-api/internal/apperr"
	"github.com/Rolo3650/sicove-api/internal/model"
	"github.com/Rolo3650/sicove-api/internal/store"
)

// UserRepository extends the generic pattern with the user-specific rules:
// unique email, bcrypt-hashed credentials, login, and a delete that also
// flips the account status.
type UserRepository struct {
	*Repository
	bcryptCost int
}

// NewUserRepository builds the user repository with the hashing cost factor
// from configuration.
func NewUserRepository(s store.Store, bcryptCost int) *UserRepository {
	return &UserRepository{Repository: New(s, Users), bcryptCost: bcryptCost}
}

// Create rejects an email already held by a non-deleted user, hashes the
// plaintext secret, then delegates to the generic create.
func (r *UserRepository) Create(ctx context.Context, payload interface{}) (bson.M, error) {
	in, ok := payload.(*model.CreateUser)
	if !ok {
		return nil, apperr.Internal("Unexpected user payload", nil)
	}

	_, err := r.store.FindOne(ctx, r.desc.Collection, bson.M{"email": in.Email, "isActive": true})
	if err == nil {
		return nil, apperr.Conflict("Email already registered")
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return nil, apperr.Internal("Could not check email", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), r.bcryptCost)
	if err != nil {
		return nil, apperr.Internal("Can not set user password", err)
	}

	hashed := *in
	hashed.Password = string(hash)
	if hashed.UserStatus == nil {
		status := model.UserStatusActive
		hashed.UserStatus = &status
	}
	return r.Repository.Create(ctx, &hashed)
}

// Login fetches the user by email including the stored hash, compares it with
// the submitted password, and returns the user with the secret excluded.
func (r *UserRepository) Login(ctx context.Context, email, password string) (*model.User, error) {
	doc, err := r.store.FindOne(ctx, r.desc.Collection, bson.M{"email": email, "isActive": true})
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("Could not read User", err)
	}

	var user model.User
	raw, err := bson.Marshal(doc)
	if err == nil {
		err = bson.Unmarshal(raw, &user)
	}
	if err != nil {
		return nil, apperr.Internal("Could not decode User", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Wrong password")
	}

	user.Password = ""
	return &user, nil
}

// Delete soft-deletes the account and marks its status inactive in the same
// write.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := r.requireActive(ctx, id)
	if err != nil {
		return err
	}

	set := bson.M{
		"isActive":   false,
		"userStatus": model.UserStatusInactive,
		"updatedAt":  time.Now().UTC(),
	}
	if err := r.store.UpdateOne(ctx, r.desc.Collection, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		return apperr.Internal("Could not delete User", err)
	}
	return nil
}
