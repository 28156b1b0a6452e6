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

// BranchRepository extends the generic pattern with the branch↔vehicle
// relation.
type BranchRepository struct {
	*Repository
}

// NewBranchRepository builds the branch repository.
func NewBranchRepository(s store.Store) *BranchRepository {
	return &BranchRepository{Repository: New(s, Branches)}
}

// AssignVehicles replaces the branch's associated vehicle set with exactly the
// given ids. Every id must resolve to an existing active vehicle; any miss is
// NotFound and nothing is written.
func (r *BranchRepository) AssignVehicles(ctx context.Context, branchID string, vehicleIDs []string) (bson.M, error) {
	for _, id := range vehicleIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperr.NotFound("Vehicles not found")
		}
		_, err = r.store.FindOne(ctx, "vehicles", activeFilter(oid))
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, apperr.NotFound("Vehicles not found")
		}
		if err != nil {
			return nil, apperr.Internal("Could not check vehicles", err)
		}
	}

	oid, err := r.requireActive(ctx, branchID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"vehiclesId": vehicleIDs, "updatedAt": time.Now().UTC()}
	if err := r.store.UpdateOne(ctx, r.desc.Collection, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		return nil, apperr.Internal("Could not update Branch", err)
	}
	return r.GetByID(ctx, branchID, false)
}
