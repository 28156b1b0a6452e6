package model

// Input shapes for the organizational hierarchy: branch → branch section.
// A branch is located either on a street of a colony or along a road; the
// addressType discriminates, and the location fields are individually optional.

type CreateBranch struct {
	Key         string  `json:"key" bson:"key" validate:"required"`
	Name        string  `json:"name" bson:"name" validate:"required"`
	LocationURL *string `json:"locationUrl,omitempty" bson:"locationUrl,omitempty"`
	AddressType string  `json:"addressType" bson:"addressType" validate:"required,oneof=street road"`

	// Street
	Address *string `json:"address,omitempty" bson:"address,omitempty"`
	Number  *string `json:"number,omitempty" bson:"number,omitempty"`

	// Road
	Kilometer   *string `json:"kilometer,omitempty" bson:"kilometer,omitempty"`
	Origin      *string `json:"origin,omitempty" bson:"origin,omitempty"`
	Destination *string `json:"destination,omitempty" bson:"destination,omitempty"`

	RoadID   *string `json:"roadId,omitempty" bson:"roadId,omitempty" validate:"omitempty,objectid"`
	ColonyID *string `json:"colonyId,omitempty" bson:"colonyId,omitempty" validate:"omitempty,objectid"`
	CityID   *string `json:"cityId,omitempty" bson:"cityId,omitempty" validate:"omitempty,objectid"`
}

type UpdateBranch struct {
	Key         *string `json:"key,omitempty" bson:"key,omitempty"`
	Name        *string `json:"name,omitempty" bson:"name,omitempty"`
	LocationURL *string `json:"locationUrl,omitempty" bson:"locationUrl,omitempty"`
	AddressType *string `json:"addressType,omitempty" bson:"addressType,omitempty" validate:"omitempty,oneof=street road"`

	Address *string `json:"address,omitempty" bson:"address,omitempty"`
	Number  *string `json:"number,omitempty" bson:"number,omitempty"`

	Kilometer   *string `json:"kilometer,omitempty" bson:"kilometer,omitempty"`
	Origin      *string `json:"origin,omitempty" bson:"origin,omitempty"`
	Destination *string `json:"destination,omitempty" bson:"destination,omitempty"`

	RoadID   *string `json:"roadId,omitempty" bson:"roadId,omitempty" validate:"omitempty,objectid"`
	ColonyID *string `json:"colonyId,omitempty" bson:"colonyId,omitempty" validate:"omitempty,objectid"`
	CityID   *string `json:"cityId,omitempty" bson:"cityId,omitempty" validate:"omitempty,objectid"`
}

// AssignVehiclesToBranch replaces the whole vehicle set associated to a branch.
type AssignVehiclesToBranch struct {
	VehiclesID []string `json:"vehiclesId" bson:"vehiclesId" validate:"required,dive,objectid"`
}

// CreateBranchSection holds capacity behind a pointer so required checks
// presence and a zero capacity stays a valid value.
type CreateBranchSection struct {
	Name     string `json:"name" bson:"name" validate:"required"`
	Capacity *int   `json:"capacity" bson:"capacity" validate:"required"`
	BranchID string `json:"branchId" bson:"branchId" validate:"required,objectid"`
}

type UpdateBranchSection struct {
	Name     *string `json:"name,omitempty" bson:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty" bson:"capacity,omitempty"`
	BranchID *string `json:"branchId,omitempty" bson:"branchId,omitempty" validate:"omitempty,objectid"`
}
