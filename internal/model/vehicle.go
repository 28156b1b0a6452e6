package model

import "time"

// Input shapes for the vehicle taxonomy:
// brand → sub-brand; brand → model → version → vehicle.

type CreateBrand struct {
	Brand       string `json:"brand" bson:"brand" validate:"required"`
	Description string `json:"description" bson:"description" validate:"required"`
}

type UpdateBrand struct {
	Brand       *string `json:"brand,omitempty" bson:"brand,omitempty"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
}

type CreateSubBrand struct {
	SubBrand    string  `json:"subBrand" bson:"subBrand" validate:"required"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	BrandID     string  `json:"brandId" bson:"brandId" validate:"required,objectid"`
}

type UpdateSubBrand struct {
	SubBrand    *string `json:"subBrand,omitempty" bson:"subBrand,omitempty"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	BrandID     *string `json:"brandId,omitempty" bson:"brandId,omitempty" validate:"omitempty,objectid"`
}

type CreateModel struct {
	Model       string  `json:"model" bson:"model" validate:"required"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	BrandID     string  `json:"brandId" bson:"brandId" validate:"required,objectid"`
}

type UpdateModel struct {
	Model       *string `json:"model,omitempty" bson:"model,omitempty"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	BrandID     *string `json:"brandId,omitempty" bson:"brandId,omitempty" validate:"omitempty,objectid"`
}

type CreateVersion struct {
	Version          string    `json:"version" bson:"version" validate:"required"`
	VehicleType      string    `json:"vehicleType" bson:"vehicleType" validate:"required,oneof=car van pickup truck bus motorcycle"`
	FuelType         string    `json:"fuelType" bson:"fuelType" validate:"required,oneof=gasoline diesel hybrid electric gas"`
	TransmissionType string    `json:"transmissionType" bson:"transmissionType" validate:"required,oneof=manual automatic"`
	EngineSize       *float64  `json:"engineSize" bson:"engineSize" validate:"required"`
	Doors            *int      `json:"doors" bson:"doors" validate:"required"`
	Axis             *int      `json:"axis" bson:"axis" validate:"required"`
	Description      *string   `json:"description,omitempty" bson:"description,omitempty"`
	ModelID          string    `json:"modelId" bson:"modelId" validate:"required,objectid"`
	Year             time.Time `json:"year" bson:"year" validate:"required"`
}

type UpdateVersion struct {
	Version          *string    `json:"version,omitempty" bson:"version,omitempty"`
	VehicleType      *string    `json:"vehicleType,omitempty" bson:"vehicleType,omitempty" validate:"omitempty,oneof=car van pickup truck bus motorcycle"`
	FuelType         *string    `json:"fuelType,omitempty" bson:"fuelType,omitempty" validate:"omitempty,oneof=gasoline diesel hybrid electric gas"`
	TransmissionType *string    `json:"transmissionType,omitempty" bson:"transmissionType,omitempty" validate:"omitempty,oneof=manual automatic"`
	EngineSize       *float64   `json:"engineSize,omitempty" bson:"engineSize,omitempty"`
	Doors            *int       `json:"doors,omitempty" bson:"doors,omitempty"`
	Axis             *int       `json:"axis,omitempty" bson:"axis,omitempty"`
	Description      *string    `json:"description,omitempty" bson:"description,omitempty"`
	ModelID          *string    `json:"modelId,omitempty" bson:"modelId,omitempty" validate:"omitempty,objectid"`
	Year             *time.Time `json:"year,omitempty" bson:"year,omitempty"`
}

// CreateVehicle keeps its numeric and boolean fields as pointers: required
// checks presence, so legitimate zero values (mileage 0, size 0) pass.
type CreateVehicle struct {
	VIN           *string  `json:"VIN,omitempty" bson:"VIN,omitempty"`
	Color         string   `json:"color" bson:"color" validate:"required"`
	Mileage       *float64 `json:"mileage" bson:"mileage" validate:"required"`
	EngineNumber  string   `json:"engineNumber" bson:"engineNumber" validate:"required"`
	ChasisNumber  string   `json:"chasisNumber" bson:"chasisNumber" validate:"required"`
	VehicleStatus string   `json:"vehicleStatus" bson:"vehicleStatus" validate:"required,oneof=owned leased rented"`
	Size          *int     `json:"size" bson:"size" validate:"required"`

	// Verification information
	Registered         *bool      `json:"registered" bson:"registered" validate:"required"`
	CirculationCard    *string    `json:"circulationCard,omitempty" bson:"circulationCard,omitempty"`
	CirculationEndDate *time.Time `json:"circulationEndDate,omitempty" bson:"circulationEndDate,omitempty"`
	LicencePlate       *string    `json:"licencePlate,omitempty" bson:"licencePlate,omitempty"`
	VerificationNumber *int       `json:"verificationNumber,omitempty" bson:"verificationNumber,omitempty"`
	VerificationColor  string     `json:"verificationColor" bson:"verificationColor" validate:"required,oneof=green yellow red"`

	// Owner information
	OwnerName   *string `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	OwnerType   *string `json:"ownerType,omitempty" bson:"ownerType,omitempty" validate:"omitempty,oneof=person company"`
	OwnerPhone  *string `json:"ownerPhone,omitempty" bson:"ownerPhone,omitempty"`
	Observation *string `json:"observation,omitempty" bson:"observation,omitempty"`

	VersionID string `json:"versionId" bson:"versionId" validate:"required,objectid"`
}

type UpdateVehicle struct {
	VIN           *string  `json:"VIN,omitempty" bson:"VIN,omitempty"`
	Color         *string  `json:"color,omitempty" bson:"color,omitempty"`
	Mileage       *float64 `json:"mileage,omitempty" bson:"mileage,omitempty"`
	EngineNumber  *string  `json:"engineNumber,omitempty" bson:"engineNumber,omitempty"`
	ChasisNumber  *string  `json:"chasisNumber,omitempty" bson:"chasisNumber,omitempty"`
	VehicleStatus *string  `json:"vehicleStatus,omitempty" bson:"vehicleStatus,omitempty" validate:"omitempty,oneof=owned leased rented"`
	Size          *int     `json:"size,omitempty" bson:"size,omitempty"`

	Registered         *bool      `json:"registered,omitempty" bson:"registered,omitempty"`
	CirculationCard    *string    `json:"circulationCard,omitempty" bson:"circulationCard,omitempty"`
	CirculationEndDate *time.Time `json:"circulationEndDate,omitempty" bson:"circulationEndDate,omitempty"`
	LicencePlate       *string    `json:"licencePlate,omitempty" bson:"licencePlate,omitempty"`
	VerificationNumber *int       `json:"verificationNumber,omitempty" bson:"verificationNumber,omitempty"`
	VerificationColor  *string    `json:"verificationColor,omitempty" bson:"verificationColor,omitempty" validate:"omitempty,oneof=green yellow red"`

	OwnerName   *string `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	OwnerType   *string `json:"ownerType,omitempty" bson:"ownerType,omitempty" validate:"omitempty,oneof=person company"`
	OwnerPhone  *string `json:"ownerPhone,omitempty" bson:"ownerPhone,omitempty"`
	Observation *string `json:"observation,omitempty" bson:"observation,omitempty"`

	VersionID *string `json:"versionId,omitempty" bson:"versionId,omitempty" validate:"omitempty,objectid"`
}
