package model

import "time"

// Input shapes for the append-style registration records attached to vehicles,
// plus the branch registration tying a vehicle check to a section and a user.

type CreateCustomRegistration struct {
	Name      string    `json:"name" bson:"name" validate:"required"`
	Folio     string    `json:"folio" bson:"folio" validate:"required"`
	Date      time.Time `json:"date" bson:"date" validate:"required"`
	VehicleID string    `json:"vehicleId" bson:"vehicleId" validate:"required,objectid"`
}

type UpdateCustomRegistration struct {
	Name      *string    `json:"name,omitempty" bson:"name,omitempty"`
	Folio     *string    `json:"folio,omitempty" bson:"folio,omitempty"`
	Date      *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	VehicleID *string    `json:"vehicleId,omitempty" bson:"vehicleId,omitempty" validate:"omitempty,objectid"`
}

type CreateInsuranceRegistration struct {
	PolicyNumber   string    `json:"policyNumber" bson:"policyNumber" validate:"required"`
	Company        string    `json:"company" bson:"company" validate:"required"`
	StartDate      time.Time `json:"startDate" bson:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" bson:"endDate" validate:"required"`
	PolicyHolder   string    `json:"policyHolder" bson:"policyHolder" validate:"required"`
	PolicyCoverage string    `json:"policyCoverage" bson:"policyCoverage" validate:"required"`
	VehicleID      string    `json:"vehicleId" bson:"vehicleId" validate:"required,objectid"`
}

type UpdateInsuranceRegistration struct {
	PolicyNumber   *string    `json:"policyNumber,omitempty" bson:"policyNumber,omitempty"`
	Company        *string    `json:"company,omitempty" bson:"company,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
	PolicyHolder   *string    `json:"policyHolder,omitempty" bson:"policyHolder,omitempty"`
	PolicyCoverage *string    `json:"policyCoverage,omitempty" bson:"policyCoverage,omitempty"`
	VehicleID      *string    `json:"vehicleId,omitempty" bson:"vehicleId,omitempty" validate:"omitempty,objectid"`
}

type CreateVerification struct {
	VerificationDate time.Time `json:"verificationDate" bson:"verificationDate" validate:"required"`
	VehicleID        string    `json:"vehicleId" bson:"vehicleId" validate:"required,objectid"`
}

type UpdateVerification struct {
	VerificationDate *time.Time `json:"verificationDate,omitempty" bson:"verificationDate,omitempty"`
	VehicleID        *string    `json:"vehicleId,omitempty" bson:"vehicleId,omitempty" validate:"omitempty,objectid"`
}

type CreateBranchRegistration struct {
	CheckType       string `json:"checkType" bson:"checkType" validate:"required,oneof=entry exit"`
	BranchSectionID string `json:"branchSectionId" bson:"branchSectionId" validate:"required,objectid"`
	VehicleID       string `json:"vehicleId" bson:"vehicleId" validate:"required,objectid"`
	UserID          string `json:"userId" bson:"userId" validate:"required,objectid"`
}

type UpdateBranchRegistration struct {
	CheckType       *string `json:"checkType,omitempty" bson:"checkType,omitempty" validate:"omitempty,oneof=entry exit"`
	BranchSectionID *string `json:"branchSectionId,omitempty" bson:"branchSectionId,omitempty" validate:"omitempty,objectid"`
	VehicleID       *string `json:"vehicleId,omitempty" bson:"vehicleId,omitempty" validate:"omitempty,objectid"`
	UserID          *string `json:"userId,omitempty" bson:"userId,omitempty" validate:"omitempty,objectid"`
}
