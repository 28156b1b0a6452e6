package model

// Input shapes for the geographic hierarchy:
// country → state → municipality → city / colony → road.
// Update shapes are the create shapes with every field optional; per-field
// constraints are preserved.

type CreateCountry struct {
	Country string `json:"country" bson:"country" validate:"required"`
}

type UpdateCountry struct {
	Country *string `json:"country,omitempty" bson:"country,omitempty"`
}

type CreateState struct {
	State     string `json:"state" bson:"state" validate:"required"`
	CountryID string `json:"countryId" bson:"countryId" validate:"required,objectid"`
}

type UpdateState struct {
	State     *string `json:"state,omitempty" bson:"state,omitempty"`
	CountryID *string `json:"countryId,omitempty" bson:"countryId,omitempty" validate:"omitempty,objectid"`
}

type CreateMunicipality struct {
	Municipality string `json:"municipality" bson:"municipality" validate:"required"`
	StateID      string `json:"stateId" bson:"stateId" validate:"required,objectid"`
}

type UpdateMunicipality struct {
	Municipality *string `json:"municipality,omitempty" bson:"municipality,omitempty"`
	StateID      *string `json:"stateId,omitempty" bson:"stateId,omitempty" validate:"omitempty,objectid"`
}

type CreateCity struct {
	City           string `json:"city" bson:"city" validate:"required"`
	MunicipalityID string `json:"municipalityId" bson:"municipalityId" validate:"required,objectid"`
}

type UpdateCity struct {
	City           *string `json:"city,omitempty" bson:"city,omitempty"`
	MunicipalityID *string `json:"municipalityId,omitempty" bson:"municipalityId,omitempty" validate:"omitempty,objectid"`
}

type CreateColony struct {
	Colony         string `json:"colony" bson:"colony" validate:"required"`
	MunicipalityID string `json:"municipalityId" bson:"municipalityId" validate:"required,objectid"`
}

type UpdateColony struct {
	Colony         *string `json:"colony,omitempty" bson:"colony,omitempty"`
	MunicipalityID *string `json:"municipalityId,omitempty" bson:"municipalityId,omitempty" validate:"omitempty,objectid"`
}

type CreateRoad struct {
	RoadName        string `json:"roadName" bson:"roadName" validate:"required"`
	RoadType        string `json:"roadType" bson:"roadType" validate:"required,oneof=federal state municipal"`
	RoadEntity      string `json:"roadEntity" bson:"roadEntity" validate:"required,oneof=federal state municipal"`
	CirculationType string `json:"circulationType" bson:"circulationType" validate:"required,oneof=oneWay twoWay"`
	ColonyID        string `json:"colonyId" bson:"colonyId" validate:"required,objectid"`
}

type UpdateRoad struct {
	RoadName        *string `json:"roadName,omitempty" bson:"roadName,omitempty"`
	RoadType        *string `json:"roadType,omitempty" bson:"roadType,omitempty" validate:"omitempty,oneof=federal state municipal"`
	RoadEntity      *string `json:"roadEntity,omitempty" bson:"roadEntity,omitempty" validate:"omitempty,oneof=federal state municipal"`
	CirculationType *string `json:"circulationType,omitempty" bson:"circulationType,omitempty" validate:"omitempty,oneof=oneWay twoWay"`
	ColonyID        *string `json:"colonyId,omitempty" bson:"colonyId,omitempty" validate:"omitempty,objectid"`
}
