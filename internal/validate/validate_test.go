package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rolo3650/sicove-api/internal/apperr"
	"github.com/Rolo3650/sicove-api/internal/model"
)

func TestObjectID(t *testing.T) {
	assert.True(t, ObjectID("64f1b2c3d4e5f6a7b8c9d0e1"))
	assert.False(t, ObjectID("not-an-id"))
	assert.False(t, ObjectID(""))
	assert.False(t, ObjectID("64f1b2c3d4e5f6a7b8c9d0e")) // 23 chars
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(&model.CreateState{
		State:     "Jalisco",
		CountryID: "64f1b2c3d4e5f6a7b8c9d0e1",
	})
	assert.NoError(t, err)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(&model.CreateState{})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Equal(t, "Invalid Schema", appErr.Message)

	paths := map[string]string{}
	for _, fe := range appErr.Fields {
		paths[fe.Path] = fe.Message
	}
	assert.Equal(t, "Required", paths["state"])
	assert.Equal(t, "Required", paths["countryId"])
}

func TestStruct_ObjectIDRule(t *testing.T) {
	err := Struct(&model.CreateState{State: "Jalisco", CountryID: "nope"})
	require.Error(t, err)

	appErr, _ := apperr.As(err)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "countryId", appErr.Fields[0].Path)
	assert.Equal(t, "Invalid ObjectId", appErr.Fields[0].Message)
}

func TestStruct_IndexedPathForSliceFields(t *testing.T) {
	err := Struct(&model.AssignVehiclesToBranch{
		VehiclesID: []string{"64f1b2c3d4e5f6a7b8c9d0e1", "bad"},
	})
	require.Error(t, err)

	appErr, _ := apperr.As(err)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "vehiclesId[1]", appErr.Fields[0].Path)
	assert.Equal(t, "Invalid ObjectId", appErr.Fields[0].Message)
}

func TestStruct_OneOfEnum(t *testing.T) {
	role := "superuser"
	err := Struct(&model.UpdateUser{Role: &role})
	require.Error(t, err)

	appErr, _ := apperr.As(err)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "role", appErr.Fields[0].Path)
	assert.Equal(t, "Must be one of: admin, manager, operator", appErr.Fields[0].Message)
}

func TestStruct_ZeroNumericValuesSatisfyRequired(t *testing.T) {
	engineSize := 0.0
	doors := 0
	axis := 2
	err := Struct(&model.CreateVersion{
		Version:          "Base",
		VehicleType:      "car",
		FuelType:         "electric",
		TransmissionType: "automatic",
		EngineSize:       &engineSize,
		Doors:            &doors,
		Axis:             &axis,
		ModelID:          "64f1b2c3d4e5f6a7b8c9d0e1",
		Year:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	capacity := 0
	err = Struct(&model.CreateBranchSection{
		Name:     "Dock A",
		Capacity: &capacity,
		BranchID: "64f1b2c3d4e5f6a7b8c9d0e1",
	})
	assert.NoError(t, err)

	mileage := 0.0
	size := 0
	registered := false
	err = Struct(&model.CreateVehicle{
		Color:             "red",
		Mileage:           &mileage,
		EngineNumber:      "EN-1",
		ChasisNumber:      "CH-1",
		VehicleStatus:     "owned",
		Size:              &size,
		Registered:        &registered,
		VerificationColor: "green",
		VersionID:         "64f1b2c3d4e5f6a7b8c9d0e1",
	})
	assert.NoError(t, err)
}

func TestStruct_AbsentNumericFieldsAreRequired(t *testing.T) {
	err := Struct(&model.CreateVehicle{
		Color:             "red",
		EngineNumber:      "EN-1",
		ChasisNumber:      "CH-1",
		VehicleStatus:     "owned",
		VerificationColor: "green",
		VersionID:         "64f1b2c3d4e5f6a7b8c9d0e1",
	})
	require.Error(t, err)

	appErr, _ := apperr.As(err)
	paths := make([]string, 0, len(appErr.Fields))
	for _, fe := range appErr.Fields {
		paths = append(paths, fe.Path)
	}
	assert.ElementsMatch(t, []string{"mileage", "size", "registered"}, paths)
}

func TestStruct_UpdateSkipsUnsetFields(t *testing.T) {
	assert.NoError(t, Struct(&model.UpdateUser{}))
	assert.NoError(t, Struct(&model.UpdateState{}))
}
