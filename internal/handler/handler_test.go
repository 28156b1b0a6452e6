package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rolo3650/sicove-api/internal/store"
	"github.com/Rolo3650/sicove-api/pkg/jwtutil"
)

const testSigningKey = "handler-test-secret"

func newTestServer(t *testing.T) (*echo.Echo, *store.Memory, *jwtutil.JWTUtil) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler

	mem := store.NewMemory()
	util := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: testSigningKey})
	Register(e, Dependencies{Store: mem, JWT: util, BcryptCost: 4})
	return e, mem, util
}

type envelope struct {
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Data       map[string]interface{} `json:"data"`
	Error      json.RawMessage        `json:"error"`
}

func doRequest(e *echo.Echo, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func mintToken(t *testing.T, util *jwtutil.JWTUtil) string {
	t.Helper()
	token, err := util.GenerateToken("64f1b2c3d4e5f6a7b8c9d0e1", "tester@example.com", "admin")
	require.NoError(t, err)
	return token
}

func TestCreateAndReadCountry(t *testing.T) {
	e, _, util := newTestServer(t)
	token := mintToken(t, util)

	rec, env := doRequest(e, http.MethodPost, "/api/v1/country", token, `{"country":"Mexico"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Country created", env.Message)
	assert.Equal(t, http.StatusCreated, env.StatusCode)

	created, ok := env.Data["country"].(map[string]interface{})
	require.True(t, ok)
	id, _ := created["id"].(string)
	require.Len(t, id, 24)

	rec, env = doRequest(e, http.MethodGet, "/api/v1/country/byId/"+id, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Country found", env.Message)
	assert.Equal(t, http.StatusOK, env.StatusCode)

	rec, env = doRequest(e, http.MethodGet, "/api/v1/country", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Countries found", env.Message)
	list, ok := env.Data["countries"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestUpdateAndDeleteCountry(t *testing.T) {
	e, mem, util := newTestServer(t)
	token := mintToken(t, util)

	_, env := doRequest(e, http.MethodPost, "/api/v1/country", token, `{"country":"Mexico"}`)
	id := env.Data["country"].(map[string]interface{})["id"].(string)

	rec, env := doRequest(e, http.MethodPut, "/api/v1/country/byId/"+id, token, `{"country":"Canada"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Country updated", env.Message)
	assert.Equal(t, "Canada", env.Data["country"].(map[string]interface{})["country"])

	rec, env = doRequest(e, http.MethodDelete, "/api/v1/country/byId/"+id, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Country deleted", env.Message)
	assert.Empty(t, env.Data)

	// Soft delete keeps the row but hides it from reads.
	assert.Equal(t, 1, mem.Count("countries"))
	rec, env = doRequest(e, http.MethodGet, "/api/v1/country/byId/"+id, token, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Country not found", env.Message)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
}

func TestCreate_ValidationFailure(t *testing.T) {
	e, mem, util := newTestServer(t)
	token := mintToken(t, util)

	rec, env := doRequest(e, http.MethodPost, "/api/v1/state", token, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Schema", env.Message)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		paths = append(paths, f["path"])
	}
	assert.ElementsMatch(t, []string{"state", "countryId"}, paths)
	assert.Equal(t, 0, mem.Count("states"))
}

func TestCreate_UnknownFieldRejected(t *testing.T) {
	e, _, util := newTestServer(t)
	token := mintToken(t, util)

	rec, env := doRequest(e, http.MethodPost, "/api/v1/country", token,
		`{"country":"Mexico","continent":"America"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "Invalid request body")
}

func TestCreate_ZeroNumericValuesAccepted(t *testing.T) {
	e, _, util := newTestServer(t)
	token := mintToken(t, util)

	_, env := doRequest(e, http.MethodPost, "/api/v1/branch", token,
		`{"key":"GDL-01","name":"Guadalajara Centro","addressType":"street"}`)
	branchID := env.Data["branch"].(map[string]interface{})["id"].(string)

	// Zero is a value, not an absence.
	rec, env := doRequest(e, http.MethodPost, "/api/v1/branchSection", token,
		`{"name":"Dock A","capacity":0,"branchId":"`+branchID+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Branch section created", env.Message)
	section := env.Data["branchSection"].(map[string]interface{})
	assert.Equal(t, float64(0), section["capacity"])

	// Leaving the field out is still a violation.
	rec, env = doRequest(e, http.MethodPost, "/api/v1/branchSection", token,
		`{"name":"Dock B","branchId":"`+branchID+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Schema", env.Message)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "capacity", fields[0]["path"])
	assert.Equal(t, "Required", fields[0]["message"])
}

func TestCreate_ForeignKeyMiss(t *testing.T) {
	e, _, util := newTestServer(t)
	token := mintToken(t, util)

	rec, env := doRequest(e, http.MethodPost, "/api/v1/state", token,
		`{"state":"Jalisco","countryId":"64f1b2c3d4e5f6a7b8c9d0e1"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Country not found", env.Message)
}

func TestPathID_MalformedIsValidationFailure(t *testing.T) {
	e, _, util := newTestServer(t)
	token := mintToken(t, util)

	rec, env := doRequest(e, http.MethodGet, "/api/v1/country/byId/nope", token, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Schema", env.Message)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "id", fields[0]["path"])
	assert.Equal(t, "Invalid ObjectId", fields[0]["message"])
}

func TestAuthMatrix(t *testing.T) {
	e, _, util := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		rec, env := doRequest(e, http.MethodGet, "/api/v1/country", "", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Wrong credential", env.Message)
	})

	t.Run("malformed token", func(t *testing.T) {
		rec, env := doRequest(e, http.MethodGet, "/api/v1/country", "only.twoparts", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Wrong credential", env.Message)
	})

	t.Run("wrong signature", func(t *testing.T) {
		other := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "other-secret"})
		token, err := other.GenerateToken("64f1b2c3d4e5f6a7b8c9d0e1", "x@example.com", "admin")
		require.NoError(t, err)
		rec, env := doRequest(e, http.MethodGet, "/api/v1/country", token, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Wrong credential", env.Message)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwtutil.UserClaims{
			UserID: "64f1b2c3d4e5f6a7b8c9d0e1",
			Email:  "x@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		token, err := raw.SignedString([]byte(testSigningKey))
		require.NoError(t, err)

		rec, env := doRequest(e, http.MethodGet, "/api/v1/country", token, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Token expired", env.Message)
	})

	t.Run("valid token", func(t *testing.T) {
		rec, _ := doRequest(e, http.MethodGet, "/api/v1/country", mintToken(t, util), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoginFlow(t *testing.T) {
	e, _, util := newTestServer(t)
	token := mintToken(t, util)

	userBody := `{
		"firstName": "Ana",
		"lastName": "Lopez",
		"email": "ana@example.com",
		"password": "secret-password",
		"phone": 3312345678,
		"birthday": "1995-04-12T00:00:00Z"
	}`
	rec, env := doRequest(e, http.MethodPost, "/api/v1/user", token, userBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User created", env.Message)
	created := env.Data["user"].(map[string]interface{})
	assert.NotContains(t, created, "password")

	// Duplicate email conflicts.
	rec, env = doRequest(e, http.MethodPost, "/api/v1/user", token, userBody)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", env.Message)

	// Login requires no credential.
	rec, env = doRequest(e, http.MethodPost, "/api/v1/user/login", "",
		`{"email":"ana@example.com","password":"secret-password"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User login", env.Message)

	loggedIn := env.Data["user"].(map[string]interface{})
	assert.NotContains(t, loggedIn, "password")
	issued, ok := env.Data["token"].(string)
	require.True(t, ok)

	// The minted token authorizes subsequent requests.
	rec, _ = doRequest(e, http.MethodGet, "/api/v1/user", issued, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong password is unauthorized.
	rec, env = doRequest(e, http.MethodPost, "/api/v1/user/login", "",
		`{"email":"ana@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Wrong password", env.Message)

	// Unknown email reads as absent.
	rec, env = doRequest(e, http.MethodPost, "/api/v1/user/login", "",
		`{"email":"nobody@example.com","password":"nope"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", env.Message)
}

func TestAssignVehiclesRoute(t *testing.T) {
	e, _, util := newTestServer(t)
	token := mintToken(t, util)

	_, env := doRequest(e, http.MethodPost, "/api/v1/branch", token,
		`{"key":"GDL-01","name":"Guadalajara Centro","addressType":"street"}`)
	branchID := env.Data["branch"].(map[string]interface{})["id"].(string)

	vehicleBody := `{
		"color": "red",
		"mileage": 0,
		"engineNumber": "EN-1",
		"chasisNumber": "CH-1",
		"vehicleStatus": "owned",
		"size": 4,
		"registered": false,
		"verificationColor": "green",
		"versionId": "64f1b2c3d4e5f6a7b8c9d0e1"
	}`
	rec, env := doRequest(e, http.MethodPost, "/api/v1/vehicle", token, vehicleBody)
	// The referenced version does not exist.
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Version not found", env.Message)

	_, env = doRequest(e, http.MethodPost, "/api/v1/version", token, `{
		"version": "Advance",
		"vehicleType": "car",
		"fuelType": "gasoline",
		"transmissionType": "manual",
		"engineSize": 1.6,
		"doors": 4,
		"axis": 2,
		"modelId": "64f1b2c3d4e5f6a7b8c9d0e1",
		"year": "2020-01-01T00:00:00Z"
	}`)
	assert.Equal(t, "Model not found", env.Message)

	// Build the chain bottom-up.
	_, env = doRequest(e, http.MethodPost, "/api/v1/brand", token,
		`{"brand":"Nissan","description":"Nissan Mexicana"}`)
	brandID := env.Data["brand"].(map[string]interface{})["id"].(string)
	_, env = doRequest(e, http.MethodPost, "/api/v1/model", token,
		`{"model":"Versa","brandId":"`+brandID+`"}`)
	modelID := env.Data["model"].(map[string]interface{})["id"].(string)
	_, env = doRequest(e, http.MethodPost, "/api/v1/version", token, `{
		"version": "Advance",
		"vehicleType": "car",
		"fuelType": "gasoline",
		"transmissionType": "manual",
		"engineSize": 1.6,
		"doors": 4,
		"axis": 2,
		"modelId": "`+modelID+`",
		"year": "2020-01-01T00:00:00Z"
	}`)
	versionID := env.Data["version"].(map[string]interface{})["id"].(string)

	rec, env = doRequest(e, http.MethodPost, "/api/v1/vehicle", token, `{
		"color": "red",
		"mileage": 0,
		"engineNumber": "EN-1",
		"chasisNumber": "CH-1",
		"vehicleStatus": "owned",
		"size": 4,
		"registered": false,
		"verificationColor": "green",
		"versionId": "`+versionID+`"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	vehicleID := env.Data["vehicle"].(map[string]interface{})["id"].(string)

	rec, env = doRequest(e, http.MethodPut, "/api/v1/branch/assignVehiclesToBranch/"+branchID,
		token, `{"vehiclesId":["`+vehicleID+`"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Branch updated", env.Message)

	// The expanded branch read embeds the vehicle with its version and model.
	rec, env = doRequest(e, http.MethodGet, "/api/v1/branch/byId/"+branchID, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	branch := env.Data["branch"].(map[string]interface{})
	vehicles, ok := branch["vehicles"].([]interface{})
	require.True(t, ok)
	require.Len(t, vehicles, 1)
	vehicle := vehicles[0].(map[string]interface{})
	version := vehicle["version"].(map[string]interface{})
	assert.Equal(t, "Advance", version["version"])
	mdl := version["model"].(map[string]interface{})
	assert.Equal(t, "Versa", mdl["model"])

	// A miss in the id list writes nothing.
	rec, env = doRequest(e, http.MethodPut, "/api/v1/branch/assignVehiclesToBranch/"+branchID,
		token, `{"vehiclesId":["64f1b2c3d4e5f6a7b8c9d0ff"]}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Vehicles not found", env.Message)
}

func TestAssignVehicles_InvalidIDInBody(t *testing.T) {
	e, _, util := newTestServer(t)
	token := mintToken(t, util)

	_, env := doRequest(e, http.MethodPost, "/api/v1/branch", token,
		`{"key":"GDL-01","name":"Guadalajara Centro","addressType":"street"}`)
	branchID := env.Data["branch"].(map[string]interface{})["id"].(string)

	rec, env := doRequest(e, http.MethodPut, "/api/v1/branch/assignVehiclesToBranch/"+branchID,
		token, `{"vehiclesId":["nope"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Schema", env.Message)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "vehiclesId[0]", fields[0]["path"])
}

func TestAPIDocumentRoute(t *testing.T) {
	e, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	paths := doc["paths"].(map[string]interface{})
	assert.Contains(t, paths, "/api/v1/country")
	assert.Contains(t, paths, "/api/v1/country/byId/{id}")
	assert.Contains(t, paths, "/api/v1/user/login")
	assert.Contains(t, paths, "/api/v1/branch/assignVehiclesToBranch/{id}")

	createState := paths["/api/v1/state"].(map[string]interface{})["post"].(map[string]interface{})
	schema := createState["requestBody"].(map[string]interface{})["content"].(map[string]interface{})["application/json"].(map[string]interface{})["schema"].(map[string]interface{})
	required := schema["required"].([]interface{})
	assert.ElementsMatch(t, []interface{}{"state", "countryId"}, required)
}
