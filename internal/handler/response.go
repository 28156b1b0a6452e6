package handler

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/Rolo3650/sicove-api/internal/apperr"
	"github.com/Rolo3650/sicove-api/internal/validate"
)

// SuccessResponse is the uniform envelope of every successful route. Data maps
// the entity noun to the entity or entity list; delete operations carry an
// empty object.
type SuccessResponse struct {
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Data       map[string]interface{} `json:"data"`
}

// ErrorResponse mirrors SuccessResponse with an error detail instead of data.
type ErrorResponse struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Error      interface{} `json:"error"`
}

// respond writes the success envelope; the body statusCode always equals the
// transport status.
func respond(c echo.Context, status int, message string, data map[string]interface{}) error {
	return c.JSON(status, SuccessResponse{
		Message:    message,
		StatusCode: status,
		Data:       data,
	})
}

// bindBody decodes a JSON request body into the input struct, rejecting
// unknown fields.
func bindBody(c echo.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.BadRequest("Request body is required")
		}
		return apperr.BadRequest("Invalid request body: " + err.Error())
	}
	return nil
}

// pathID validates the :id route parameter against the object-id format.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if !validate.ObjectID(id) {
		return "", apperr.ValidationFailed([]apperr.FieldError{
			{Path: "id", Message: "Invalid ObjectId"},
		})
	}
	return id, nil
}
