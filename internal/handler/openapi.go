package handler

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Rolo3650/sicove-api/internal/model"
)

// APIDocument serves an OpenAPI 3 description of the entity routes, derived
// from the route table and the input struct tags so the document cannot drift
// from the handlers.
func APIDocument(routes []entityRoute) echo.HandlerFunc {
	doc := buildDocument(routes)
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	}
}

func buildDocument(routes []entityRoute) map[string]interface{} {
	paths := map[string]interface{}{}

	for _, route := range routes {
		tag := route.Desc.Name
		paths[BasePath+route.Prefix] = map[string]interface{}{
			"get": operation(tag, "List "+strings.ToLower(route.Desc.NamePlural), nil, false),
			"post": operation(tag, "Create a "+strings.ToLower(route.Desc.Name),
				route.NewCreate(), false),
		}
		paths[BasePath+route.Prefix+"/byId/{id}"] = map[string]interface{}{
			"get": operation(tag, "Get a "+strings.ToLower(route.Desc.Name)+" by id", nil, true),
			"put": operation(tag, "Update a "+strings.ToLower(route.Desc.Name),
				route.NewUpdate(), true),
			"delete": operation(tag, "Delete a "+strings.ToLower(route.Desc.Name), nil, true),
		}
	}

	paths[BasePath+"/user/login"] = map[string]interface{}{
		"post": operation("User", "Log in with email and password", &model.LoginUser{}, false),
	}
	paths[BasePath+"/branch/assignVehiclesToBranch/{id}"] = map[string]interface{}{
		"put": operation("Branch", "Assign vehicles to a branch",
			&model.AssignVehiclesToBranch{}, true),
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":   "SICOVE API",
			"version": "1.0.0",
		},
		"paths": paths,
		"components": map[string]interface{}{
			"securitySchemes": map[string]interface{}{
				"bearerAuth": map[string]interface{}{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
		},
		"security": []map[string]interface{}{
			{"bearerAuth": []string{}},
		},
	}
}

func operation(tag, summary string, body interface{}, withID bool) map[string]interface{} {
	op := map[string]interface{}{
		"tags":    []string{tag},
		"summary": summary,
		"responses": map[string]interface{}{
			"default": map[string]interface{}{
				"description": "Envelope with message, statusCode and data or error",
			},
		},
	}
	if withID {
		op["parameters"] = []map[string]interface{}{
			{
				"name":     "id",
				"in":       "path",
				"required": true,
				"schema":   map[string]interface{}{"type": "string"},
			},
		}
	}
	if body != nil {
		op["requestBody"] = map[string]interface{}{
			"required": true,
			"content": map[string]interface{}{
				"application/json": map[string]interface{}{
					"schema": schemaFor(reflect.TypeOf(body)),
				},
			},
		}
	}
	return op
}

// schemaFor maps an input struct to a JSON schema: json tags name the
// properties, validate tags mark the required set.
func schemaFor(t reflect.Type) map[string]interface{} {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		if t == reflect.TypeOf(time.Time{}) {
			return map[string]interface{}{"type": "string", "format": "date-time"}
		}
		properties := map[string]interface{}{}
		required := []string{}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				continue
			}
			properties[name] = schemaFor(field.Type)
			if strings.Contains(field.Tag.Get("validate"), "required") {
				required = append(required, name)
			}
		}
		schema := map[string]interface{}{
			"type":       "object",
			"properties": properties,
		}
		if len(required) > 0 {
			schema["required"] = required
		}
		return schema
	case reflect.Slice:
		return map[string]interface{}{
			"type":  "array",
			"items": schemaFor(t.Elem()),
		}
	case reflect.Bool:
		return map[string]interface{}{"type": "boolean"}
	case reflect.Int, reflect.Int32, reflect.Int64:
		return map[string]interface{}{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]interface{}{"type": "number"}
	default:
		return map[string]interface{}{"type": "string"}
	}
}
