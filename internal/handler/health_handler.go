package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Rolo3650/sicove-api/pkg/logger"
	"github.com/Rolo3650/sicove-api/pkg/mongodb"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	log := logger.FromEcho(c)

	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}

	// Check database connection if requested
	if c.QueryParam("check") == "db" {
		db := mongodb.GetDB()
		if db == nil {
			response["status"] = "error"
			response["db_status"] = "error"
			response["db_error"] = "Database not initialized"
			return c.JSON(http.StatusInternalServerError, response)
		}

		if err := db.Client().Ping(c.Request().Context(), nil); err != nil {
			log.Error("Database ping error", zap.Error(err))
			response["status"] = "error"
			response["db_status"] = "error"
			response["db_error"] = "Failed to ping database"
			return c.JSON(http.StatusInternalServerError, response)
		}

		response["db_status"] = "ok"
	}

	return c.JSON(http.StatusOK, response)
}
