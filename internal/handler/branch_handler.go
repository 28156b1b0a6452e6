package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Rolo3650/sicove-api/internal/model"
	"github.com/Rolo3650/sicove-api/internal/repository"
	"github.com/Rolo3650/sicove-api/internal/validate"
	"github.com/Rolo3650/sicove-api/prometheus"
)

// BranchHandler serves vehicle assignment on top of the standard branch CRUD
// routes.
type BranchHandler struct {
	repo *repository.BranchRepository
}

func NewBranchHandler(repo *repository.BranchRepository) *BranchHandler {
	return &BranchHandler{repo: repo}
}

// AssignVehicles replaces the branch's vehicle set with the ids in the body.
func (h *BranchHandler) AssignVehicles(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload model.AssignVehiclesToBranch
	if err := bindBody(c, &payload); err != nil {
		return err
	}
	if err := validate.Struct(payload); err != nil {
		return err
	}

	doc, err := h.repo.AssignVehicles(c.Request().Context(), id, payload.VehiclesID)
	if err != nil {
		return err
	}
	prometheus.RecordEntityOperation("branch", "assignVehicles")
	return respond(c, 200, "Branch updated", map[string]interface{}{
		"branch": doc,
	})
}
