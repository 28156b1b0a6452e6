// Package handler wires the HTTP surface: one generic CRUD handler driven by
// the entity descriptor table, plus the user and branch handlers that carry
// behavior beyond plain CRUD.
package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Rolo3650/sicove-api/internal/middleware"
	"github.com/Rolo3650/sicove-api/internal/repository"
	"github.com/Rolo3650/sicove-api/internal/validate"
	"github.com/Rolo3650/sicove-api/pkg/logger"
	"github.com/Rolo3650/sicove-api/prometheus"
)

// entityRepo is what the CRUD handler needs from a repository. UserRepository
// and BranchRepository satisfy it through embedding.
type entityRepo interface {
	Descriptor() repository.Descriptor
	List(ctx context.Context, expand bool) ([]bson.M, error)
	GetByID(ctx context.Context, id string, expand bool) (bson.M, error)
	Create(ctx context.Context, payload interface{}) (bson.M, error)
	Update(ctx context.Context, id string, payload interface{}) (bson.M, error)
	Delete(ctx context.Context, id string) error
}

// CRUDHandler serves the five standard routes of one entity kind. The input
// factories return fresh create/update structs so binding and validation stay
// entity-specific while the flow stays shared.
type CRUDHandler struct {
	repo      entityRepo
	newCreate func() interface{}
	newUpdate func() interface{}
}

func NewCRUDHandler(repo entityRepo, newCreate, newUpdate func() interface{}) *CRUDHandler {
	return &CRUDHandler{repo: repo, newCreate: newCreate, newUpdate: newUpdate}
}

func (h *CRUDHandler) List(c echo.Context) error {
	desc := h.repo.Descriptor()
	docs, err := h.repo.List(c.Request().Context(), true)
	if err != nil {
		return err
	}
	prometheus.RecordEntityOperation(desc.Key, "list")
	return respond(c, 200, desc.NamePlural+" found", map[string]interface{}{
		desc.KeyPlural: docs,
	})
}

func (h *CRUDHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	desc := h.repo.Descriptor()
	doc, err := h.repo.GetByID(c.Request().Context(), id, true)
	if err != nil {
		return err
	}
	prometheus.RecordEntityOperation(desc.Key, "get")
	return respond(c, 200, desc.Name+" found", map[string]interface{}{
		desc.Key: doc,
	})
}

func (h *CRUDHandler) Create(c echo.Context) error {
	payload := h.newCreate()
	if err := bindBody(c, payload); err != nil {
		return err
	}
	if err := validate.Struct(payload); err != nil {
		return err
	}
	desc := h.repo.Descriptor()
	doc, err := h.repo.Create(c.Request().Context(), payload)
	if err != nil {
		return err
	}
	prometheus.RecordEntityOperation(desc.Key, "create")
	return respond(c, 201, desc.Name+" created", map[string]interface{}{
		desc.Key: doc,
	})
}

func (h *CRUDHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	payload := h.newUpdate()
	if err := bindBody(c, payload); err != nil {
		return err
	}
	if err := validate.Struct(payload); err != nil {
		return err
	}
	desc := h.repo.Descriptor()
	doc, err := h.repo.Update(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}
	prometheus.RecordEntityOperation(desc.Key, "update")
	return respond(c, 200, desc.Name+" updated", map[string]interface{}{
		desc.Key: doc,
	})
}

func (h *CRUDHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	desc := h.repo.Descriptor()
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	if claims, ok := middleware.Principal(c); ok {
		logger.FromEcho(c).Info("entity deleted",
			zap.String("entity", desc.Key),
			zap.String("id", id),
			zap.String("deleted_by", claims.UserID))
	}
	prometheus.RecordEntityOperation(desc.Key, "delete")
	return respond(c, 200, desc.Name+" deleted", map[string]interface{}{})
}
