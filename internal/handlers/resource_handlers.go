package handlers

import (
	"context"
	"errors"
	"net/http"

	"workshoppro/internal/common"
	"workshoppro/internal/logging"
	"workshoppro/internal/repositories"
	"workshoppro/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Store is the CRUD surface every resource repository exposes.
type Store[T any] interface {
	Create(ctx context.Context, item *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*T, error)
}

// ResourceHandlers serves the five CRUD routes for one resource.
type ResourceHandlers[T any] struct {
	name   string
	store  Store[T]
	setID  func(*T, uuid.UUID)
	logger *logging.Logger
}

// NewResourceHandlers creates handlers for a resource. name is used in error
// messages; setID copies the path id onto the decoded body on update.
func NewResourceHandlers[T any](name string, store Store[T], setID func(*T, uuid.UUID), logger *logging.Logger) *ResourceHandlers[T] {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ResourceHandlers[T]{name: name, store: store, setID: setID, logger: logger}
}

func (h *ResourceHandlers[T]) Register(g *echo.Group, path string) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

func (h *ResourceHandlers[T]) List(c echo.Context) error {
	limit, offset, err := common.Pagination(c)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	items, err := h.store.List(c.Request().Context(), limit, offset)
	if err != nil {
		return respondError(c, h.logger, h.name, err)
	}
	if items == nil {
		items = []*T{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":   items,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *ResourceHandlers[T]) Get(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	item, err := h.store.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, h.name, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ResourceHandlers[T]) Create(c echo.Context) error {
	item := new(T)
	if ok, err := decode(c, item); !ok {
		return err
	}

	if err := h.store.Create(c.Request().Context(), item); err != nil {
		return respondError(c, h.logger, h.name, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ResourceHandlers[T]) Update(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	item := new(T)
	if ok, err := decode(c, item); !ok {
		return err
	}
	h.setID(item, id)

	if err := h.store.Update(c.Request().Context(), item); err != nil {
		return respondError(c, h.logger, h.name, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ResourceHandlers[T]) Delete(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, h.name, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// decode binds and validates the request body. When ok is false the error
// response has already been written and err is what the handler returns.
func decode(c echo.Context, dst any) (ok bool, err error) {
	if err := c.Bind(dst); err != nil {
		return false, common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(dst); err != nil {
		if details, isValidation := common.ValidationDetails(err); isValidation {
			return false, common.SendValidationErrors(c, details)
		}
		return false, common.SendClientError(c, err.Error())
	}
	return true, nil
}

// respondError maps service and repository errors onto the error envelope.
func respondError(c echo.Context, logger *logging.Logger, resource string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return common.SendNotFoundError(c, resource)
	case errors.Is(err, services.ErrInvalidStatus):
		return common.SendValidationError(c, "status", err.Error())
	case errors.Is(err, services.ErrInvalidDate):
		return common.SendValidationError(c, "date", err.Error())
	case errors.Is(err, services.ErrInvalidLogo), errors.Is(err, services.ErrLogoTooLarge):
		return common.SendValidationError(c, "logo", err.Error())
	}
	logger.Error(c.Request().Context(), "handlers", "request failed", err, map[string]any{
		"resource": resource,
		"path":     c.Path(),
	})
	return common.SendServerError(c, "Failed to process "+resource)
}
