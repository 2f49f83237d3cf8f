package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/visionx-optics/visionx-server/internal/logging"
	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
	"github.com/visionx-optics/visionx-server/internal/service"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type InventoryHTTP struct {
	Svc      *service.InventoryService
	Activity *service.ActivityService
}

func (h *InventoryHTTP) ListItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.list")

	items, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_inventory_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list inventory")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *InventoryHTTP) GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get item")
	}
	return c.JSON(http.StatusOK, item)
}

func (h *InventoryHTTP) SearchItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query")
	}

	items, err := h.Svc.SearchItems(ctx, q)
	if err != nil {
		l.Error("search_inventory_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *InventoryHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.create")

	var req transport.CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("create_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create item")
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "inventory_created", fmt.Sprintf("item %d (%s %s)", item.ID, item.Brand, item.Model))
	return c.JSON(http.StatusCreated, item)
}

func (h *InventoryHTTP) PatchItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.patch")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.PatchInventoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.Patch(ctx, req, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("patch_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update item")
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "inventory_updated", fmt.Sprintf("item %d", id))
	return c.JSON(http.StatusOK, item)
}

func (h *InventoryHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		l.Error("delete_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete item")
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "inventory_deleted", fmt.Sprintf("item %d", id))
	return c.NoContent(http.StatusNoContent)
}
