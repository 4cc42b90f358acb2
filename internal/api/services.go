package api

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/repository"
	"github.com/aadhya/eduverse/internal/webserver"
)

// registerServiceRoutes registers service catalogue endpoints
func (h *Handler) registerServiceRoutes(s *webserver.WebServer) {
	s.ApiGET("/services", h.listServices)
	s.ApiGET("/services/category/:category", h.listServicesByCategory)
	s.ApiGET("/services/:id", h.getService)
	s.ApiPOST("/services", h.createService)
	s.ApiPUT("/services/:id", h.updateService)
	s.ApiDELETE("/services/:id", h.deleteService)
}

func (h *Handler) listServices(c echo.Context) error {
	rows, err := h.services.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) listServicesByCategory(c echo.Context) error {
	// echo matches on RawPath when it is set, so the param is still escaped
	category := c.Param("category")
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(category); err == nil {
			category = unescaped
		}
	}
	rows, err := h.services.ListServicesByCategory(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) getService(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid service ID")
	}
	svc, err := h.services.GetService(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Service not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *Handler) createService(c echo.Context) error {
	var svc domain.Service
	if err := c.Bind(&svc); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse service")
	}
	saved, err := h.services.SaveService(c.Request().Context(), &svc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, saved)
}

// updateService overwrites every field of an existing service; the id comes
// from the path, not the body.
func (h *Handler) updateService(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid service ID")
	}
	var svc domain.Service
	if err := c.Bind(&svc); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse service")
	}

	ctx := c.Request().Context()
	exists, err := h.services.ServiceExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fail(c, http.StatusNotFound, "Service not found")
	}

	svc.ID = id
	saved, err := h.services.SaveService(ctx, &svc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteService(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid service ID")
	}
	ctx := c.Request().Context()
	exists, err := h.services.ServiceExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fail(c, http.StatusNotFound, "Service not found")
	}
	if err := h.services.DeleteService(ctx, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
