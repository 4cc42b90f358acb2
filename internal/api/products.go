package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/repository"
	"github.com/aadhya/eduverse/internal/webserver"
)

// registerProductRoutes registers product CRUD endpoints
func (h *Handler) registerProductRoutes(s *webserver.WebServer) {
	s.ApiGET("/products", h.listProducts)
	s.ApiGET("/products/:id", h.getProduct)
	s.ApiPOST("/products", h.createProduct)
	s.ApiPUT("/products/:id", h.updateProduct)
	s.ApiDELETE("/products/:id", h.deleteProduct)
}

func (h *Handler) listProducts(c echo.Context) error {
	rows, err := h.products.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}
	p, err := h.products.GetProduct(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) createProduct(c echo.Context) error {
	var p domain.Product
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product")
	}
	saved, err := h.products.SaveProduct(c.Request().Context(), &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, saved)
}

func (h *Handler) updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}
	var p domain.Product
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product")
	}

	ctx := c.Request().Context()
	exists, err := h.products.ProductExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fail(c, http.StatusNotFound, "Product not found")
	}

	p.ID = id
	saved, err := h.products.SaveProduct(ctx, &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}
	ctx := c.Request().Context()
	exists, err := h.products.ProductExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err := h.products.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
