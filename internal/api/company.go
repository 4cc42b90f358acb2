package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/repository"
	"github.com/aadhya/eduverse/internal/webserver"
)

func (h *Handler) registerCompanyRoutes(s *webserver.WebServer) {
	s.ApiGET("/company", h.getCompanyInfo)
	s.ApiPOST("/company", h.saveCompanyInfo)
}

func (h *Handler) getCompanyInfo(c echo.Context) error {
	info, err := h.company.FindCompanyInfo(c.Request().Context())
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Company info not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) saveCompanyInfo(c echo.Context) error {
	var info domain.CompanyInfo
	if err := c.Bind(&info); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse company info")
	}
	saved, err := h.company.SaveCompanyInfo(c.Request().Context(), &info)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, saved)
}
