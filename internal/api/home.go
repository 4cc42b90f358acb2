package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/webserver"
)

type homeResponse struct {
	CompanyInfo        *domain.CompanyInfo         `json:"companyInfo,omitempty"`
	Products           []domain.Product            `json:"products"`
	ServicesByCategory map[string][]domain.Service `json:"servicesByCategory"`
}

func (h *Handler) registerHomeRoutes(s *webserver.WebServer) {
	s.ApiGET("/home", h.getHome)
	s.ApiGET("/health", h.getHealth)
}

// getHome aggregates the landing page: company profile, every product and
// the services of each home category. Empty categories are still present.
func (h *Handler) getHome(c echo.Context) error {
	g, ctx := errgroup.WithContext(c.Request().Context())

	var resp homeResponse
	g.Go(func() error {
		info, err := h.company.GetCompanyInfo(ctx)
		resp.CompanyInfo = info
		return err
	})
	g.Go(func() error {
		rows, err := h.products.ListProducts(ctx)
		resp.Products = rows
		return err
	})

	buckets := make([][]domain.Service, len(domain.HomeCategories))
	for i, category := range domain.HomeCategories {
		i, category := i, category
		g.Go(func() error {
			rows, err := h.services.ListServicesByCategory(ctx, category)
			buckets[i] = rows
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	resp.ServicesByCategory = make(map[string][]domain.Service, len(domain.HomeCategories))
	for i, category := range domain.HomeCategories {
		if buckets[i] == nil {
			buckets[i] = []domain.Service{}
		}
		resp.ServicesByCategory[category] = buckets[i]
	}
	if resp.Products == nil {
		resp.Products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) getHealth(c echo.Context) error {
	counts, err := h.tables.TableCounts(c.Request().Context())
	if err != nil {
		zap.L().Error("health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unavailable",
			"message": "Database unavailable",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"tables": counts,
	})
}
