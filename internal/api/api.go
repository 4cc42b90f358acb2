package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/aadhya/eduverse/internal/catalog"
	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/webserver"
)

// ContactSender delivers contact form submissions.
type ContactSender interface {
	SendContactEmail(ctx context.Context, form domain.ContactForm) error
}

// TableCounter reports row counts per entity table.
type TableCounter interface {
	TableCounts(ctx context.Context) (map[string]int64, error)
}

// Handler serves the /api resources.
type Handler struct {
	company  *catalog.CompanyInfoService
	products *catalog.ProductService
	services *catalog.ServiceCatalog
	mailer   ContactSender
	tables   TableCounter
}

func NewHandler(
	company *catalog.CompanyInfoService,
	products *catalog.ProductService,
	services *catalog.ServiceCatalog,
	mailer ContactSender,
	tables TableCounter,
) *Handler {
	return &Handler{
		company:  company,
		products: products,
		services: services,
		mailer:   mailer,
		tables:   tables,
	}
}

// Register mounts every route on the server's /api group.
func (h *Handler) Register(s *webserver.WebServer) {
	h.registerCompanyRoutes(s)
	h.registerProductRoutes(s)
	h.registerServiceRoutes(s)
	h.registerContactRoutes(s)
	h.registerHomeRoutes(s)
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]interface{}{"message": msg})
}

// parseIDParam returns the positive integer path parameter name
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := cast.ToInt64E(c.Param(name))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be positive")
	}
	return id, nil
}
