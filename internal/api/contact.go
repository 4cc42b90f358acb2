package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aadhya/eduverse/internal/domain"
	"github.com/aadhya/eduverse/internal/webserver"
)

type contactResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (h *Handler) registerContactRoutes(s *webserver.WebServer) {
	s.ApiPOST("/contact/send", h.sendContact)
}

type formField struct {
	key   string
	label string
	dst   *string
}

func contactFields(form *domain.ContactForm) []formField {
	return []formField{
		{"name", "Name", &form.Name},
		{"email", "Email", &form.Email},
		{"subject", "Subject", &form.Subject},
		{"message", "Message", &form.Message},
	}
}

// bindContactForm decodes the body key by key, so a value of the wrong JSON
// type is reported against its field instead of rejecting the whole body.
func bindContactForm(c echo.Context) (domain.ContactForm, map[string]string, error) {
	var form domain.ContactForm
	var raw map[string]interface{}
	if err := c.Echo().JSONSerializer.Deserialize(c, &raw); err != nil {
		return form, nil, err
	}

	errs := make(map[string]string)
	for _, f := range contactFields(&form) {
		v, ok := raw[f.key]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			errs[f.key] = f.label + " must be a string"
			continue
		}
		*f.dst = s
	}
	return form, errs, nil
}

// sendContact validates the form before handing it to the mailer; an invalid
// form never reaches the transport.
func (h *Handler) sendContact(c echo.Context) error {
	form, errs, err := bindContactForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, contactResponse{
			Success: false,
			Message: "Unable to parse contact form",
			Errors:  map[string]string{"form": "Request body must be a JSON object"},
		})
	}

	if err := c.Validate(&form); err != nil {
		fieldErrs := webserver.FieldErrors(err)
		if fieldErrs == nil {
			return err
		}
		for key, msg := range fieldErrs {
			if _, exists := errs[key]; !exists {
				errs[key] = msg
			}
		}
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, contactResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  errs,
		})
	}

	if err := h.mailer.SendContactEmail(c.Request().Context(), form); err != nil {
		zap.L().Warn("contact form not delivered", zap.String("email", form.Email), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, contactResponse{
			Success: false,
			Message: "Failed to send email: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, contactResponse{
		Success: true,
		Message: "Email sent successfully",
	})
}
