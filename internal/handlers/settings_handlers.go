package handlers

import (
	"net/http"

	"workshoppro/internal/common"
	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/services"

	"github.com/labstack/echo/v4"
)

type SettingsHandlers struct {
	svc    services.SettingsService
	logger *logging.Logger
}

func NewSettingsHandlers(svc services.SettingsService, logger *logging.Logger) *SettingsHandlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SettingsHandlers{svc: svc, logger: logger}
}

func (h *SettingsHandlers) Register(g *echo.Group) {
	g.GET("/settings", h.Get)
	g.PUT("/settings", h.Save)
	g.POST("/settings/logo", h.UploadLogo)
	g.GET("/settings/logo", h.Logo)
}

func (h *SettingsHandlers) Get(c echo.Context) error {
	settings, err := h.svc.Get(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "Settings", err)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandlers) Save(c echo.Context) error {
	var req models.WorkshopSettings
	if ok, err := decode(c, &req); !ok {
		return err
	}
	saved, err := h.svc.Save(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, h.logger, "Settings", err)
	}
	return c.JSON(http.StatusOK, saved)
}

// UploadLogo accepts a multipart form with the image in the "logo" field.
func (h *SettingsHandlers) UploadLogo(c echo.Context) error {
	file, err := c.FormFile("logo")
	if err != nil {
		return common.SendValidationError(c, "logo", "is required")
	}
	src, err := file.Open()
	if err != nil {
		return common.SendClientError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	saved, err := h.svc.UploadLogo(c.Request().Context(), file.Filename, file.Header.Get(echo.HeaderContentType), src, file.Size)
	if err != nil {
		return respondError(c, h.logger, "Logo", err)
	}
	return c.JSON(http.StatusOK, saved)
}

// Logo redirects to a short-lived download URL for the current logo.
func (h *SettingsHandlers) Logo(c echo.Context) error {
	url, err := h.svc.LogoURL(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "Logo", err)
	}
	return c.Redirect(http.StatusTemporaryRedirect, url)
}
