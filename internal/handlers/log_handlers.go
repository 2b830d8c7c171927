package handlers

import (
	"fmt"
	"net/http"
	"time"

	"workshoppro/internal/common"
	"workshoppro/internal/logging"

	"github.com/labstack/echo/v4"
)

// LogHandlers exposes the in-memory log buffer.
type LogHandlers struct {
	logger *logging.Logger
}

func NewLogHandlers(logger *logging.Logger) *LogHandlers {
	return &LogHandlers{logger: logger}
}

func (h *LogHandlers) Register(g *echo.Group) {
	g.GET("/logs", h.List)
	g.GET("/logs/export", h.Export)
	g.DELETE("/logs", h.Clear)
}

// List returns buffered entries, oldest first, optionally filtered by level.
func (h *LogHandlers) List(c echo.Context) error {
	level := logging.Level(c.QueryParam("level"))
	switch level {
	case "", logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return common.SendValidationError(c, "level", "must be one of: debug info warn error")
	}
	return c.JSON(http.StatusOK, h.logger.Buffer().Entries(level))
}

func (h *LogHandlers) Export(c echo.Context) error {
	data, err := h.logger.Buffer().Export()
	if err != nil {
		return respondError(c, h.logger, "Logs", err)
	}
	name := fmt.Sprintf("workshop-logs-%s.json", time.Now().Format(time.DateOnly))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

func (h *LogHandlers) Clear(c echo.Context) error {
	h.logger.Buffer().Clear()
	return c.NoContent(http.StatusNoContent)
}
