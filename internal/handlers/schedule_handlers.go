package handlers

import (
	"net/http"
	"time"

	"workshoppro/internal/common"
	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/repositories"

	"github.com/labstack/echo/v4"
)

// ScheduleHandlers serves the lookups the client and agenda screens use.
type ScheduleHandlers struct {
	vehicles     repositories.VehicleRepository
	appointments repositories.AppointmentRepository
	logger       *logging.Logger
}

func NewScheduleHandlers(vehicles repositories.VehicleRepository, appointments repositories.AppointmentRepository, logger *logging.Logger) *ScheduleHandlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ScheduleHandlers{vehicles: vehicles, appointments: appointments, logger: logger}
}

// ClientVehicles lists the vehicles of one client.
func (h *ScheduleHandlers) ClientVehicles(c echo.Context) error {
	clientID, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	vehicles, err := h.vehicles.ListByClient(c.Request().Context(), clientID)
	if err != nil {
		return respondError(c, h.logger, "Vehicles", err)
	}
	if vehicles == nil {
		vehicles = []*models.Vehicle{}
	}
	return c.JSON(http.StatusOK, vehicles)
}

// AppointmentsByDay lists the appointments of a YYYY-MM-DD date.
func (h *ScheduleHandlers) AppointmentsByDay(c echo.Context) error {
	date := c.Param("date")
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return common.SendValidationError(c, "date", "must match the format 2006-01-02")
	}

	appointments, err := h.appointments.ListByDate(c.Request().Context(), date)
	if err != nil {
		return respondError(c, h.logger, "Appointments", err)
	}
	if appointments == nil {
		appointments = []*models.Appointment{}
	}
	return c.JSON(http.StatusOK, appointments)
}
