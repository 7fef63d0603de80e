package get_working_hours

import (
	"context"

	"github.com/akozyrev/barbershop-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWorkingHours(ctx context.Context, staffID int64) (*models.WorkingHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
