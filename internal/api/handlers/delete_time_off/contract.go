package delete_time_off

import (
	"context"

	"github.com/akozyrev/barbershop-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	DeleteTimeOff(ctx context.Context, req *models.DeleteTimeOffRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
