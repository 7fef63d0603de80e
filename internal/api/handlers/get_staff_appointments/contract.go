package get_staff_appointments

import (
	"context"

	"github.com/akozyrev/barbershop-booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetStaffAppointments(ctx context.Context, req *models.GetStaffAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
