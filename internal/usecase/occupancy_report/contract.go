package occupancy_report

import (
	"context"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWorkingHoursByStaff(ctx context.Context, staffID int64) ([]*domain.WorkingHours, error)
	GetTimeOffByStaffAndRange(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.TimeOff, error)
}

// StaffRepository интерфейс репозитория барберов
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	GetActive(ctx context.Context) ([]*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
