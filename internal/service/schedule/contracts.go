package schedule

import (
	"context"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ReplaceWorkingHours(ctx context.Context, staffID int64, rules []*domain.WorkingHours) error
	GetWorkingHoursByStaff(ctx context.Context, staffID int64) ([]*domain.WorkingHours, error)
	CreateTimeOff(ctx context.Context, timeOff *domain.TimeOff) (*domain.TimeOff, error)
	GetTimeOffByStaffAndRange(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.TimeOff, error)
	DeleteTimeOff(ctx context.Context, id int64) error
}

// StaffRepository интерфейс репозитория барберов
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
