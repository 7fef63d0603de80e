package settings

import (
	"context"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
	Upsert(ctx context.Context, settings *domain.ShopSettings) (*domain.ShopSettings, error)
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
