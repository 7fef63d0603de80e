package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	settingsRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/settings"
	staffRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/staff"
	"github.com/akozyrev/barbershop-booking-service/internal/service/settings/models"
)

// Service сервис для работы с настройками салона
type Service struct {
	settingsRepo SettingsRepository
	staffRepo    StaffRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		staffRepo:    staffRepo,
		logger:       logger,
	}
}

// Get возвращает настройки салона
// Публичный метод - если настройки не сохранялись, возвращает дефолтные
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching shop settings")

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: no settings stored, returning defaults")
			return models.FromDomainSettings(defaultSettings()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update обновляет настройки салона
// Доступно только менеджерам; поддерживает частичное обновление
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating shop settings by user=%d", req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Update: access denied for user=%d", req.UserID)
		return nil, err
	}

	// 2. Получаем текущие настройки (или дефолты)
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		settings = defaultSettings()
	}

	// 3. Применяем обновления и валидируем результат
	req.ApplyToSettings(settings)

	if err := validateSettings(settings); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	updated, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated shop settings")
	return models.FromDomainSettings(updated), nil
}

// Вспомогательные методы

// checkManagerAccess проверяет, что пользователь является менеджером салона
func (s *Service) checkManagerAccess(ctx context.Context, userID int64) error {
	member, err := s.staffRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkManagerAccess: failed to get staff id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get staff: %v", ErrInternal, err)
	}

	if !member.IsActive || member.Role != domain.RoleManager {
		return ErrAccessDenied
	}

	return nil
}

// validateSettings валидирует параметры настроек
func validateSettings(s *domain.ShopSettings) error {
	if s.SlotGranularityMinutes < domain.MinSlotGranularityMinutes ||
		s.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: slotGranularityMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}

	if s.MinBookingNoticeMinutes < domain.MinNoticeMinutes ||
		s.MinBookingNoticeMinutes > domain.MaxNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinNoticeMinutes, domain.MaxNoticeMinutes)
	}

	if s.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		s.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	return nil
}

// defaultSettings возвращает настройки по умолчанию
func defaultSettings() *domain.ShopSettings {
	return &domain.ShopSettings{
		SlotGranularityMinutes:  domain.DefaultSlotGranularityMinutes,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
		AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
	}
}
