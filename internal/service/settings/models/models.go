package models

import (
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек салона
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	UserID                  int64 `json:"userId"`
	SlotGranularityMinutes  *int  `json:"slotGranularityMinutes,omitempty"`
	MinBookingNoticeMinutes *int  `json:"minBookingNoticeMinutes,omitempty"`
	AdvanceBookingDays      *int  `json:"advanceBookingDays,omitempty"`
}

// ApplyToSettings применяет обновления к существующим настройкам
// Обновляются только непустые (not nil) поля из request
func (r *UpdateSettingsRequest) ApplyToSettings(settings *domain.ShopSettings) {
	if r.SlotGranularityMinutes != nil {
		settings.SlotGranularityMinutes = *r.SlotGranularityMinutes
	}
	if r.MinBookingNoticeMinutes != nil {
		settings.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
	if r.AdvanceBookingDays != nil {
		settings.AdvanceBookingDays = *r.AdvanceBookingDays
	}
}

// Response модели

// SettingsResponse ответ с настройками салона
type SettingsResponse struct {
	SlotGranularityMinutes  int       `json:"slotGranularityMinutes"`
	MinBookingNoticeMinutes int       `json:"minBookingNoticeMinutes"`
	AdvanceBookingDays      int       `json:"advanceBookingDays"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ShopSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		SlotGranularityMinutes:  s.SlotGranularityMinutes,
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
		AdvanceBookingDays:      s.AdvanceBookingDays,
		UpdatedAt:               s.UpdatedAt,
	}
}
