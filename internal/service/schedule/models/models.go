package models

import (
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	"github.com/akozyrev/barbershop-booking-service/pkg/types"
)

// Request модели

// WorkingHoursRule одно правило недельного расписания
type WorkingHoursRule struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье, по нумерации time.Weekday
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// UpdateWorkingHoursRequest запрос на полную замену недельного расписания барбера
type UpdateWorkingHoursRequest struct {
	UserID  int64              `json:"userId"`
	StaffID int64              `json:"staffId"`
	Rules   []WorkingHoursRule `json:"rules"`
}

// ToDomainRules конвертирует правила запроса в domain модели
func (r *UpdateWorkingHoursRequest) ToDomainRules() []*domain.WorkingHours {
	rules := make([]*domain.WorkingHours, len(r.Rules))
	for i, rule := range r.Rules {
		rules[i] = &domain.WorkingHours{
			StaffID:   r.StaffID,
			DayOfWeek: rule.DayOfWeek,
			StartTime: types.TimeString(rule.StartTime),
			EndTime:   types.TimeString(rule.EndTime),
		}
	}
	return rules
}

// CreateTimeOffRequest запрос на создание отгула
type CreateTimeOffRequest struct {
	UserID  int64     `json:"userId"`
	StaffID int64     `json:"staffId"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Reason  *string   `json:"reason,omitempty"`
}

// DeleteTimeOffRequest запрос на удаление отгула
type DeleteTimeOffRequest struct {
	UserID    int64 `json:"userId"`
	TimeOffID int64 `json:"timeOffId"`
}

// Response модели

// WorkingHoursResponse ответ с правилом расписания
type WorkingHoursResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WorkingHoursListResponse ответ с недельным расписанием барбера
type WorkingHoursListResponse struct {
	StaffID int64                  `json:"staffId"`
	Rules   []WorkingHoursResponse `json:"rules"`
}

// TimeOffResponse ответ с данными отгула
type TimeOffResponse struct {
	ID      int64     `json:"id"`
	StaffID int64     `json:"staffId"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Reason  *string   `json:"reason,omitempty"`
}

// Методы конвертации

// FromDomainWorkingHoursList конвертирует список domain моделей в DTO
func FromDomainWorkingHoursList(staffID int64, rules []*domain.WorkingHours) *WorkingHoursListResponse {
	resp := &WorkingHoursListResponse{
		StaffID: staffID,
		Rules:   make([]WorkingHoursResponse, 0, len(rules)),
	}

	for _, rule := range rules {
		resp.Rules = append(resp.Rules, WorkingHoursResponse{
			ID:        rule.ID,
			StaffID:   rule.StaffID,
			DayOfWeek: rule.DayOfWeek,
			StartTime: rule.StartTime.String(),
			EndTime:   rule.EndTime.String(),
		})
	}

	return resp
}

// FromDomainTimeOff конвертирует domain модель в DTO
func FromDomainTimeOff(t *domain.TimeOff) *TimeOffResponse {
	if t == nil {
		return nil
	}

	return &TimeOffResponse{
		ID:      t.ID,
		StaffID: t.StaffID,
		StartAt: t.StartAt,
		EndAt:   t.EndAt,
		Reason:  t.Reason,
	}
}
