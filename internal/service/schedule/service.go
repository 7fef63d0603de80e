package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	scheduleRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/schedule"
	staffRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/staff"
	"github.com/akozyrev/barbershop-booking-service/internal/service/schedule/models"
)

// Service сервис для работы с расписанием барберов
type Service struct {
	scheduleRepo ScheduleRepository
	staffRepo    StaffRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		staffRepo:    staffRepo,
		logger:       logger,
	}
}

// GetWorkingHours возвращает недельное расписание барбера
// Публичный метод - расписание нужно клиентам при выборе времени
func (s *Service) GetWorkingHours(ctx context.Context, staffID int64) (*models.WorkingHoursListResponse, error) {
	s.logger.Info("GetWorkingHours: fetching schedule for staff=%d", staffID)

	if _, err := s.getStaff(ctx, staffID); err != nil {
		return nil, err
	}

	rules, err := s.scheduleRepo.GetWorkingHoursByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingHoursList(staffID, rules), nil
}

// UpdateWorkingHours полностью заменяет недельное расписание барбера
// Доступно самому барберу и менеджеру салона
func (s *Service) UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursListResponse, error) {
	s.logger.Info("UpdateWorkingHours: replacing schedule for staff=%d by user=%d, %d rules",
		req.StaffID, req.UserID, len(req.Rules))

	if _, err := s.getStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, req.StaffID, req.UserID); err != nil {
		s.logger.Warn("UpdateWorkingHours: access denied for user=%d to staff=%d", req.UserID, req.StaffID)
		return nil, err
	}

	rules := req.ToDomainRules()

	// Валидация правил: день недели и корректное невырожденное окно
	for _, rule := range rules {
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			s.logger.Warn("UpdateWorkingHours: invalid day of week %d for staff=%d", rule.DayOfWeek, req.StaffID)
			return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
		}
		if !rule.IsValid() {
			s.logger.Warn("UpdateWorkingHours: invalid rule window %s-%s for staff=%d",
				rule.StartTime, rule.EndTime, req.StaffID)
			return nil, fmt.Errorf("%w: rule window must be valid HH:MM with start before end", ErrInvalidInput)
		}
	}

	if err := s.scheduleRepo.ReplaceWorkingHours(ctx, req.StaffID, rules); err != nil {
		s.logger.Error("UpdateWorkingHours: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	stored, err := s.scheduleRepo.GetWorkingHoursByStaff(ctx, req.StaffID)
	if err != nil {
		s.logger.Error("UpdateWorkingHours: failed to re-read schedule for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: successfully replaced schedule for staff=%d", req.StaffID)
	return models.FromDomainWorkingHoursList(req.StaffID, stored), nil
}

// CreateTimeOff создает отгул барбера
// Доступно самому барберу и менеджеру салона
func (s *Service) CreateTimeOff(ctx context.Context, req *models.CreateTimeOffRequest) (*models.TimeOffResponse, error) {
	s.logger.Info("CreateTimeOff: creating time off for staff=%d by user=%d", req.StaffID, req.UserID)

	if _, err := s.getStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, req.StaffID, req.UserID); err != nil {
		s.logger.Warn("CreateTimeOff: access denied for user=%d to staff=%d", req.UserID, req.StaffID)
		return nil, err
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() || !req.EndAt.After(req.StartAt) {
		s.logger.Warn("CreateTimeOff: invalid interval for staff=%d", req.StaffID)
		return nil, fmt.Errorf("%w: time off end must be after start", ErrInvalidInput)
	}

	created, err := s.scheduleRepo.CreateTimeOff(ctx, &domain.TimeOff{
		StaffID: req.StaffID,
		StartAt: req.StartAt.UTC(),
		EndAt:   req.EndAt.UTC(),
		Reason:  req.Reason,
	})
	if err != nil {
		s.logger.Error("CreateTimeOff: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: CreateTimeOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTimeOff: successfully created time off id=%d for staff=%d", created.ID, req.StaffID)
	return models.FromDomainTimeOff(created), nil
}

// DeleteTimeOff удаляет отгул
// Доступно только менеджеру салона
func (s *Service) DeleteTimeOff(ctx context.Context, req *models.DeleteTimeOffRequest) error {
	s.logger.Info("DeleteTimeOff: deleting time off id=%d by user=%d", req.TimeOffID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("DeleteTimeOff: access denied for user=%d", req.UserID)
		return err
	}

	if err := s.scheduleRepo.DeleteTimeOff(ctx, req.TimeOffID); err != nil {
		if errors.Is(err, scheduleRepo.ErrTimeOffNotFound) {
			s.logger.Warn("DeleteTimeOff: time off id=%d not found", req.TimeOffID)
			return ErrTimeOffNotFound
		}
		s.logger.Error("DeleteTimeOff: repository error for time off id=%d: %v", req.TimeOffID, err)
		return fmt.Errorf("%w: DeleteTimeOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTimeOff: successfully deleted time off id=%d", req.TimeOffID)
	return nil
}

// Вспомогательные методы

// getStaff получает барбера, транслируя отсутствие в ErrStaffNotFound
func (s *Service) getStaff(ctx context.Context, staffID int64) (*domain.Staff, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("getStaff: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("getStaff: failed to get staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	return member, nil
}

// checkStaffAccess проверяет, что пользователь - сам барбер или менеджер салона
func (s *Service) checkStaffAccess(ctx context.Context, staffID, userID int64) error {
	if staffID == userID {
		return nil
	}
	return s.checkManagerAccess(ctx, userID)
}

// checkManagerAccess проверяет, что пользователь - активный менеджер салона
func (s *Service) checkManagerAccess(ctx context.Context, userID int64) error {
	member, err := s.staffRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkManagerAccess: failed to get staff id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if !member.IsActive || member.Role != domain.RoleManager {
		return ErrAccessDenied
	}

	return nil
}
