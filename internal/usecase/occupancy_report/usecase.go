package occupancy_report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	staffRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/staff"
)

// UseCase use case отчета по занятости барберов
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	staffRepo       StaffRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	staffRepo StaffRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		staffRepo:       staffRepo,
		logger:          logger,
	}
}

// Execute выполняет use case построения отчета по занятости за период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OccupancyReport: staff=%v, from=%s, to=%s",
		req.StaffID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OccupancyReport: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка прав: барбер видит свой отчет, менеджер - любой
	if err := uc.checkAccess(ctx, req); err != nil {
		return nil, err
	}

	from := dayStartUTC(req.From)
	to := dayStartUTC(req.To)

	// 3. Определяем барберов для отчета
	members, err := uc.resolveStaff(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	// 4. Считаем занятость по каждому барберу независимо
	reports := make([]StaffReport, 0, len(members))

	for _, member := range members {
		report, err := uc.buildStaffReport(ctx, member, from, to)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	uc.logger.Info("OccupancyReport: built report for %d staff members", len(reports))

	return &Response{
		From:  from,
		To:    to,
		Staff: reports,
	}, nil
}

// buildStaffReport строит отчет по одному барберу
func (uc *UseCase) buildStaffReport(ctx context.Context, member *domain.Staff, from, to time.Time) (StaffReport, error) {
	staffID := member.ID

	// Неактивные записи нужны в выборке: done учитывается в занятости,
	// фильтрацию по статусам делает агрегатор
	filter := domain.AppointmentsFilter{
		StaffID:         &staffID,
		RangeFrom:       &from,
		RangeTo:         &to,
		IncludeInactive: true,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("OccupancyReport: failed to get appointments for staff=%d: %v", staffID, err)
		return StaffReport{}, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	rules, err := uc.scheduleRepo.GetWorkingHoursByStaff(ctx, staffID)
	if err != nil {
		uc.logger.Error("OccupancyReport: failed to get working hours for staff=%d: %v", staffID, err)
		return StaffReport{}, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	timeOff, err := uc.scheduleRepo.GetTimeOffByStaffAndRange(ctx, staffID, from, to)
	if err != nil {
		uc.logger.Error("OccupancyReport: failed to get time off for staff=%d: %v", staffID, err)
		return StaffReport{}, fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
	}

	booked := CalculateBookedMinutes(appointments, from, to)
	available := calculateAvailableMinutes(rules, timeOff, from, to)

	rate := 0.0
	if available > 0 {
		rate = float64(booked) / float64(available)
	}

	return StaffReport{
		StaffID:          staffID,
		StaffName:        member.FullName,
		BookedMinutes:    booked,
		AvailableMinutes: available,
		UtilizationRate:  rate,
	}, nil
}

// checkAccess проверяет права на отчет: барбер может запросить только свой,
// сводный отчет и чужие отчеты доступны активному менеджеру
func (uc *UseCase) checkAccess(ctx context.Context, req *Request) error {
	if req.StaffID != nil && *req.StaffID == req.UserID {
		return nil
	}

	member, err := uc.staffRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("OccupancyReport: user=%d is not a staff member", req.UserID)
			return ErrAccessDenied
		}
		uc.logger.Error("OccupancyReport: failed to check access for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: failed to check access: %v", ErrInternal, err)
	}

	if !member.IsActive || member.Role != domain.RoleManager {
		uc.logger.Warn("OccupancyReport: user=%d is not an active manager", req.UserID)
		return ErrAccessDenied
	}

	return nil
}

// resolveStaff возвращает барберов для отчета: одного указанного или всех активных
func (uc *UseCase) resolveStaff(ctx context.Context, staffID *int64) ([]*domain.Staff, error) {
	if staffID != nil {
		member, err := uc.staffRepo.GetByID(ctx, *staffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("OccupancyReport: staff id=%d not found", *staffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("OccupancyReport: failed to get staff id=%d: %v", *staffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		return []*domain.Staff{member}, nil
	}

	members, err := uc.staffRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("OccupancyReport: failed to get active staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get active staff: %v", ErrInternal, err)
	}
	return members, nil
}

// validateRequest проверяет базовую корректность запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staff ID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: period bounds are required", ErrInvalidPeriod)
	}

	if !dayStartUTC(req.To).After(dayStartUTC(req.From)) {
		return fmt.Errorf("%w: period end must be after period start", ErrInvalidPeriod)
	}

	if dayStartUTC(req.To).Sub(dayStartUTC(req.From)) > domain.MaxReportPeriodDays*24*time.Hour {
		return fmt.Errorf("%w: period must not exceed %d days", ErrInvalidPeriod, domain.MaxReportPeriodDays)
	}

	return nil
}
