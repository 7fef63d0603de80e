package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	catalogRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/catalog"
	settingsRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/settings"
	staffRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/staff"
)

// UseCase use case получения доступных слотов для бронирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	settingsRepo    SettingsRepository
	catalogRepo     CatalogRepository
	staffRepo       StaffRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	catalogRepo CatalogRepository,
	staffRepo StaffRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		settingsRepo:    settingsRepo,
		catalogRepo:     catalogRepo,
		staffRepo:       staffRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// При StaffID = nil ("любой свободный мастер") слоты генерируются независимо
// по каждому активному барберу и объединяются в один отсортированный список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: service=%d, staff=%v, date=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Получаем настройки салона (или дефолты, если не сохранялись)
	settings, err := uc.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GenerateSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GenerateSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Валидация даты с учетом настроек
	if err := validateDate(req.Date, now, settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GenerateSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Определяем барберов, для которых считаем доступность
	members, err := uc.resolveStaff(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	// 7. Генерируем слоты независимо по каждому барберу
	dayStart := dayStartUTC(req.Date)
	dayEnd := dayStart.Add(24 * time.Hour)

	allSlots := make([]domain.AvailableSlot, 0)

	for _, member := range members {
		slots, err := uc.generateForStaff(ctx, member.ID, dayStart, dayEnd, service, settings, now)
		if err != nil {
			return nil, err
		}
		allSlots = append(allSlots, slots...)
	}

	// 8. Объединяем: сортировка по началу, при равенстве - по ID барбера
	// Одинаковые начала у разных барберов - это разные предложения, не дубликаты
	sort.Slice(allSlots, func(i, j int) bool {
		if allSlots[i].StartAt.Equal(allSlots[j].StartAt) {
			return allSlots[i].StaffID < allSlots[j].StaffID
		}
		return allSlots[i].StartAt.Before(allSlots[j].StartAt)
	})

	uc.logger.Info("GenerateSlots: generated %d slots for service=%d, date=%s",
		len(allSlots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      dayStart,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Slots:     allSlots,
	}, nil
}

// generateForStaff выбирает расписание, записи и отгулы одного барбера
// и запускает чистый генератор
func (uc *UseCase) generateForStaff(
	ctx context.Context,
	staffID int64,
	dayStart, dayEnd time.Time,
	service *domain.Service,
	settings *domain.ShopSettings,
	now time.Time,
) ([]domain.AvailableSlot, error) {
	weekday := int(dayStart.Weekday())

	rules, err := uc.scheduleRepo.GetWorkingHoursByStaffAndWeekday(ctx, staffID, weekday)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get working hours for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// Только активные записи: отмененные и no-show слот не занимают
	filter := domain.AppointmentsFilter{
		StaffID:         &staffID,
		RangeFrom:       &dayStart,
		RangeTo:         &dayEnd,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get appointments for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	timeOff, err := uc.scheduleRepo.GetTimeOffByStaffAndRange(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get time off for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
	}

	return GenerateSlots(&GenerationRequest{
		StaffID:          staffID,
		Date:             dayStart,
		DurationMinutes:  service.DurationMinutes,
		SlotMinutes:      settings.SlotGranularityMinutes,
		MinNoticeMinutes: settings.MinBookingNoticeMinutes,
		Now:              &now,
		WorkingHours:     rules,
		Appointments:     appointments,
		TimeOff:          timeOff,
	}), nil
}

// resolveStaff возвращает барберов для генерации: одного указанного или всех активных
func (uc *UseCase) resolveStaff(ctx context.Context, staffID *int64) ([]*domain.Staff, error) {
	if staffID != nil {
		member, err := uc.staffRepo.GetByID(ctx, *staffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("GenerateSlots: staff id=%d not found", *staffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GenerateSlots: failed to get staff id=%d: %v", *staffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !member.IsActive {
			uc.logger.Warn("GenerateSlots: staff id=%d is inactive", *staffID)
			return nil, ErrStaffNotFound
		}
		return []*domain.Staff{member}, nil
	}

	members, err := uc.staffRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get active staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get active staff: %v", ErrInternal, err)
	}
	return members, nil
}

// loadSettings получает настройки салона; отсутствие строки настроек - не ошибка
func (uc *UseCase) loadSettings(ctx context.Context) (*domain.ShopSettings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GenerateSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if settings == nil {
		settings = &domain.ShopSettings{
			SlotGranularityMinutes:  domain.DefaultSlotGranularityMinutes,
			MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
			AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
		}
		uc.logger.Info("GenerateSlots: using default shop settings")
	}

	return settings, nil
}
