package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	catalogRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/catalog"
	settingsRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/settings"
	staffRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/staff"
	"github.com/akozyrev/barbershop-booking-service/internal/integrations/notifyservice"
	"github.com/akozyrev/barbershop-booking-service/internal/usecase/generate_slots"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	settingsRepo    SettingsRepository
	catalogRepo     CatalogRepository
	staffRepo       StaffRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
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
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		settingsRepo:    settingsRepo,
		catalogRepo:     catalogRepo,
		staffRepo:       staffRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// внутри транзакции слоты пересчитываются заново по заблокированным строкам,
// и запрошенное начало должно оказаться среди доступных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, staff=%d, service=%d, start=%s",
		req.ClientID, req.StaffID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Получаем барбера
	member, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !member.IsActive {
		uc.logger.Warn("CreateAppointment: staff id=%d is inactive", req.StaffID)
		return nil, ErrStaffNotFound
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	startAt := req.StartAt.UTC()
	endAt := startAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем настройки салона (или дефолты, если не сохранялись)
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		if settings == nil {
			settings = &domain.ShopSettings{
				SlotGranularityMinutes:  domain.DefaultSlotGranularityMinutes,
				MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
				AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
			}
			uc.logger.Info("CreateAppointment: using default shop settings")
		}

		// 5.2. Валидация даты с учетом настроек
		if err := validateDate(startAt, now, settings.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 5.3. Перепроверяем доступность слота по заблокированным строкам
		available, err := uc.isSlotAvailable(txCtx, req.StaffID, startAt, service, settings, now)
		if err != nil {
			return err
		}
		if !available {
			uc.logger.Warn("CreateAppointment: slot %s is not available for staff=%d",
				startAt.Format(time.RFC3339), req.StaffID)
			return ErrSlotNotAvailable
		}

		// 5.4. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			ClientID:     req.ClientID,
			StaffID:      req.StaffID,
			ServiceID:    req.ServiceID,
			StartAt:      startAt,
			EndAt:        endAt,
			Status:       domain.StatusPending,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			Notes:        req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 6. Отправляем уведомление (best-effort: деградация сервиса уведомлений
	// не отменяет созданную запись)
	notifyErr := uc.notifyClient.SendAppointmentCreated(ctx, &notifyservice.AppointmentNotification{
		AppointmentID: result.ID,
		ClientID:      result.ClientID,
		StaffName:     member.FullName,
		ServiceName:   result.ServiceName,
		StartAt:       result.StartAt,
	})
	if notifyErr != nil {
		uc.logger.Warn("CreateAppointment: notification degraded for appointment id=%d: %v", result.ID, notifyErr)
	}

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		ClientID:     result.ClientID,
		StaffID:      result.StaffID,
		ServiceID:    result.ServiceID,
		StartAt:      result.StartAt,
		EndAt:        result.EndAt,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// isSlotAvailable пересчитывает слоты дня внутри транзакции и проверяет,
// что запрошенное начало есть среди доступных
// Выборка записей внутри транзакции берет блокировку FOR UPDATE
func (uc *UseCase) isSlotAvailable(
	ctx context.Context,
	staffID int64,
	startAt time.Time,
	service *domain.Service,
	settings *domain.ShopSettings,
	now time.Time,
) (bool, error) {
	dayStart := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	weekday := int(dayStart.Weekday())

	rules, err := uc.scheduleRepo.GetWorkingHoursByStaffAndWeekday(ctx, staffID, weekday)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get working hours for staff=%d: %v", staffID, err)
		return false, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	filter := domain.AppointmentsFilter{
		StaffID:         &staffID,
		RangeFrom:       &dayStart,
		RangeTo:         &dayEnd,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get appointments for staff=%d: %v", staffID, err)
		return false, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	timeOff, err := uc.scheduleRepo.GetTimeOffByStaffAndRange(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get time off for staff=%d: %v", staffID, err)
		return false, fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
	}

	slots := generate_slots.GenerateSlots(&generate_slots.GenerationRequest{
		StaffID:          staffID,
		Date:             dayStart,
		DurationMinutes:  service.DurationMinutes,
		SlotMinutes:      settings.SlotGranularityMinutes,
		MinNoticeMinutes: settings.MinBookingNoticeMinutes,
		Now:              &now,
		WorkingHours:     rules,
		Appointments:     appointments,
		TimeOff:          timeOff,
	})

	for _, slot := range slots {
		if slot.StartAt.Equal(startAt) {
			return true, nil
		}
	}

	return false, nil
}
