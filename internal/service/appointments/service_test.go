package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	apptRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/appointment"
	staffRepo "github.com/akozyrev/barbershop-booking-service/internal/infra/storage/staff"
	"github.com/akozyrev/barbershop-booking-service/internal/integrations/notifyservice"
	"github.com/akozyrev/barbershop-booking-service/internal/service/appointments/models"
)

// Фейки для изоляции сервиса от БД и внешних интеграций

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment

	cancelledID     int64
	cancelledReason string
	updatedStatus   domain.AppointmentStatus
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, a := range appts {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByClient(_ context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range f.appointments {
		if a.ClientID != clientID {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range f.appointments {
		if filter.StaffID != nil && a.StaffID != *filter.StaffID {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.appointments[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	f.updatedStatus = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := f.appointments[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type fakeStaffRepo struct {
	staff map[int64]*domain.Staff
}

func newFakeStaffRepo(members ...*domain.Staff) *fakeStaffRepo {
	repo := &fakeStaffRepo{staff: make(map[int64]*domain.Staff)}
	for _, m := range members {
		repo.staff[m.ID] = m
	}
	return repo
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	member, ok := f.staff[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return member, nil
}

type fakeNotifyClient struct {
	cancelledSent int
}

func (f *fakeNotifyClient) SendAppointmentCancelled(_ context.Context, _ *notifyservice.CancellationNotification) error {
	f.cancelledSent++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id, clientID, staffID int64, status domain.AppointmentStatus) *domain.Appointment {
	start := time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:        id,
		ClientID:  clientID,
		StaffID:   staffID,
		ServiceID: 1,
		StartAt:   start,
		EndAt:     start.Add(30 * time.Minute),
		Status:    status,
	}
}

func newTestService(appts *fakeAppointmentRepo, staff *fakeStaffRepo, notify *fakeNotifyClient) *Service {
	return NewService(appts, staff, notify, nopLogger{})
}

func TestGetByID_AccessControl(t *testing.T) {
	manager := &domain.Staff{ID: 100, Role: domain.RoleManager, IsActive: true}
	barber := &domain.Staff{ID: 2, Role: domain.RoleBarber, IsActive: true}

	appts := newFakeAppointmentRepo(testAppointment(1, 10, 2, domain.StatusConfirmed))
	svc := newTestService(appts, newFakeStaffRepo(manager, barber), &fakeNotifyClient{})

	ctx := context.Background()

	t.Run("клиент видит свою запись", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("барбер видит свою запись", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 1, 2)
		require.NoError(t, err)
	})

	t.Run("менеджер видит любую запись", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 1, 100)
		require.NoError(t, err)
	})

	t.Run("посторонний пользователь получает отказ", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 1, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("несуществующая запись", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 404, 10)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCancel(t *testing.T) {
	manager := &domain.Staff{ID: 100, Role: domain.RoleManager, IsActive: true}

	t.Run("клиент отменяет свою запись", func(t *testing.T) {
		appts := newFakeAppointmentRepo(testAppointment(1, 10, 2, domain.StatusPending))
		notify := &fakeNotifyClient{}
		svc := newTestService(appts, newFakeStaffRepo(manager), notify)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
			UserID:             10,
			CancellationReason: "не смогу прийти",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), appts.cancelledID)
		assert.Equal(t, "не смогу прийти", appts.cancelledReason)
		assert.Equal(t, 1, notify.cancelledSent)
	})

	t.Run("чужую запись отменяет только менеджер", func(t *testing.T) {
		appts := newFakeAppointmentRepo(testAppointment(1, 10, 2, domain.StatusConfirmed))
		svc := newTestService(appts, newFakeStaffRepo(manager), &fakeNotifyClient{})

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 999})
		assert.ErrorIs(t, err, ErrAccessDenied)

		err = svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 100})
		assert.NoError(t, err)
	})

	t.Run("завершенную запись отменить нельзя", func(t *testing.T) {
		appts := newFakeAppointmentRepo(testAppointment(1, 10, 2, domain.StatusDone))
		svc := newTestService(appts, newFakeStaffRepo(manager), &fakeNotifyClient{})

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 10})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestUpdateStatus(t *testing.T) {
	manager := &domain.Staff{ID: 100, Role: domain.RoleManager, IsActive: true}
	inactiveManager := &domain.Staff{ID: 101, Role: domain.RoleManager, IsActive: false}

	t.Run("барбер записи меняет статус", func(t *testing.T) {
		appts := newFakeAppointmentRepo(testAppointment(1, 10, 2, domain.StatusPending))
		svc := newTestService(appts, newFakeStaffRepo(manager), &fakeNotifyClient{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 2,
			Status: "confirmed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, appts.updatedStatus)
	})

	t.Run("клиент не может менять статус", func(t *testing.T) {
		appts := newFakeAppointmentRepo(testAppointment(1, 10, 2, domain.StatusPending))
		svc := newTestService(appts, newFakeStaffRepo(manager), &fakeNotifyClient{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 10,
			Status: "done",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("неактивный менеджер получает отказ", func(t *testing.T) {
		appts := newFakeAppointmentRepo(testAppointment(1, 10, 2, domain.StatusPending))
		svc := newTestService(appts, newFakeStaffRepo(inactiveManager), &fakeNotifyClient{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 101,
			Status: "done",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("некорректный статус", func(t *testing.T) {
		appts := newFakeAppointmentRepo(testAppointment(1, 10, 2, domain.StatusPending))
		svc := newTestService(appts, newFakeStaffRepo(manager), &fakeNotifyClient{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 2,
			Status: "unknown",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetClientAppointments_AccessControl(t *testing.T) {
	manager := &domain.Staff{ID: 100, Role: domain.RoleManager, IsActive: true}

	appts := newFakeAppointmentRepo(
		testAppointment(1, 10, 2, domain.StatusConfirmed),
		testAppointment(2, 10, 3, domain.StatusDone),
		testAppointment(3, 11, 2, domain.StatusPending),
	)
	svc := newTestService(appts, newFakeStaffRepo(manager), &fakeNotifyClient{})

	ctx := context.Background()

	t.Run("клиент видит только свою историю", func(t *testing.T) {
		resp, err := svc.GetClientAppointments(ctx, &models.GetClientAppointmentsRequest{
			UserID:   10,
			ClientID: 10,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 2)
	})

	t.Run("чужая история недоступна", func(t *testing.T) {
		_, err := svc.GetClientAppointments(ctx, &models.GetClientAppointmentsRequest{
			UserID:   11,
			ClientID: 10,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("менеджер видит историю любого клиента", func(t *testing.T) {
		resp, err := svc.GetClientAppointments(ctx, &models.GetClientAppointmentsRequest{
			UserID:   100,
			ClientID: 11,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 1)
	})
}
