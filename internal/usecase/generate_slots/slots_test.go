package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	"github.com/akozyrev/barbershop-booking-service/pkg/ptr"
	"github.com/akozyrev/barbershop-booking-service/pkg/types"
)

// 2026-02-23 - понедельник
var testDay = time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

func dayAt(hour, minute int) time.Time {
	return time.Date(2026, 2, 23, hour, minute, 0, 0, time.UTC)
}

func rule(weekday int, start, end string) *domain.WorkingHours {
	return &domain.WorkingHours{
		StaffID:   1,
		DayOfWeek: weekday,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func appt(status domain.AppointmentStatus, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:      1,
		StaffID: 1,
		StartAt: start,
		EndAt:   end,
		Status:  status,
	}
}

func slotStarts(slots []domain.AvailableSlot) []time.Time {
	starts := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartAt)
	}
	return starts
}

func TestGenerateSlots_OpenDayWithoutBookings(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     15,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:00", "11:00")},
	})

	require.Len(t, resp, 7)
	assert.Equal(t, dayAt(9, 0), resp[0].StartAt)
	assert.Equal(t, dayAt(9, 30), resp[0].EndAt)
	assert.Equal(t, dayAt(10, 30), resp[6].StartAt)
	assert.Equal(t, dayAt(11, 0), resp[6].EndAt)

	for i := 1; i < len(resp); i++ {
		assert.Equal(t, 15*time.Minute, resp[i].StartAt.Sub(resp[i-1].StartAt))
	}
}

func TestGenerateSlots_BookingAndTimeOffBlockSlots(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     15,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:00", "12:00")},
		Appointments: []*domain.Appointment{
			appt(domain.StatusConfirmed, dayAt(9, 30), dayAt(10, 15)),
		},
		TimeOff: []*domain.TimeOff{
			{StaffID: 1, StartAt: dayAt(11, 0), EndAt: dayAt(11, 30)},
		},
	})

	expected := []time.Time{dayAt(9, 0), dayAt(10, 15), dayAt(10, 30), dayAt(11, 30)}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     15,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:00", "10:00")},
		Appointments: []*domain.Appointment{
			appt(domain.StatusCancelled, dayAt(9, 0), dayAt(9, 30)),
			appt(domain.StatusNoShow, dayAt(9, 30), dayAt(10, 0)),
			appt(domain.StatusDone, dayAt(9, 15), dayAt(9, 45)),
		},
	})

	// Завершенные и отмененные записи слоты не занимают
	expected := []time.Time{dayAt(9, 0), dayAt(9, 15), dayAt(9, 30)}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_TouchingIntervalsDoNotConflict(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     30,
		WorkingHours:    []*domain.WorkingHours{rule(1, "11:00", "13:00")},
		Appointments: []*domain.Appointment{
			appt(domain.StatusPending, dayAt(11, 30), dayAt(12, 0)),
		},
	})

	// Слоты 11:00-11:30 и 12:00-12:30 граничат с записью, но не пересекаются
	expected := []time.Time{dayAt(11, 0), dayAt(12, 0), dayAt(12, 30)}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_GridAnchoredAtMidnight(t *testing.T) {
	// Правило начинается в 09:10 - первый слот выравнивается вверх до 09:15
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     15,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:10", "10:30")},
	})

	expected := []time.Time{dayAt(9, 15), dayAt(9, 30), dayAt(9, 45), dayAt(10, 0)}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_ConflictSkipsGridPositionWithoutShift(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 60,
		SlotMinutes:     30,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:00", "12:00")},
		Appointments: []*domain.Appointment{
			appt(domain.StatusConfirmed, dayAt(9, 30), dayAt(10, 0)),
		},
	})

	// После конфликта курсор идет дальше по сетке, а не прижимается
	// к концу записи
	expected := []time.Time{dayAt(10, 0), dayAt(10, 30), dayAt(11, 0)}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_MinNoticeCutoffRoundsUp(t *testing.T) {
	now := time.Date(2026, 2, 23, 9, 0, 30, 0, time.UTC)

	resp := GenerateSlots(&GenerationRequest{
		StaffID:          1,
		Date:             testDay,
		DurationMinutes:  30,
		SlotMinutes:      15,
		MinNoticeMinutes: 60,
		Now:              &now,
		WorkingHours:     []*domain.WorkingHours{rule(1, "09:00", "12:00")},
	})

	// Отсечка 10:00:30 округляется вверх до минуты 10:01,
	// затем старт выравнивается по сетке до 10:15
	require.NotEmpty(t, resp)
	assert.Equal(t, dayAt(10, 15), resp[0].StartAt)
}

func TestGenerateSlots_PastDayGivesNoSlots(t *testing.T) {
	now := time.Date(2026, 2, 24, 8, 0, 0, 0, time.UTC)

	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     15,
		Now:             &now,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:00", "18:00")},
	})

	assert.Empty(t, resp)
}

func TestGenerateSlots_SplitShiftsDoNotBridgeGap(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 60,
		SlotMinutes:     30,
		WorkingHours: []*domain.WorkingHours{
			rule(1, "09:00", "12:00"),
			rule(1, "13:00", "15:00"),
		},
	})

	// Слот не может пересекать границу правила: 11:30-12:30 невозможен,
	// перерыв 12:00-13:00 слотов не дает
	expected := []time.Time{
		dayAt(9, 0), dayAt(9, 30), dayAt(10, 0), dayAt(10, 30), dayAt(11, 0),
		dayAt(13, 0), dayAt(13, 30), dayAt(14, 0),
	}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_SkipsInvalidRules(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     30,
		WorkingHours: []*domain.WorkingHours{
			rule(1, "25:00", "26:00"), // нераспарсиваемое время
			rule(1, "garbage", "10:00"),
			rule(1, "12:00", "11:00"), // вырожденное окно
			rule(1, "14:00", "14:00"),
			rule(1, "09:00", "10:00"), // единственное корректное правило
		},
	})

	expected := []time.Time{dayAt(9, 0), dayAt(9, 30)}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_OverlappingRulesDeduplicated(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     30,
		WorkingHours: []*domain.WorkingHours{
			rule(1, "09:00", "11:00"),
			rule(1, "10:00", "12:00"),
		},
	})

	// Слоты 10:00 и 10:30 порождаются обоими правилами - в выдаче по одному разу
	expected := []time.Time{
		dayAt(9, 0), dayAt(9, 30), dayAt(10, 0), dayAt(10, 30), dayAt(11, 0), dayAt(11, 30),
	}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_RulesForOtherWeekdaysIgnored(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay, // понедельник
		DurationMinutes: 30,
		SlotMinutes:     30,
		WorkingHours: []*domain.WorkingHours{
			rule(2, "09:00", "18:00"), // вторник
			rule(0, "10:00", "14:00"), // воскресенье
		},
	})

	assert.Empty(t, resp)
}

func TestGenerateSlots_MultiDayBlockerClippedToDay(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     30,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:00", "12:00")},
		TimeOff: []*domain.TimeOff{
			// Отпуск с прошлой недели до 10:00 целевого дня
			{
				StaffID: 1,
				StartAt: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
				EndAt:   dayAt(10, 0),
			},
		},
	})

	expected := []time.Time{dayAt(10, 0), dayAt(10, 30), dayAt(11, 0), dayAt(11, 30)}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_PartialMinuteBlockerRoundsOutward(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     30,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:00", "11:00")},
		Appointments: []*domain.Appointment{
			// Запись заканчивается в 09:30:01 - частично занятая минута занята целиком
			appt(domain.StatusConfirmed,
				dayAt(9, 0), time.Date(2026, 2, 23, 9, 30, 1, 0, time.UTC)),
		},
	})

	expected := []time.Time{dayAt(10, 0), dayAt(10, 30)}
	assert.Equal(t, expected, slotStarts(resp))
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	resp := GenerateSlots(&GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 90,
		SlotMinutes:     15,
		WorkingHours:    []*domain.WorkingHours{rule(1, "09:00", "10:00")},
	})

	assert.Empty(t, resp)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	req := &GenerationRequest{
		StaffID:         1,
		Date:            testDay,
		DurationMinutes: 30,
		SlotMinutes:     15,
		WorkingHours: []*domain.WorkingHours{
			rule(1, "13:00", "15:00"),
			rule(1, "09:00", "12:00"),
		},
		Appointments: []*domain.Appointment{
			appt(domain.StatusPending, dayAt(10, 0), dayAt(10, 30)),
		},
		TimeOff: []*domain.TimeOff{
			{StaffID: 1, StartAt: dayAt(13, 30), EndAt: dayAt(14, 0)},
		},
	}

	first := GenerateSlots(req)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GenerateSlots(req))
	}

	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].StartAt.Before(first[i].StartAt))
	}
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 2, 23, 12, 0, 0, 0, time.UTC)

	t.Run("сегодня допустимо", func(t *testing.T) {
		assert.NoError(t, validateDate(testDay, now, 0))
	})

	t.Run("прошлое отклоняется", func(t *testing.T) {
		yesterday := testDay.AddDate(0, 0, -1)
		assert.ErrorIs(t, validateDate(yesterday, now, 0), ErrInvalidDate)
	})

	t.Run("горизонт бронирования", func(t *testing.T) {
		within := testDay.AddDate(0, 0, 14)
		beyond := testDay.AddDate(0, 0, 15)
		assert.NoError(t, validateDate(within, now, 14))
		assert.ErrorIs(t, validateDate(beyond, now, 14), ErrDateTooFarInFuture)
	})

	t.Run("без горизонта дальние даты допустимы", func(t *testing.T) {
		assert.NoError(t, validateDate(testDay.AddDate(1, 0, 0), now, 0))
	})
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{ServiceID: 1, StaffID: ptr.Ptr(int64(2)), Date: testDay}
	assert.NoError(t, validateRequest(valid))

	assert.ErrorIs(t, validateRequest(nil), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{ServiceID: 0, Date: testDay}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{ServiceID: 1, StaffID: ptr.Ptr(int64(0)), Date: testDay}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{ServiceID: 1}), ErrInvalidDate)
}
