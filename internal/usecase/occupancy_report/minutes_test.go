package occupancy_report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	"github.com/akozyrev/barbershop-booking-service/pkg/types"
)

// 2026-02-23 - понедельник
var reportDay = time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func booked(status domain.AppointmentStatus, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		StaffID: 1,
		StartAt: start,
		EndAt:   end,
		Status:  status,
	}
}

func TestCalculateBookedMinutes_CountsActiveAndDoneOnly(t *testing.T) {
	from := reportDay
	to := reportDay.AddDate(0, 0, 1)

	appointments := []*domain.Appointment{
		booked(domain.StatusDone, at(reportDay, 9, 0), at(reportDay, 10, 0)),
		booked(domain.StatusCancelled, at(reportDay, 10, 0), at(reportDay, 11, 0)),
	}

	// Завершенный час считается, отмененный - нет: 60, а не 120
	assert.Equal(t, 60, CalculateBookedMinutes(appointments, from, to))
}

func TestCalculateBookedMinutes_AllCountedStatuses(t *testing.T) {
	from := reportDay
	to := reportDay.AddDate(0, 0, 1)

	appointments := []*domain.Appointment{
		booked(domain.StatusPending, at(reportDay, 9, 0), at(reportDay, 9, 30)),
		booked(domain.StatusConfirmed, at(reportDay, 10, 0), at(reportDay, 10, 45)),
		booked(domain.StatusDone, at(reportDay, 11, 0), at(reportDay, 12, 0)),
		booked(domain.StatusNoShow, at(reportDay, 13, 0), at(reportDay, 14, 0)),
	}

	assert.Equal(t, 30+45+60, CalculateBookedMinutes(appointments, from, to))
}

func TestCalculateBookedMinutes_ClipsToPeriod(t *testing.T) {
	from := at(reportDay, 10, 0)
	to := at(reportDay, 12, 0)

	appointments := []*domain.Appointment{
		// Начинается до периода - входит только часть с 10:00
		booked(domain.StatusConfirmed, at(reportDay, 9, 30), at(reportDay, 10, 30)),
		// Заканчивается после периода - входит только часть до 12:00
		booked(domain.StatusConfirmed, at(reportDay, 11, 30), at(reportDay, 12, 30)),
		// Целиком вне периода - не входит
		booked(domain.StatusConfirmed, at(reportDay, 13, 0), at(reportDay, 14, 0)),
	}

	assert.Equal(t, 30+30, CalculateBookedMinutes(appointments, from, to))
}

func TestCalculateBookedMinutes_OverlapsNotMerged(t *testing.T) {
	from := reportDay
	to := reportDay.AddDate(0, 0, 1)

	// Две пересекающиеся записи: каждая вносит свои минуты целиком
	appointments := []*domain.Appointment{
		booked(domain.StatusConfirmed, at(reportDay, 9, 0), at(reportDay, 10, 0)),
		booked(domain.StatusPending, at(reportDay, 9, 30), at(reportDay, 10, 30)),
	}

	assert.Equal(t, 120, CalculateBookedMinutes(appointments, from, to))
}

func TestCalculateBookedMinutes_EmptyAndInvertedPeriod(t *testing.T) {
	appointments := []*domain.Appointment{
		booked(domain.StatusConfirmed, at(reportDay, 9, 0), at(reportDay, 10, 0)),
	}

	assert.Equal(t, 0, CalculateBookedMinutes(appointments, reportDay, reportDay))
	assert.Equal(t, 0, CalculateBookedMinutes(appointments, reportDay.AddDate(0, 0, 1), reportDay))
	assert.Equal(t, 0, CalculateBookedMinutes(nil, reportDay, reportDay.AddDate(0, 0, 1)))
}

func weeklyRule(weekday int, start, end string) *domain.WorkingHours {
	return &domain.WorkingHours{
		StaffID:   1,
		DayOfWeek: weekday,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestCalculateAvailableMinutes_SumsRuleWindowsPerDay(t *testing.T) {
	// Понедельник и вторник
	from := reportDay
	to := reportDay.AddDate(0, 0, 2)

	rules := []*domain.WorkingHours{
		weeklyRule(1, "09:00", "13:00"), // понедельник, 240 минут
		weeklyRule(1, "14:00", "18:00"), // понедельник, 240 минут
		weeklyRule(2, "10:00", "12:00"), // вторник, 120 минут
		weeklyRule(3, "09:00", "18:00"), // среда - вне периода
	}

	assert.Equal(t, 240+240+120, calculateAvailableMinutes(rules, nil, from, to))
}

func TestCalculateAvailableMinutes_TimeOffReducesWindow(t *testing.T) {
	from := reportDay
	to := reportDay.AddDate(0, 0, 1)

	rules := []*domain.WorkingHours{
		weeklyRule(1, "09:00", "17:00"), // 480 минут
	}

	timeOff := []*domain.TimeOff{
		// Час внутри рабочего окна
		{StaffID: 1, StartAt: at(reportDay, 12, 0), EndAt: at(reportDay, 13, 0)},
		// Частично вне окна - вычитается только пересечение 16:00-17:00
		{StaffID: 1, StartAt: at(reportDay, 16, 0), EndAt: at(reportDay, 19, 0)},
	}

	assert.Equal(t, 480-60-60, calculateAvailableMinutes(rules, timeOff, from, to))
}

func TestCalculateAvailableMinutes_InvalidRulesIgnored(t *testing.T) {
	from := reportDay
	to := reportDay.AddDate(0, 0, 1)

	rules := []*domain.WorkingHours{
		weeklyRule(1, "13:00", "09:00"), // вырожденное окно
		weeklyRule(1, "garbage", "18:00"),
		weeklyRule(1, "09:00", "10:00"),
	}

	assert.Equal(t, 60, calculateAvailableMinutes(rules, nil, from, to))
}

func TestCalculateAvailableMinutes_TimeOffCoveringWholeWindow(t *testing.T) {
	from := reportDay
	to := reportDay.AddDate(0, 0, 1)

	rules := []*domain.WorkingHours{
		weeklyRule(1, "09:00", "12:00"),
	}

	// Отпуск на весь день: окно уходит в ноль, но не в минус
	timeOff := []*domain.TimeOff{
		{StaffID: 1, StartAt: reportDay, EndAt: reportDay.AddDate(0, 0, 1)},
	}

	assert.Equal(t, 0, calculateAvailableMinutes(rules, timeOff, from, to))
}
