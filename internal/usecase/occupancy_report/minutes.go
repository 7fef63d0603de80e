package occupancy_report

import (
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
)

// CalculateBookedMinutes суммирует занятые минуты записей за период [from, to)
//
// Чистая детерминированная функция. Учитываются записи в статусах
// pending, confirmed и done: завершенная запись входит в историческую
// занятость, хотя будущие слоты не блокирует. Отмененные и no-show
// записи не учитываются.
//
// Каждая запись обрезается границами периода независимо; пересекающиеся
// записи НЕ объединяются - каждая вносит свои минуты целиком. Неполные
// минуты после обрезки отбрасываются
func CalculateBookedMinutes(appointments []*domain.Appointment, from, to time.Time) int {
	if !to.After(from) {
		return 0
	}

	total := 0

	for _, appt := range appointments {
		if !appt.Status.CountsAsBooked() {
			continue
		}

		start := appt.StartAt
		if start.Before(from) {
			start = from
		}
		end := appt.EndAt
		if end.After(to) {
			end = to
		}

		if !end.After(start) {
			continue
		}

		total += int(end.Sub(start) / time.Minute)
	}

	return total
}

// calculateAvailableMinutes считает плановую доступность барбера за период [from, to):
// сумма окон рабочих правил по дням минус пересечение отгулов с этими окнами
//
// Правила с некорректным временем или вырожденным окном доступности не дают,
// как и при генерации слотов
func calculateAvailableMinutes(rules []*domain.WorkingHours, timeOff []*domain.TimeOff, from, to time.Time) int {
	total := 0

	for day := dayStartUTC(from); day.Before(to); day = day.AddDate(0, 0, 1) {
		weekday := int(day.Weekday())

		for _, rule := range rules {
			if rule.DayOfWeek != weekday || !rule.IsValid() {
				continue
			}

			ruleStart, _ := rule.StartTime.Minutes()
			ruleEnd, _ := rule.EndTime.Minutes()

			window := ruleEnd - ruleStart
			for _, block := range timeOff {
				window -= overlapWithDayWindow(block, day, ruleStart, ruleEnd)
			}

			if window > 0 {
				total += window
			}
		}
	}

	return total
}

// overlapWithDayWindow возвращает пересечение отгула с окном [startMin, endMin)
// конкретного UTC-дня в минутах
func overlapWithDayWindow(block *domain.TimeOff, day time.Time, startMin, endMin int) int {
	windowStart := day.Add(time.Duration(startMin) * time.Minute)
	windowEnd := day.Add(time.Duration(endMin) * time.Minute)

	start := block.StartAt
	if start.Before(windowStart) {
		start = windowStart
	}
	end := block.EndAt
	if end.After(windowEnd) {
		end = windowEnd
	}

	if !end.After(start) {
		return 0
	}

	return int(end.Sub(start) / time.Minute)
}

// dayStartUTC возвращает начало UTC-дня для переданного момента
func dayStartUTC(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
