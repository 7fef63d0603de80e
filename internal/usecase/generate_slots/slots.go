package generate_slots

import (
	"sort"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
)

const minutesPerDay = 24 * 60

// blockSpan занятый полуинтервал [StartMin, EndMin) в минутах от начала UTC-дня
type blockSpan struct {
	StartMin int
	EndMin   int
}

// GenerateSlots генерирует доступные слоты одного барбера на один UTC-день
//
// Чистая детерминированная функция: никакого I/O, никакого time.Now() -
// референсное "сейчас" приходит параметром. Одинаковый вход всегда дает
// одинаковый выход в одном и том же порядке.
//
// Слоты генерируются независимо по каждому правилу рабочих часов на день
// запроса; промежутки между правилами слотов не дают, слот не может
// пересекать границу правила. Начала слотов привязаны к сетке SlotMinutes,
// отсчитываемой от полуночи; длительность услуги кратной сетке быть не обязана.
func GenerateSlots(req *GenerationRequest) []domain.AvailableSlot {
	if req.DurationMinutes <= 0 || req.SlotMinutes <= 0 {
		return []domain.AvailableSlot{}
	}

	dayStart := dayStartUTC(req.Date)
	weekday := int(dayStart.Weekday())

	minStart := minStartMinute(req.Now, dayStart, req.MinNoticeMinutes)
	blockers := collectBlockers(req.Appointments, req.TimeOff, dayStart)

	slots := make([]domain.AvailableSlot, 0)

	for _, rule := range req.WorkingHours {
		if rule.DayOfWeek != weekday {
			continue
		}
		slots = append(slots, generateRuleSlots(rule, req.StaffID, dayStart,
			req.DurationMinutes, req.SlotMinutes, minStart, blockers)...)
	}

	return sortAndDeduplicate(slots)
}

// generateRuleSlots генерирует слоты внутри одного правила рабочих часов
// Правила с нераспарсиваемым временем или вырожденным окном (start >= end)
// молча пропускаются и слотов не дают
func generateRuleSlots(
	rule *domain.WorkingHours,
	staffID int64,
	dayStart time.Time,
	durationMinutes int,
	slotMinutes int,
	minStart int,
	blockers []blockSpan,
) []domain.AvailableSlot {
	ruleStart, err := rule.StartTime.Minutes()
	if err != nil {
		return nil
	}
	ruleEnd, err := rule.EndTime.Minutes()
	if err != nil {
		return nil
	}
	if ruleStart >= ruleEnd {
		return nil
	}

	// Курсор стартует с максимума из начала правила и отсечки "сейчас",
	// затем выравнивается вверх по сетке
	cursor := ruleStart
	if minStart > cursor {
		cursor = minStart
	}
	if rem := cursor % slotMinutes; rem != 0 {
		cursor += slotMinutes - rem
	}

	slots := make([]domain.AvailableSlot, 0)

	for cursor+durationMinutes <= ruleEnd {
		candidate := blockSpan{StartMin: cursor, EndMin: cursor + durationMinutes}

		// Сетка фиксирована: конфликт дает пропуск, а не сдвиг курсора
		if !overlapsAny(candidate, blockers) {
			slots = append(slots, domain.AvailableSlot{
				StaffID: staffID,
				StartAt: dayStart.Add(time.Duration(candidate.StartMin) * time.Minute),
				EndAt:   dayStart.Add(time.Duration(candidate.EndMin) * time.Minute),
			})
		}

		cursor += slotMinutes
	}

	return slots
}

// collectBlockers собирает занятые интервалы дня в минутах от полуночи
// Записи учитываются только в блокирующих статусах (pending, confirmed);
// отгулы блокируют всегда. Интервалы обрезаются границами дня, полностью
// выходящие за день - отбрасываются
func collectBlockers(appointments []*domain.Appointment, timeOff []*domain.TimeOff, dayStart time.Time) []blockSpan {
	blockers := make([]blockSpan, 0, len(appointments)+len(timeOff))

	for _, appt := range appointments {
		if !appt.Status.Blocks() {
			continue
		}
		if span, ok := clipToDay(appt.StartAt, appt.EndAt, dayStart); ok {
			blockers = append(blockers, span)
		}
	}

	for _, block := range timeOff {
		if span, ok := clipToDay(block.StartAt, block.EndAt, dayStart); ok {
			blockers = append(blockers, span)
		}
	}

	return blockers
}

// clipToDay переводит интервал [start, end) в минуты UTC-дня, обрезая по границам
// Начало округляется вниз, конец - вверх: частично занятая минута считается занятой
func clipToDay(start, end time.Time, dayStart time.Time) (blockSpan, bool) {
	dayEnd := dayStart.Add(minutesPerDay * time.Minute)

	if !end.After(dayStart) || !start.Before(dayEnd) {
		return blockSpan{}, false
	}

	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}

	startMin := int(start.Sub(dayStart) / time.Minute)
	endMin := int((end.Sub(dayStart) + time.Minute - 1) / time.Minute)

	if startMin >= endMin {
		return blockSpan{}, false
	}

	return blockSpan{StartMin: startMin, EndMin: endMin}, true
}

// minStartMinute вычисляет минуту дня, раньше которой слот начинаться не может
//
// Отсечка = "сейчас" + минимальное время до брони, округленная вверх до минуты.
// Для прошедших дней результат превышает длину дня (слотов не будет),
// для будущих дней равен нулю (отсечка не действует)
func minStartMinute(now *time.Time, dayStart time.Time, noticeMinutes int) int {
	if now == nil {
		return 0
	}

	cutoff := now.Add(time.Duration(noticeMinutes) * time.Minute)
	if !cutoff.After(dayStart) {
		return 0
	}

	offset := cutoff.Sub(dayStart)
	minute := int((offset + time.Minute - 1) / time.Minute)

	if minute > minutesPerDay {
		return minutesPerDay
	}
	return minute
}

// overlapsAny проверяет строгое пересечение кандидата с занятыми интервалами
//
// Интервалы пересекаются, только если действительно накладываются:
// a.Start < b.End && b.Start < a.End. Граничащие интервалы (конец одного
// равен началу другого) пересечением НЕ считаются:
// - Слот 11:30-12:00, запись 11:20-11:40 -> ЕСТЬ пересечение
// - Слот 11:30-12:00, запись 11:00-11:30 -> НЕТ пересечения (граничат)
// - Слот 11:30-12:00, запись 12:00-12:30 -> НЕТ пересечения (граничат)
func overlapsAny(candidate blockSpan, blockers []blockSpan) bool {
	for _, b := range blockers {
		if candidate.StartMin < b.EndMin && b.StartMin < candidate.EndMin {
			return true
		}
	}
	return false
}

// sortAndDeduplicate сортирует слоты по началу и убирает дубликаты
// Пересекающиеся правила рабочих часов одного барбера могут породить
// слот с одинаковым началом дважды - оставляем один
func sortAndDeduplicate(slots []domain.AvailableSlot) []domain.AvailableSlot {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartAt.Before(slots[j].StartAt)
	})

	result := slots[:0]
	for i, slot := range slots {
		if i > 0 && slot.StartAt.Equal(slots[i-1].StartAt) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

// dayStartUTC возвращает начало UTC-дня для переданного момента
func dayStartUTC(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// isSameDay проверяет, что две даты относятся к одному UTC-дню
func isSameDay(a, b time.Time) bool {
	return dayStartUTC(a).Equal(dayStartUTC(b))
}

// isDateInPast проверяет, что дата раньше сегодняшнего UTC-дня
func isDateInPast(date, now time.Time) bool {
	return dayStartUTC(date).Before(dayStartUTC(now))
}
