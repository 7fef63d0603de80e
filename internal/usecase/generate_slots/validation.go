package generate_slots

import (
	"fmt"
	"time"
)

// validateRequest проверяет базовую корректность запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service ID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staff ID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	return nil
}

// validateDate проверяет дату запроса относительно "сейчас" и горизонта бронирования
// Запрос на сегодня допустим: отсечка по времени отработает внутри генератора
func validateDate(date, now time.Time, advanceBookingDays int) error {
	if isDateInPast(date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	if advanceBookingDays > 0 {
		horizon := dayStartUTC(now).AddDate(0, 0, advanceBookingDays)
		if dayStartUTC(date).After(horizon) {
			return fmt.Errorf("%w: booking horizon is %d days", ErrDateTooFarInFuture, advanceBookingDays)
		}
	}

	return nil
}
