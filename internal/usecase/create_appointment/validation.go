package create_appointment

import (
	"fmt"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
)

// validateRequest проверяет базовую корректность запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: client ID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staff ID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service ID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidDate)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет дату записи относительно "сейчас" и горизонта бронирования
// Точную отсечку по времени внутри дня обеспечивает пересчет слотов
func validateDate(startAt, now time.Time, advanceBookingDays int) error {
	dayStart := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if dayStart.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	if advanceBookingDays > 0 {
		horizon := today.AddDate(0, 0, advanceBookingDays)
		if dayStart.After(horizon) {
			return fmt.Errorf("%w: booking horizon is %d days", ErrDateTooFarInFuture, advanceBookingDays)
		}
	}

	return nil
}
