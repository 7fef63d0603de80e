package domain

import "time"

// AvailableSlot represents a bookable, conflict-free interval of exactly
// the requested service duration, aligned to the slot grid
type AvailableSlot struct {
	StaffID int64
	StartAt time.Time
	EndAt   time.Time
}

// ShopSettings represents the booking configuration of the shop
type ShopSettings struct {
	ID                      int64
	SlotGranularityMinutes  int // Шаг сетки слотов, не зависит от длительности услуги
	MinBookingNoticeMinutes int
	AdvanceBookingDays      int // 0 = без ограничения
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (s *ShopSettings) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}
