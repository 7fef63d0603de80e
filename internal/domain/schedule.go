package domain

import (
	"time"

	"github.com/akozyrev/barbershop-booking-service/pkg/types"
)

// WorkingHours represents a recurring weekly availability window for one barber.
// DayOfWeek follows time.Weekday numbering: 0 is Sunday.
// Several rules may exist for the same barber and weekday (split shifts)
type WorkingHours struct {
	ID        int64
	StaffID   int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValid returns true if the rule can ever produce slots:
// both bounds parse as HH:MM and the window is not degenerate (start < end)
func (w *WorkingHours) IsValid() bool {
	start, err := w.StartTime.Minutes()
	if err != nil {
		return false
	}
	end, err := w.EndTime.Minutes()
	if err != nil {
		return false
	}
	return start < end
}

// WindowMinutes returns the window length in minutes, 0 for invalid rules
func (w *WorkingHours) WindowMinutes() int {
	if !w.IsValid() {
		return 0
	}
	start, _ := w.StartTime.Minutes()
	end, _ := w.EndTime.Minutes()
	return end - start
}

// TimeOff represents a blocking time-off interval for one barber.
// Unlike appointments it has no status and always removes availability
type TimeOff struct {
	ID        int64
	StaffID   int64
	StartAt   time.Time
	EndAt     time.Time
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Staff represents a barber
type Staff struct {
	ID        int64
	FullName  string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service represents a bookable service from the shop catalog
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
