package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusDone      AppointmentStatus = "done"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a client appointment with a barber
// StartAt and EndAt are UTC instants; all slot math is done in the UTC day frame
type Appointment struct {
	ID        int64
	ClientID  int64
	StaffID   int64
	ServiceID int64
	StartAt   time.Time
	EndAt     time.Time
	Status    AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks returns true if the appointment removes availability.
// An appointment with an unknown (empty) status is treated as blocking
func (s AppointmentStatus) Blocks() bool {
	switch s {
	case StatusPending, StatusConfirmed, "":
		return true
	default:
		return false
	}
}

// CountsAsBooked returns true if the appointment counts toward occupancy.
// Broader than Blocks: done appointments count toward history but never
// block future booking
func (s AppointmentStatus) CountsAsBooked() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDone:
		return true
	default:
		return false
	}
}

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDone, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// Blocks reports whether this appointment removes availability
func (a *Appointment) Blocks() bool {
	return a.Status.Blocks()
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// DurationMinutes returns the appointment length in whole minutes
func (a *Appointment) DurationMinutes() int {
	return int(a.EndAt.Sub(a.StartAt).Minutes())
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StaffID         *int64             // Фильтр по барберу (опционально)
	ClientID        *int64             // Фильтр по клиенту (опционально)
	RangeFrom       *time.Time         // Начало периода (включительно)
	RangeTo         *time.Time         // Конец периода (исключительно)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и no-show записи
}
