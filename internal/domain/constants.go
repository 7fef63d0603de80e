package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes  = 15
	DefaultMinBookingNoticeMinutes = 0
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinSlotGranularityMinutes   = 5
	MaxSlotGranularityMinutes   = 120
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinNoticeMinutes            = 0
	MaxNoticeMinutes            = 10080 // 1 week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxReportPeriodDays         = 366 // отчет не длиннее года
)

// Staff roles
const (
	RoleBarber  = "barber"
	RoleManager = "manager"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не влияющих на доступность слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// BlockingStatuses список статусов, занимающих слот при генерации доступности
// Завершенные записи (done) слот не блокируют
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// BookedStatuses список статусов, учитываемых в отчете по занятости
// Шире BlockingStatuses: done входит в историческую занятость
var BookedStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusDone,
}
