package notifyservice

import "time"

// AppointmentNotification модель уведомления о записи
// Сервис уведомлений сам решает, какой канал использовать (WhatsApp, email)
type AppointmentNotification struct {
	AppointmentID int64     `json:"appointment_id"`
	ClientID      int64     `json:"client_id"`
	StaffName     string    `json:"staff_name"`
	ServiceName   string    `json:"service_name"`
	StartAt       time.Time `json:"start_at"`
}

// CancellationNotification модель уведомления об отмене записи
type CancellationNotification struct {
	AppointmentID int64  `json:"appointment_id"`
	ClientID      int64  `json:"client_id"`
	Reason        string `json:"reason"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
