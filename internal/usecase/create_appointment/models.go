package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	ClientID  int64     // ID клиента (из заголовка авторизации)
	StaffID   int64     // ID барбера
	ServiceID int64     // ID услуги
	StartAt   time.Time // Начало записи (UTC-момент, выровненный по сетке слотов)
	Notes     *string   // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID           int64      `json:"id"`
	ClientID     int64      `json:"client_id"`
	StaffID      int64      `json:"staff_id"`
	ServiceID    int64      `json:"service_id"`
	StartAt      time.Time  `json:"start_at"`
	EndAt        time.Time  `json:"end_at"`
	Status       string     `json:"status"`
	ServiceName  string     `json:"service_name"`
	ServicePrice float64    `json:"service_price"`
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
