package occupancy_report

import "time"

// Request модель запроса отчета по занятости
// Период [From, To) задается UTC-днями: From включительно, To исключительно
type Request struct {
	UserID  int64     // ID пользователя, запросившего отчет
	StaffID *int64    // ID барбера; nil = отчет по всем активным
	From    time.Time // Начало периода
	To      time.Time // Конец периода
}

// StaffReport занятость одного барбера за период
type StaffReport struct {
	StaffID          int64   `json:"staff_id"`
	StaffName        string  `json:"staff_name"`
	BookedMinutes    int     `json:"booked_minutes"`
	AvailableMinutes int     `json:"available_minutes"`
	UtilizationRate  float64 `json:"utilization_rate"`
}

// Response модель ответа с отчетом по занятости
type Response struct {
	From  time.Time     `json:"from"`
	To    time.Time     `json:"to"`
	Staff []StaffReport `json:"staff"`
}
