package generate_slots

import (
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	StaffID   *int64    // ID барбера; nil = любой свободный мастер
	Date      time.Time // Дата для получения слотов (без времени, UTC-день)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time              // Дата, на которую запрашивались слоты
	ServiceID int64                  // ID услуги
	StaffID   *int64                 // ID барбера из запроса (nil = все мастера)
	Slots     []domain.AvailableSlot // Доступные слоты, отсортированные по началу
}

// GenerationRequest входные данные чистой функции генерации слотов
// для одного барбера на один UTC-день; заполняется usecase-ом после
// выборки расписания, записей и отгулов из хранилища
type GenerationRequest struct {
	StaffID          int64
	Date             time.Time  // Любой момент внутри целевого UTC-дня
	DurationMinutes  int        // Длительность услуги
	SlotMinutes      int        // Шаг сетки слотов (от полуночи)
	MinNoticeMinutes int        // Минимальное время до начала слота при бронировании день-в-день
	Now              *time.Time // Референсное "сейчас"; nil = без отсечки
	WorkingHours     []*domain.WorkingHours
	Appointments     []*domain.Appointment
	TimeOff          []*domain.TimeOff
}
