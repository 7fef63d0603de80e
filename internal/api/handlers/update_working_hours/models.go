package update_working_hours

import "github.com/akozyrev/barbershop-booking-service/internal/service/schedule/models"

// UpdateWorkingHoursRequest HTTP request model
// Полностью заменяет недельное расписание барбера
type UpdateWorkingHoursRequest struct {
	Rules []WorkingHoursRule `json:"rules"`
}

// WorkingHoursRule одно правило недельного расписания
type WorkingHoursRule struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToServiceRequest конвертирует HTTP запрос в service request
func (r *UpdateWorkingHoursRequest) ToServiceRequest(userID, staffID int64) *models.UpdateWorkingHoursRequest {
	rules := make([]models.WorkingHoursRule, len(r.Rules))
	for i, rule := range r.Rules {
		rules[i] = models.WorkingHoursRule{
			DayOfWeek: rule.DayOfWeek,
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
		}
	}

	return &models.UpdateWorkingHoursRequest{
		UserID:  userID,
		StaffID: staffID,
		Rules:   rules,
	}
}
