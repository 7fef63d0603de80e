package create_time_off

import (
	"fmt"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/service/schedule/models"
)

// CreateTimeOffRequest HTTP request model
type CreateTimeOffRequest struct {
	StartAt string  `json:"startAt"` // RFC 3339
	EndAt   string  `json:"endAt"`   // RFC 3339
	Reason  *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в service request
func (r *CreateTimeOffRequest) ToServiceRequest(userID, staffID int64) (*models.CreateTimeOffRequest, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, fmt.Errorf("invalid startAt: %v", err)
	}

	endAt, err := time.Parse(time.RFC3339, r.EndAt)
	if err != nil {
		return nil, fmt.Errorf("invalid endAt: %v", err)
	}

	return &models.CreateTimeOffRequest{
		UserID:  userID,
		StaffID: staffID,
		StartAt: startAt,
		EndAt:   endAt,
		Reason:  r.Reason,
	}, nil
}
