package get_occupancy_report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	"github.com/akozyrev/barbershop-booking-service/internal/usecase/occupancy_report"
)

// ToUseCaseRequest конвертирует query параметры в usecase request.
// from и to принимаются в формате YYYY-MM-DD и трактуются как UTC-дни,
// период [from, to) - to не включается.
func ToUseCaseRequest(userID int64, staffIDStr, fromStr, toStr string) (*occupancy_report.Request, error) {
	if fromStr == "" || toStr == "" {
		return nil, fmt.Errorf("from and to are required")
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, fmt.Errorf("invalid from: %v", err)
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, fmt.Errorf("invalid to: %v", err)
	}

	req := &occupancy_report.Request{
		UserID: userID,
		From:   from,
		To:     to,
	}

	if staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid staffId: %v", err)
		}
		req.StaffID = &staffID
	}

	return req, nil
}
