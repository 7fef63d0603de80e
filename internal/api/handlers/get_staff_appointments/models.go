package get_staff_appointments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/akozyrev/barbershop-booking-service/internal/service/appointments/models"
)

// parseQueryParams собирает service request из path и query параметров.
// rangeFrom и rangeTo принимаются в формате RFC 3339.
func parseQueryParams(userID, staffID int64, query map[string][]string) (*models.GetStaffAppointmentsRequest, error) {
	req := &models.GetStaffAppointmentsRequest{
		UserID:  userID,
		StaffID: staffID,
	}

	if v := queryValue(query, "rangeFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid rangeFrom: %v", err)
		}
		req.RangeFrom = &t
	}

	if v := queryValue(query, "rangeTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid rangeTo: %v", err)
		}
		req.RangeTo = &t
	}

	if v := queryValue(query, "status"); v != "" {
		req.Status = &v
	}

	if v := queryValue(query, "includeInactive"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %v", err)
		}
		req.IncludeInactive = include
	}

	return req, nil
}

func queryValue(query map[string][]string, key string) string {
	if vals, ok := query[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return ""
}
