package delete_time_off

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akozyrev/barbershop-booking-service/internal/api/handlers"
	"github.com/akozyrev/barbershop-booking-service/internal/api/middleware"
	"github.com/akozyrev/barbershop-booking-service/internal/service/schedule"
	"github.com/akozyrev/barbershop-booking-service/internal/service/schedule/models"
)

const (
	msgInvalidTimeOffID = "некорректный ID отгула"
	msgTimeOffNotFound  = "отгул не найден"
	msgAccessDenied     = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/staff/{staffId}/time-off/{timeOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}

	timeOffIDStr := mux.Vars(r)["timeOffId"]
	timeOffID, err := strconv.ParseInt(timeOffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/time-off/{timeOffId} - Invalid time off ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeOffID)
		return
	}

	serviceReq := &models.DeleteTimeOffRequest{
		UserID:    userID,
		TimeOffID: timeOffID,
	}

	if err := h.service.DeleteTimeOff(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, schedule.ErrTimeOffNotFound):
			h.logger.Warn("DELETE /staff/{id}/time-off/{timeOffId} - Time off not found: time_off_id=%d", timeOffID)
			handlers.RespondNotFound(w, msgTimeOffNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /staff/{id}/time-off/{timeOffId} - Access denied: time_off_id=%d, user_id=%d",
				timeOffID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /staff/{id}/time-off/{timeOffId} - Failed to delete time off: time_off_id=%d, error=%v",
				timeOffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id}/time-off/{timeOffId} - Time off deleted successfully: time_off_id=%d", timeOffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
