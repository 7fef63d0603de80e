package get_occupancy_report

import (
	"errors"
	"net/http"

	"github.com/akozyrev/barbershop-booking-service/internal/api/handlers"
	"github.com/akozyrev/barbershop-booking-service/internal/api/middleware"
	"github.com/akozyrev/barbershop-booking-service/internal/usecase/occupancy_report"
)

const (
	msgInvalidQueryParams = "некорректные параметры запроса"
	msgInvalidPeriod      = "некорректный отчетный период"
	msgStaffNotFound      = "сотрудник не найден"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	useCase OccupancyReportUseCase
	logger  Logger
}

func NewHandler(useCase OccupancyReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/occupancy?from=2025-06-01&to=2025-07-01&staffId=42
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}

	query := r.URL.Query()
	req, err := ToUseCaseRequest(userID, query.Get("staffId"), query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /reports/occupancy - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, occupancy_report.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/occupancy - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, occupancy_report.ErrInvalidInput):
			h.logger.Warn("GET /reports/occupancy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		case errors.Is(err, occupancy_report.ErrStaffNotFound):
			h.logger.Warn("GET /reports/occupancy - Staff not found")
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, occupancy_report.ErrAccessDenied):
			h.logger.Warn("GET /reports/occupancy - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /reports/occupancy - Failed to build report: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/occupancy - Report built successfully: staff_count=%d, user_id=%d",
		len(result.Staff), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
