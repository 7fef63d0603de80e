package get_occupancy_report

import (
	"context"

	"github.com/akozyrev/barbershop-booking-service/internal/usecase/occupancy_report"
)

type OccupancyReportUseCase interface {
	Execute(ctx context.Context, req *occupancy_report.Request) (*occupancy_report.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
