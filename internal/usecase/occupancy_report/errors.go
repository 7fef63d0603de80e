package occupancy_report

import "errors"

var (
	// ErrStaffNotFound возвращается, когда барбер не найден
	ErrStaffNotFound = errors.New("occupancy_report: staff not found")

	// ErrInvalidPeriod возвращается при некорректном отчетном периоде
	ErrInvalidPeriod = errors.New("occupancy_report: invalid report period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("occupancy_report: invalid input data")

	// ErrAccessDenied возвращается при отсутствии прав на отчет
	ErrAccessDenied = errors.New("occupancy_report: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("occupancy_report: internal error")
)
