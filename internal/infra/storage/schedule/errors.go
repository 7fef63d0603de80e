package schedule

import "errors"

var (
	// ErrTimeOffNotFound возвращается, когда блок отгула не найден
	ErrTimeOffNotFound = errors.New("schedule.repository: time off not found")

	// ErrInvalidRule возвращается при попытке сохранить некорректное правило рабочих часов
	ErrInvalidRule = errors.New("schedule.repository: invalid working hours rule")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
