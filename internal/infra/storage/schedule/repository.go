package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/akozyrev/barbershop-booking-service/internal/domain"
	"github.com/akozyrev/barbershop-booking-service/pkg/dbmetrics"
	"github.com/akozyrev/barbershop-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий расписания: правила рабочих часов и отгулы барберов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceWorkingHours заменяет все правила рабочих часов барбера новым набором
// Правила с некорректным временем или вырожденным окном (start >= end) отклоняются
// целиком - частичная запись расписания хуже, чем ошибка
func (r *Repository) ReplaceWorkingHours(ctx context.Context, staffID int64, rules []*domain.WorkingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, rule := range rules {
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 || !rule.IsValid() {
			return fmt.Errorf("%w: day=%d, start=%s, end=%s",
				ErrInvalidRule, rule.DayOfWeek, rule.StartTime, rule.EndTime)
		}
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("working_hours").
		Columns("staff_id", "day_of_week", "start_time", "end_time")
	for _, rule := range rules {
		insertBuilder = insertBuilder.Values(staffID, rule.DayOfWeek, rule.StartTime, rule.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetWorkingHoursByStaff получает все правила рабочих часов барбера
func (r *Repository) GetWorkingHoursByStaff(ctx context.Context, staffID int64) ([]*domain.WorkingHours, error) {
	return r.getWorkingHours(ctx, squirrel.Eq{"staff_id": staffID})
}

// GetWorkingHoursByStaffAndWeekday получает правила барбера на конкретный день недели
// Используется генератором слотов; weekday следует нумерации time.Weekday (0 = воскресенье)
func (r *Repository) GetWorkingHoursByStaffAndWeekday(ctx context.Context, staffID int64, weekday int) ([]*domain.WorkingHours, error) {
	return r.getWorkingHours(ctx, squirrel.And{
		squirrel.Eq{"staff_id": staffID},
		squirrel.Eq{"day_of_week": weekday},
	})
}

func (r *Repository) getWorkingHours(ctx context.Context, pred interface{}) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(pred).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.WorkingHours, 0)

	for rows.Next() {
		var rule domain.WorkingHours
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.StaffID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getWorkingHours - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// CreateTimeOff создает блок отгула барбера
func (r *Repository) CreateTimeOff(ctx context.Context, timeOff *domain.TimeOff) (*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_off").
		Columns("staff_id", "start_at", "end_at", "reason").
		Values(timeOff.StaffID, timeOff.StartAt, timeOff.EndAt, timeOff.Reason).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTimeOff - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&timeOff.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTimeOff - execute insert: %v", ErrExecQuery, err)
	}

	timeOff.CreatedAt = createdAt.Time
	timeOff.UpdatedAt = updatedAt.Time

	return timeOff, nil
}

// GetTimeOffByStaffAndRange получает отгулы барбера, пересекающиеся с периодом [from, to)
func (r *Repository) GetTimeOffByStaffAndRange(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"start_at",
		"end_at",
		"reason",
		"created_at",
		"updated_at",
	).
		From("time_off").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Gt{"end_at": from}).
		Where(squirrel.Lt{"start_at": to}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeOffByStaffAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeOffByStaffAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.TimeOff, 0)

	for rows.Next() {
		var block domain.TimeOff
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.StaffID,
			&block.StartAt,
			&block.EndAt,
			&block.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTimeOffByStaffAndRange - scan row: %v", ErrScanRow, err)
		}

		block.StartAt = block.StartAt.UTC()
		block.EndAt = block.EndAt.UTC()
		block.CreatedAt = createdAt.Time
		block.UpdatedAt = updatedAt.Time

		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTimeOffByStaffAndRange - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// DeleteTimeOff удаляет блок отгула
func (r *Repository) DeleteTimeOff(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_off").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteTimeOff - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteTimeOff - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteTimeOff - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTimeOffNotFound
	}

	return nil
}
