package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	ar.id, ar.employee_id, ar.attendance_date,
	ar.clock_in, ar.clock_out,
	ar.clock_in_lat, ar.clock_in_lon, ar.clock_in_address,
	ar.clock_out_lat, ar.clock_out_lon, ar.clock_out_address,
	ar.work_location, ar.work_type, ar.status,
	ar.overtime_type, ar.regular_hours, ar.overtime_hours,
	ar.is_night_overtime, ar.is_holiday_overtime,
	ar.overtime_amount, ar.offset_hours_earned,
	ar.food_allowance_eligible, ar.food_allowance_amount,
	ar.is_late, ar.late_minutes, ar.is_early_departure, ar.early_departure_minutes,
	ar.exceeds_daily_limit, ar.exceeds_overtime_limit,
	ar.created_at, ar.updated_at
`

func scanAttendanceRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut,
		&rec.ClockInLat, &rec.ClockInLon, &rec.ClockInAddress,
		&rec.ClockOutLat, &rec.ClockOutLon, &rec.ClockOutAddress,
		&rec.WorkLocation, &rec.WorkType, &rec.Status,
		&rec.OvertimeType, &rec.RegularHours, &rec.OvertimeHours,
		&rec.IsNightOvertime, &rec.IsHolidayOvertime,
		&rec.OvertimeAmount, &rec.OffsetHoursEarned,
		&rec.FoodAllowanceEligible, &rec.FoodAllowanceAmount,
		&rec.IsLate, &rec.LateMinutes, &rec.IsEarlyDeparture, &rec.EarlyDepartureMinutes,
		&rec.ExceedsDailyLimit, &rec.ExceedsOvertimeLimit,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanAttendanceRecord(q.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendance_records ar WHERE ar.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanAttendanceRecord(q.QueryRow(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records ar
		WHERE ar.employee_id = $1 AND ar.attendance_date = $2
	`, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepositoryImpl) ListForPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records ar
		WHERE ar.employee_id = $1
		  AND ar.attendance_date >= $2
		  AND ar.attendance_date <= $3
		ORDER BY ar.attendance_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}

func (r *attendanceRepositoryImpl) UpdateClassification(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE attendance_records
		SET status = $1, overtime_type = $2,
		    regular_hours = $3, overtime_hours = $4,
		    is_night_overtime = $5, is_holiday_overtime = $6,
		    overtime_amount = $7, offset_hours_earned = $8,
		    food_allowance_eligible = $9, food_allowance_amount = $10,
		    is_late = $11, late_minutes = $12,
		    is_early_departure = $13, early_departure_minutes = $14,
		    exceeds_daily_limit = $15, exceeds_overtime_limit = $16,
		    updated_at = NOW()
		WHERE id = $17
		RETURNING id
	`,
		rec.Status, rec.OvertimeType,
		rec.RegularHours, rec.OvertimeHours,
		rec.IsNightOvertime, rec.IsHolidayOvertime,
		rec.OvertimeAmount, rec.OffsetHoursEarned,
		rec.FoodAllowanceEligible, rec.FoodAllowanceAmount,
		rec.IsLate, rec.LateMinutes,
		rec.IsEarlyDeparture, rec.EarlyDepartureMinutes,
		rec.ExceedsDailyLimit, rec.ExceedsOvertimeLimit,
		rec.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update classification for record %s: %w", rec.ID, err)
	}
	return nil
}
