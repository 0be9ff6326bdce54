package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/holiday"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `
	ph.id, ph.name, ph.start_date, ph.end_date, ph.year,
	ph.holiday_type, ph.is_paid, ph.is_active,
	ph.created_at, ph.updated_at
`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID, &h.Name, &h.StartDate, &h.EndDate, &h.Year,
		&h.Type, &h.IsPaid, &h.IsActive,
		&h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (
			id, name, start_date, end_date, year,
			holiday_type, is_paid, is_active,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, TRUE,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		h.Name, h.StartDate, h.EndDate, h.Year, h.Type, h.IsPaid,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to insert holiday: %w", err)
	}
	h.IsActive = true
	return h, nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM public_holidays ph WHERE ph.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}
	return h, nil
}

func (r *holidayRepositoryImpl) ListInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM public_holidays ph
		WHERE ph.is_active = TRUE
		  AND ph.start_date <= $2
		  AND ph.end_date >= $1
		ORDER BY ph.start_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM public_holidays ph
		WHERE ph.is_active = TRUE AND ph.year = $1
		ORDER BY ph.start_date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func (r *holidayRepositoryImpl) FindByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM public_holidays ph
		WHERE ph.is_active = TRUE
		  AND ph.start_date <= $1
		  AND ph.end_date >= $1
		ORDER BY ph.start_date
		LIMIT 1
	`

	h, err := scanHoliday(q.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE public_holidays
		SET name = $1, start_date = $2, end_date = $3, year = $4,
		    holiday_type = $5, is_paid = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`, h.Name, h.StartDate, h.EndDate, h.Year, h.Type, h.IsPaid, h.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to update holiday %s: %w", h.ID, err)
	}
	return nil
}

func (r *holidayRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE public_holidays SET is_active = FALSE, updated_at = NOW() WHERE id = $1 RETURNING id
	`, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to deactivate holiday %s: %w", id, err)
	}
	return nil
}

func collectHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return holidays, nil
}
