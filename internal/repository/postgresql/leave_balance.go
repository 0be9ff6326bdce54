package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `
	lb.id, lb.employee_id, lb.year, lb.leave_type,
	lb.entitlement, lb.carried_forward, lb.used, lb.pending,
	lb.adjustment, lb.adjustment_reason, lb.offset_days_used,
	lb.created_at, lb.updated_at
`

func scanLeaveBalance(row pgx.Row) (leave.Balance, error) {
	var b leave.Balance
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.Year, &b.Type,
		&b.Entitlement, &b.CarriedForward, &b.Used, &b.Pending,
		&b.Adjustment, &b.AdjustmentReason, &b.OffsetDaysUsed,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID string, leaveType leave.Type, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances lb
		WHERE lb.employee_id = $1 AND lb.leave_type = $2 AND lb.year = $3
		FOR UPDATE
	`

	b, err := scanLeaveBalance(q.QueryRow(ctx, query, employeeID, leaveType, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, err
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances lb
		WHERE lb.employee_id = $1 AND lb.year = $2
		ORDER BY lb.leave_type
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.Balance
	for rows.Next() {
		b, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return balances, nil
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.Balance) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, year, leave_type,
			entitlement, carried_forward, used, pending,
			adjustment, adjustment_reason, offset_days_used,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.EmployeeID, balance.Year, balance.Type,
		balance.Entitlement, balance.CarriedForward, balance.Used, balance.Pending,
		balance.Adjustment, balance.AdjustmentReason, balance.OffsetDaysUsed,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to insert leave balance: %w", err)
	}
	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) Upsert(ctx context.Context, balance leave.Balance) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, year, leave_type,
			entitlement, carried_forward, used, pending,
			adjustment, adjustment_reason, offset_days_used,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, 0, 0,
			0, NULL, 0,
			NOW(), NOW()
		)
		ON CONFLICT (employee_id, year, leave_type) DO UPDATE
		SET entitlement = EXCLUDED.entitlement,
		    carried_forward = EXCLUDED.carried_forward,
		    updated_at = NOW()
		RETURNING ` + upsertBalanceReturning

	b, err := scanLeaveBalance(q.QueryRow(ctx, query,
		balance.EmployeeID, balance.Year, balance.Type,
		balance.Entitlement, balance.CarriedForward,
	))
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to upsert leave balance: %w", err)
	}
	return b, nil
}

const upsertBalanceReturning = `
	id, employee_id, year, leave_type,
	entitlement, carried_forward, used, pending,
	adjustment, adjustment_reason, offset_days_used,
	created_at, updated_at
`

func (r *leaveBalanceRepositoryImpl) AddPending(ctx context.Context, id string, days decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE leave_balances SET pending = pending + $1, updated_at = NOW() WHERE id = $2 RETURNING id
	`, days, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrBalanceNotFound
		}
		return fmt.Errorf("failed to add pending to balance %s: %w", id, err)
	}
	return nil
}

func (r *leaveBalanceRepositoryImpl) MovePendingToUsed(ctx context.Context, id string, days decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE leave_balances
		SET pending = pending - $1, used = used + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`, days, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrBalanceNotFound
		}
		return fmt.Errorf("failed to consume pending on balance %s: %w", id, err)
	}
	return nil
}

func (r *leaveBalanceRepositoryImpl) Adjust(ctx context.Context, id string, delta decimal.Decimal, reason string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE leave_balances
		SET adjustment = adjustment + $1, adjustment_reason = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`, delta, reason, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrBalanceNotFound
		}
		return fmt.Errorf("failed to adjust balance %s: %w", id, err)
	}
	return nil
}
