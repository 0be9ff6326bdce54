package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
	lr.is_half_day, lr.half_day_type, lr.total_days,
	lr.reason, lr.document_url,
	lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
	lr.manager_email, lr.manager_notified, lr.notification_sent_at,
	lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
		&req.IsHalfDay, &req.HalfDayType, &req.TotalDays,
		&req.Reason, &req.DocumentURL,
		&req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.ManagerEmail, &req.ManagerNotified, &req.NotificationSentAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type,
			start_date, end_date, is_half_day, half_day_type, total_days,
			reason, document_url, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6, $7,
			$8, $9, $10,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Type,
		request.StartDate, request.EndDate, request.IsHalfDay, request.HalfDayType, request.TotalDays,
		request.Reason, request.DocumentURL, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests lr WHERE lr.id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, err
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND EXTRACT(YEAR FROM lr.start_date) = $2
		ORDER BY lr.start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// FindOverlapping takes FOR UPDATE on matching rows so two concurrent
// overlapping submissions for one employee serialize: the loser re-reads
// after the winner's insert commits.
func (r *leaveRequestRepositoryImpl) FindOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.status IN ('pending', 'approved')
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		  AND ($4 = '' OR lr.id <> $4)
		ORDER BY lr.start_date
		LIMIT 1
		FOR UPDATE
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, employeeID, start, end, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *leaveRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListApprovedEndedBefore(ctx context.Context, cutoff time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.status = 'approved'
		  AND lr.end_date < $1
		ORDER BY lr.employee_id, lr.start_date
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, request leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		request.Status, request.ApprovedBy, request.ApprovedAt, request.RejectionReason, request.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request %s: %w", request.ID, err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE leave_requests SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id
	`, status, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update status for leave request %s: %w", id, err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) MarkManagerNotified(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET manager_notified = TRUE, notification_sent_at = $1, updated_at = NOW()
		WHERE id = $2
	`, at, id)
	return err
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return requests, nil
}
