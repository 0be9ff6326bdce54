package postgresql

import (
	"context"
	"errors"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, full_name, email, department, role, line_manager_id, is_active,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Department,
		&e.Role,
		&e.LineManagerID,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetManager(ctx context.Context, employeeID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = (SELECT line_manager_id FROM employees WHERE id = $1)
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepositoryImpl) Lock(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var lockedID string
	err := q.QueryRow(ctx, `SELECT id FROM employees WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}
