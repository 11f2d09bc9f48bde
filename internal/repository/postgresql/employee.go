package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, position_id, job_title, rate, base_salary, commission_plan,
			associated_store, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.PositionID, &e.JobTitle, &e.Rate, &e.BaseSalary, &e.CommissionPlan,
		&e.AssociatedStore, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Upsert implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Upsert(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, position_id, job_title, rate, base_salary, commission_plan, associated_store)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			position_id = EXCLUDED.position_id,
			job_title = EXCLUDED.job_title,
			rate = EXCLUDED.rate,
			base_salary = EXCLUDED.base_salary,
			commission_plan = EXCLUDED.commission_plan,
			associated_store = EXCLUDED.associated_store,
			updated_at = NOW()
		RETURNING ` + employeeColumns

	saved, err := scanEmployee(q.QueryRow(ctx, query,
		e.ID, e.Name, e.PositionID, e.JobTitle, e.Rate, e.BaseSalary, e.CommissionPlan, e.AssociatedStore,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return employee.Employee{}, employee.ErrPositionIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to upsert employee %s: %w", e.ID, err)
	}
	return saved, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return e, nil
}

// GetByPositionID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByPositionID(ctx context.Context, positionID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE position_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, positionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by position id: %w", err)
	}
	return e, nil
}

// GetByIDs implements employee.EmployeeRepository. Unknown ids are
// silently absent from the result.
func (r *employeeRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return []employee.Employee{}, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ANY($1) ORDER BY name`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	return collectEmployees(rows)
}

// ListByStore implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByStore(ctx context.Context, storeID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE associated_store = $1 ORDER BY name`

	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query store employees: %w", err)
	}
	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}
