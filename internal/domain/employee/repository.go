package employee

import "context"

// EmployeeRepository is read-mostly: employee records are owned by the
// administrative side and only referenced by scheduling and payroll.
type EmployeeRepository interface {
	// Upsert creates or replaces an employee keyed by ID
	Upsert(ctx context.Context, employee Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByPositionID resolves a badge code entered at the time clock
	GetByPositionID(ctx context.Context, positionID string) (Employee, error)

	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)

	// ListByStore returns employees whose associated store is storeID
	ListByStore(ctx context.Context, storeID string) ([]Employee, error)
}
