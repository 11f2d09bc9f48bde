package employee

import "context"

type EmployeeService interface {
	Upsert(ctx context.Context, req UpsertEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	ListByStore(ctx context.Context, storeID string) ([]EmployeeResponse, error)
}
