package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Upsert implements employee.EmployeeService. Badge codes are unique
// across stores since they resolve the employee at any time clock.
func (s *EmployeeServiceImpl) Upsert(ctx context.Context, req employee.UpsertEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	holder, err := s.employeeRepo.GetByPositionID(ctx, req.PositionID)
	switch {
	case err == nil && holder.ID != req.ID:
		return employee.EmployeeResponse{}, employee.ErrPositionIDExists
	case err != nil && !errors.Is(err, employee.ErrEmployeeNotFound):
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check position id: %w", err)
	}

	saved, err := s.employeeRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save employee: %w", err)
	}

	slog.Info("Saved employee", "employee_id", saved.ID, "store_id", saved.AssociatedStore)
	return employee.NewEmployeeResponse(saved), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// ListByStore implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByStore(ctx context.Context, storeID string) ([]employee.EmployeeResponse, error) {
	if !validator.IsValidStoreCode(storeID) {
		return nil, validator.ValidationErrors{{Field: "store_id", Message: "must be a valid store code"}}
	}

	employees, err := s.employeeRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, employee.NewEmployeeResponse(e))
	}
	return resp, nil
}
