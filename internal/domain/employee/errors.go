package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPositionIDExists = errors.New("position id already assigned to another employee")
)
