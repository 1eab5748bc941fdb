package domain

import (
	"context"
	"errors"
)

// ErrEmployeeNotFound is returned when no active employee matches an id.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the roster operations. Id lookups scan the
// active records in insertion order and act on the first match unless noted.
type EmployeeRepository interface {
	Add(ctx context.Context, e Employee)
	List(ctx context.Context) []Employee
	ListExited(ctx context.Context) []Employee
	GetByID(ctx context.Context, id int) (Employee, error)
	Update(ctx context.Context, id int, req UpdateRequest) (Employee, error)
	// Delete removes every active record with the id and returns the count.
	Delete(ctx context.Context, id int) int
	Promote(ctx context.Context, id int, percent float64) (float64, error)
	// Exit moves the first match to the exited list and drops every other
	// active record sharing its id.
	Exit(ctx context.Context, id int, exitDate string) (Employee, error)
	FilterByDesignation(ctx context.Context, designation string) []Employee
	SortBySalary(ctx context.Context, descending bool) []Employee
}
