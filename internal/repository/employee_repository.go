package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/logger"
)

// employeeRepository keeps the active and exited rosters as two ordered
// slices. Records never leave the repository by reference.
type employeeRepository struct {
	mu     sync.RWMutex
	active []domain.Employee
	exited []domain.Employee
}

// NewEmployeeRepository creates an empty in-memory roster.
func NewEmployeeRepository() domain.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) Add(ctx context.Context, e domain.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ExitDate = nil
	r.active = append(r.active, e)
	logger.DebugLog(ctx, "employee %d appended, %d active", e.ID, len(r.active))
}

func (r *employeeRepository) List(ctx context.Context) []domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneEmployees(r.active)
}

func (r *employeeRepository) ListExited(ctx context.Context) []domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneEmployees(r.exited)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Employee{}, notFound(id)
	}
	return r.active[i], nil
}

func (r *employeeRepository) Update(ctx context.Context, id int, req domain.UpdateRequest) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Employee{}, notFound(id)
	}
	if req.Salary != nil {
		r.active[i].Salary = *req.Salary
	}
	if req.Designation != nil {
		r.active[i].Designation = *req.Designation
	}
	logger.DebugLog(ctx, "employee %d updated", id)
	return r.active[i], nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := r.removeAll(id)
	logger.DebugLog(ctx, "employee %d deleted, %d records removed", id, removed)
	return removed
}

func (r *employeeRepository) Promote(ctx context.Context, id int, percent float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return 0, notFound(id)
	}
	e := &r.active[i]
	e.Salary += e.Salary * (percent / 100)
	logger.DebugLog(ctx, "employee %d promoted by %.2f%%, salary now %.2f", id, percent, e.Salary)
	return e.Salary, nil
}

func (r *employeeRepository) Exit(ctx context.Context, id int, exitDate string) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Employee{}, notFound(id)
	}
	e := r.active[i]
	e.ExitDate = &exitDate
	r.exited = append(r.exited, e)
	removed := r.removeAll(id)
	logger.DebugLog(ctx, "employee %d exited on %q, %d active records removed", id, exitDate, removed)
	return detach(e), nil
}

func (r *employeeRepository) FilterByDesignation(ctx context.Context, designation string) []domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Employee
	for _, e := range r.active {
		if e.Designation == designation {
			out = append(out, e)
		}
	}
	return out
}

func (r *employeeRepository) SortBySalary(ctx context.Context, descending bool) []domain.Employee {
	r.mu.RLock()
	out := cloneEmployees(r.active)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Salary > out[j].Salary
		}
		return out[i].Salary < out[j].Salary
	})
	return out
}

func (r *employeeRepository) indexOf(id int) int {
	for i := range r.active {
		if r.active[i].ID == id {
			return i
		}
	}
	return -1
}

// removeAll rebuilds the active slice without id. Callers hold the write lock.
func (r *employeeRepository) removeAll(id int) int {
	kept := make([]domain.Employee, 0, len(r.active))
	for _, e := range r.active {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	removed := len(r.active) - len(kept)
	r.active = kept
	return removed
}

func cloneEmployees(src []domain.Employee) []domain.Employee {
	out := make([]domain.Employee, len(src))
	for i, e := range src {
		out[i] = detach(e)
	}
	return out
}

// detach copies e so that its ExitDate is not shared with the store.
func detach(e domain.Employee) domain.Employee {
	if e.ExitDate != nil {
		d := *e.ExitDate
		e.ExitDate = &d
	}
	return e
}

func notFound(id int) error {
	return fmt.Errorf("employee %d: %w", id, domain.ErrEmployeeNotFound)
}
