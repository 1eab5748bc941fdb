package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/logger"
)

// DefaultDesignations is the designation menu offered by the filter view.
var DefaultDesignations = []string{"Manager", "Team Lead", "Developer", "HR"}

// EmployeeInput is an add-employee submission. Date fields accept anything
// domain.NormalizeDate understands.
type EmployeeInput struct {
	ID            int
	Name          string
	Designation   string
	Salary        float64
	NIC           string
	Address       string
	JoiningDate   interface{}
	NICIssueDate  interface{}
	NICExpiryDate interface{}
	MaritalStatus string
	DOB           interface{}
}

// ImportOverrides supplies the fields a spreadsheet row does not carry.
type ImportOverrides struct {
	Address       string
	JoiningDate   string
	NICIssueDate  string
	NICExpiryDate string
	MaritalStatus string
	DOB           string
}

// EmployeeService applies form-level coercions on top of a roster repository.
type EmployeeService struct {
	repo domain.EmployeeRepository
	now  func() time.Time
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(repo domain.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo, now: time.Now}
}

// AddEmployee normalises dates and marital status, then appends the record.
// Duplicate ids are accepted.
func (s *EmployeeService) AddEmployee(ctx context.Context, in EmployeeInput) domain.Employee {
	e := domain.Employee{
		ID:            in.ID,
		Name:          in.Name,
		Designation:   in.Designation,
		Salary:        in.Salary,
		NIC:           in.NIC,
		Address:       in.Address,
		JoiningDate:   domain.NormalizeDate(in.JoiningDate),
		NICIssueDate:  domain.NormalizeDate(in.NICIssueDate),
		NICExpiryDate: domain.NormalizeDate(in.NICExpiryDate),
		MaritalStatus: domain.ParseMaritalStatus(in.MaritalStatus),
		DOB:           domain.NormalizeDate(in.DOB),
	}
	s.repo.Add(ctx, e)
	logger.InfoLog(ctx, "Employee %s (%d) added", e.Name, e.ID)
	return e
}

func (s *EmployeeService) List(ctx context.Context) []domain.Employee {
	return s.repo.List(ctx)
}

func (s *EmployeeService) ListExited(ctx context.Context) []domain.Employee {
	return s.repo.ListExited(ctx)
}

func (s *EmployeeService) Search(ctx context.Context, id int) (domain.Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WarnLog(ctx, "Search failed: %v", err)
	}
	return e, err
}

// Update overwrites the non-nil fields of req.
func (s *EmployeeService) Update(ctx context.Context, id int, req domain.UpdateRequest) (domain.Employee, error) {
	e, err := s.repo.Update(ctx, id, req)
	if err != nil {
		logger.WarnLog(ctx, "Update failed: %v", err)
		return e, err
	}
	logger.InfoLog(ctx, "Employee %d updated", id)
	return e, nil
}

// UpdateFromForm treats a zero salary or a blank designation as "not entered",
// which is what the update form submits for untouched inputs.
func (s *EmployeeService) UpdateFromForm(ctx context.Context, id int, salary float64, designation string) (domain.Employee, error) {
	var req domain.UpdateRequest
	if salary != 0 {
		req.Salary = &salary
	}
	if designation = strings.TrimSpace(designation); designation != "" {
		req.Designation = &designation
	}
	return s.Update(ctx, id, req)
}

// Delete drops every active record with id and reports how many went.
func (s *EmployeeService) Delete(ctx context.Context, id int) int {
	removed := s.repo.Delete(ctx, id)
	logger.InfoLog(ctx, "Employee %d deleted (%d records)", id, removed)
	return removed
}

func (s *EmployeeService) Promote(ctx context.Context, id int, percent float64) (float64, error) {
	salary, err := s.repo.Promote(ctx, id, percent)
	if err != nil {
		logger.WarnLog(ctx, "Promotion failed: %v", err)
		return 0, err
	}
	logger.InfoLog(ctx, "Employee %d promoted, new salary %.2f", id, salary)
	return salary, nil
}

// Exit records exitDate (today when absent or unreadable) and moves the
// employee to the exited roster.
func (s *EmployeeService) Exit(ctx context.Context, id int, exitDate interface{}) (domain.Employee, error) {
	date := domain.NormalizeDate(exitDate)
	if date == "" {
		date = s.now().Format(domain.DateLayout)
	}
	e, err := s.repo.Exit(ctx, id, date)
	if err != nil {
		logger.WarnLog(ctx, "Exit failed: %v", err)
		return e, err
	}
	logger.InfoLog(ctx, "Employee %d exited on %s", id, date)
	return e, nil
}

func (s *EmployeeService) FilterByDesignation(ctx context.Context, designation string) []domain.Employee {
	return s.repo.FilterByDesignation(ctx, designation)
}

func (s *EmployeeService) SortBySalary(ctx context.Context, descending bool) []domain.Employee {
	return s.repo.SortBySalary(ctx, descending)
}

func (s *EmployeeService) Designations() []string {
	out := make([]string, len(DefaultDesignations))
	copy(out, DefaultDesignations)
	return out
}

// ImportRows adds one employee per spreadsheet row, in row order.
func (s *EmployeeService) ImportRows(ctx context.Context, rows []map[string]string, o ImportOverrides) []domain.Employee {
	added := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		added = append(added, s.AddEmployee(ctx, InputFromRow(row, o)))
	}
	logger.InfoLog(ctx, "Imported %d employees", len(added))
	return added
}

// InputFromRow reads emp_id, name, designation, salary and nic from row and
// takes the remaining fields from the row when present, else from o.
// Unreadable numbers become 0.
func InputFromRow(row map[string]string, o ImportOverrides) EmployeeInput {
	pick := func(key, fallback string) string {
		if v := strings.TrimSpace(row[key]); v != "" {
			return v
		}
		return fallback
	}
	return EmployeeInput{
		ID:            int(parseNumber(row["emp_id"])),
		Name:          strings.TrimSpace(row["name"]),
		Designation:   strings.TrimSpace(row["designation"]),
		Salary:        parseNumber(row["salary"]),
		NIC:           strings.TrimSpace(row["nic"]),
		Address:       pick("address", o.Address),
		JoiningDate:   pick("joining_date", o.JoiningDate),
		NICIssueDate:  pick("nic_issue_date", o.NICIssueDate),
		NICExpiryDate: pick("nic_expiry_date", o.NICExpiryDate),
		MaritalStatus: pick("marital_status", o.MaritalStatus),
		DOB:           pick("dob", o.DOB),
	}
}

func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
