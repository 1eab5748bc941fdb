package domain

import "strings"

// MaritalStatus is the closed set offered by the add-employee form.
type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "Single"
	MaritalStatusMarried  MaritalStatus = "Married"
	MaritalStatusDivorced MaritalStatus = "Divorced"
)

// ParseMaritalStatus matches s case-insensitively. Anything else falls back
// to Single, the form's preselected option.
func ParseMaritalStatus(s string) MaritalStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "married":
		return MaritalStatusMarried
	case "divorced":
		return MaritalStatusDivorced
	default:
		return MaritalStatusSingle
	}
}

// Employee is a roster record. Date fields hold YYYY-MM-DD or "".
type Employee struct {
	ID            int           `json:"emp_id"`
	Name          string        `json:"name"`
	Designation   string        `json:"designation"`
	Salary        float64       `json:"salary"`
	NIC           string        `json:"nic"`
	Address       string        `json:"address"`
	JoiningDate   string        `json:"joining_date"`
	NICIssueDate  string        `json:"nic_issue_date"`
	NICExpiryDate string        `json:"nic_expiry_date"`
	MaritalStatus MaritalStatus `json:"marital_status"`
	DOB           string        `json:"dob"`
	// ExitDate is nil while the employee is active.
	ExitDate *string `json:"exit_date"`
}

// IsExited reports whether an exit date has been recorded.
func (e Employee) IsExited() bool {
	return e.ExitDate != nil
}

// Info returns the snapshot used for tabular and key-value display.
func (e Employee) Info() map[string]interface{} {
	var exitDate interface{}
	if e.ExitDate != nil {
		exitDate = *e.ExitDate
	}
	return map[string]interface{}{
		"emp_id":          e.ID,
		"name":            e.Name,
		"designation":     e.Designation,
		"salary":          e.Salary,
		"nic":             e.NIC,
		"address":         e.Address,
		"joining_date":    e.JoiningDate,
		"nic_issue_date":  e.NICIssueDate,
		"nic_expiry_date": e.NICExpiryDate,
		"marital_status":  string(e.MaritalStatus),
		"dob":             e.DOB,
		"exit_date":       exitDate,
	}
}

// InfoList maps Info over employees.
func InfoList(employees []Employee) []map[string]interface{} {
	out := make([]map[string]interface{}, len(employees))
	for i := range employees {
		out[i] = employees[i].Info()
	}
	return out
}

// UpdateRequest carries the updatable fields. A nil field is left unchanged;
// a non-nil field overwrites, zero values included.
type UpdateRequest struct {
	Salary      *float64
	Designation *string
}
