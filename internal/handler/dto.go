package handler

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// flexFloat accepts JSON numbers, numeric strings and form values. Anything
// unreadable or non-finite binds as 0 instead of failing the request.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	return f.UnmarshalParam(string(bytes.Trim(b, `"`)))
}

func (f *flexFloat) UnmarshalParam(param string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	*f = flexFloat(v)
	return nil
}

// flexInt is the integer counterpart of flexFloat. Fractions are truncated.
type flexInt int

func (i *flexInt) UnmarshalJSON(b []byte) error {
	return i.UnmarshalParam(string(bytes.Trim(b, `"`)))
}

func (i *flexInt) UnmarshalParam(param string) error {
	var f flexFloat
	_ = f.UnmarshalParam(param)
	*i = flexInt(f)
	return nil
}

type createEmployeeRequest struct {
	ID            flexInt   `json:"emp_id" form:"emp_id"`
	Name          string    `json:"name" form:"name"`
	Designation   string    `json:"designation" form:"designation"`
	Salary        flexFloat `json:"salary" form:"salary"`
	NIC           string    `json:"nic" form:"nic"`
	Address       string    `json:"address" form:"address"`
	JoiningDate   string    `json:"joining_date" form:"joining_date"`
	NICIssueDate  string    `json:"nic_issue_date" form:"nic_issue_date"`
	NICExpiryDate string    `json:"nic_expiry_date" form:"nic_expiry_date"`
	MaritalStatus string    `json:"marital_status" form:"marital_status"`
	DOB           string    `json:"dob" form:"dob"`
}

// updateEmployeeRequest mirrors the update form: 0 and "" mean untouched.
type updateEmployeeRequest struct {
	Salary      flexFloat `json:"salary" form:"salary"`
	Designation string    `json:"designation" form:"designation"`
}

type promoteRequest struct {
	Percent flexFloat `json:"percent" form:"percent"`
}

type exitRequest struct {
	ExitDate string `json:"exit_date" form:"exit_date"`
}

type promoteResponse struct {
	ID        int     `json:"emp_id"`
	NewSalary float64 `json:"new_salary"`
}

type deleteResponse struct {
	ID      int `json:"emp_id"`
	Removed int `json:"removed"`
}

type importPreviewResponse struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

type sessionResponse struct {
	ID string `json:"session_id"`
}
