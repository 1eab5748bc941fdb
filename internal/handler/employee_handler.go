package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/service"
	"github.com/locvowork/employee_roster/internal/service/serviceutils"
	"github.com/locvowork/employee_roster/internal/session"
)

type EmployeeHandler struct {
	templatePath string
}

// NewEmployeeHandler creates the roster handler. templatePath optionally names
// a YAML export layout.
func NewEmployeeHandler(templatePath string) *EmployeeHandler {
	return &EmployeeHandler{templatePath: templatePath}
}

// employees returns the roster service of the caller's session.
func employees(c echo.Context) (*service.EmployeeService, error) {
	s := session.FromContext(c)
	if s == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "no session attached to request")
	}
	return s.Employees, nil
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "employee id must be an integer")
	}
	return id, nil
}

func notFoundMessage(id int) string {
	return fmt.Sprintf("Employee with ID %d not found.", id)
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	emp := svc.AddEmployee(c.Request().Context(), service.EmployeeInput{
		ID:            int(req.ID),
		Name:          req.Name,
		Designation:   req.Designation,
		Salary:        float64(req.Salary),
		NIC:           req.NIC,
		Address:       req.Address,
		JoiningDate:   req.JoiningDate,
		NICIssueDate:  req.NICIssueDate,
		NICExpiryDate: req.NICExpiryDate,
		MaritalStatus: req.MaritalStatus,
		DOB:           req.DOB,
	})

	return serviceutils.ResponseSuccess(c, http.StatusCreated, fmt.Sprintf("Employee %s added successfully!", emp.Name), emp.Info())
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}
	return listResponse(c, svc.List(c.Request().Context()), "No employees found.")
}

func (h *EmployeeHandler) ListExitedHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}
	return listResponse(c, svc.ListExited(c.Request().Context()), "No exited employees found.")
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}
	id, err := pathID(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	emp, err := svc.Search(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), notFoundMessage(id), err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee retrieved successfully", emp.Info())
}

func (h *EmployeeHandler) UpdateHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}
	id, err := pathID(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	emp, err := svc.UpdateFromForm(c.Request().Context(), id, float64(req.Salary), req.Designation)
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), notFoundMessage(id), err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, fmt.Sprintf("Employee with ID %d has been updated!", id), emp.Info())
}

// DeleteHandler always reports success; removing an unknown id is a no-op.
func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}
	id, err := pathID(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	removed := svc.Delete(c.Request().Context(), id)
	return serviceutils.ResponseSuccess(c, http.StatusOK, fmt.Sprintf("Employee with ID %d has been deleted.", id), deleteResponse{ID: id, Removed: removed})
}

func (h *EmployeeHandler) PromoteHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}
	id, err := pathID(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	var req promoteRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	salary, err := svc.Promote(c.Request().Context(), id, float64(req.Percent))
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), notFoundMessage(id), err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, fmt.Sprintf("Employee promoted! New salary: %g", salary), promoteResponse{ID: id, NewSalary: salary})
}

func (h *EmployeeHandler) ExitHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}
	id, err := pathID(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	var req exitRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	emp, err := svc.Exit(c.Request().Context(), id, req.ExitDate)
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), notFoundMessage(id), err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, fmt.Sprintf("Employee with ID %d has exited.", id), emp.Info())
}

func (h *EmployeeHandler) FilterHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}

	designation := c.QueryParam("designation")
	found := svc.FilterByDesignation(c.Request().Context(), designation)
	return listResponse(c, found, fmt.Sprintf("No employees found with the designation %s.", designation))
}

// SortHandler sorts by salary; order=desc (or descending) reverses the order.
func (h *EmployeeHandler) SortHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}

	order := strings.ToLower(c.QueryParam("order"))
	descending := order == "desc" || order == "descending"
	return listResponse(c, svc.SortBySalary(c.Request().Context(), descending), "No employees found.")
}

func (h *EmployeeHandler) DesignationsHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Designations listed successfully", svc.Designations())
}

func listResponse(c echo.Context, list []domain.Employee, emptyMessage string) error {
	msg := "Employees listed successfully"
	if len(list) == 0 {
		msg = emptyMessage
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, msg, domain.InfoList(list))
}
