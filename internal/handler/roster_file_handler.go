package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/service"
	"github.com/locvowork/employee_roster/internal/service/serviceutils"
	"github.com/locvowork/employee_roster/pkg/simpleexcel"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// readUpload parses the multipart "file" field as a spreadsheet table.
func readUpload(c echo.Context) (*simpleexcel.Table, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing upload field \"file\"").SetInternal(err)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	table, err := simpleexcel.ReadTable(src, fh.Filename)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// PreviewImportHandler returns the parsed rows without adding anything.
func (h *EmployeeHandler) PreviewImportHandler(c echo.Context) error {
	table, err := readUpload(c)
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to read spreadsheet", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, fmt.Sprintf("%d rows read", table.Len()), importPreviewResponse{
		Headers: table.Headers,
		Rows:    table.Records(),
	})
}

// ImportHandler adds employees from an uploaded .xlsx or .csv. With a "row"
// form value only that data row (0-based) is imported. The remaining form
// values fill the fields the sheet does not carry.
func (h *EmployeeHandler) ImportHandler(c echo.Context) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}

	table, err := readUpload(c)
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to read spreadsheet", err)
	}

	rows := table.Records()
	if raw := strings.TrimSpace(c.FormValue("row")); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid row index", err)
		}
		row, err := table.Row(idx)
		if err != nil {
			return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Invalid row index", err)
		}
		rows = []map[string]string{row}
	}

	added := svc.ImportRows(c.Request().Context(), rows, service.ImportOverrides{
		Address:       c.FormValue("address"),
		JoiningDate:   c.FormValue("joining_date"),
		NICIssueDate:  c.FormValue("nic_issue_date"),
		NICExpiryDate: c.FormValue("nic_expiry_date"),
		MaritalStatus: c.FormValue("marital_status"),
		DOB:           c.FormValue("dob"),
	})

	msg := fmt.Sprintf("%d employees added successfully!", len(added))
	if len(added) == 1 {
		msg = fmt.Sprintf("Employee %s added successfully!", added[0].Name)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, msg, domain.InfoList(added))
}

func (h *EmployeeHandler) ExportHandler(c echo.Context) error {
	return h.export(c, false, "employees")
}

func (h *EmployeeHandler) ExportExitedHandler(c echo.Context) error {
	return h.export(c, true, "exited_employees")
}

func (h *EmployeeHandler) export(c echo.Context, exitedOnly bool, baseName string) error {
	svc, err := employees(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Session unavailable", err)
	}

	format := strings.ToLower(c.QueryParam("format"))
	if format == "" {
		format = service.ExportFormatXLSX
	}

	var buf bytes.Buffer
	err = svc.ExportRoster(c.Request().Context(), &buf, service.ExportOptions{
		Format:       format,
		ExitedOnly:   exitedOnly,
		TemplatePath: h.templatePath,
	})
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to generate export", err)
	}

	contentType := contentTypeXLSX
	if format == service.ExportFormatCSV {
		contentType = contentTypeCSV
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.%s"`, baseName, format))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
