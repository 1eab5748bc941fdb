package service

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/pkg/simpleexcel"
)

const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"

	// Section ids a YAML export template binds to.
	SectionActiveEmployees = "active_employees"
	SectionExitedEmployees = "exited_employees"
)

// ExportOptions selects what ExportRoster writes.
type ExportOptions struct {
	Format     string
	ExitedOnly bool
	// TemplatePath points at a YAML layout; empty uses the built-in one.
	TemplatePath string
}

var rosterColumns = []simpleexcel.ColumnConfig{
	{FieldName: "emp_id", Header: "Emp ID", Width: 10},
	{FieldName: "name", Header: "Name", Width: 24},
	{FieldName: "designation", Header: "Designation", Width: 18},
	{FieldName: "salary", Header: "Salary", Width: 14, Formatter: "currency"},
	{FieldName: "nic", Header: "NIC", Width: 16},
	{FieldName: "address", Header: "Address", Width: 32},
	{FieldName: "joining_date", Header: "Joining Date", Width: 14},
	{FieldName: "nic_issue_date", Header: "NIC Issue Date", Width: 14},
	{FieldName: "nic_expiry_date", Header: "NIC Expiry Date", Width: 14},
	{FieldName: "marital_status", Header: "Marital Status", Width: 14},
	{FieldName: "dob", Header: "Date of Birth", Width: 14},
}

var exitColumn = simpleexcel.ColumnConfig{FieldName: "exit_date", Header: "Exit Date", Width: 14}

var headerStyle = &simpleexcel.StyleTemplate{
	Font: &simpleexcel.FontTemplate{Bold: true, Color: "#FFFFFF"},
	Fill: &simpleexcel.FillTemplate{Color: "#4F81BD"},
}

// ExportRoster writes the active and exited rosters as a workbook, or the
// first sheet as CSV.
func (s *EmployeeService) ExportRoster(ctx context.Context, w io.Writer, opts ExportOptions) error {
	exporter, err := s.rosterExporter(ctx, opts)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", ExportFormatXLSX:
		err = exporter.ToWriter(w)
	case ExportFormatCSV:
		err = exporter.ToCSV(w)
	default:
		return fmt.Errorf("%w: export format %q", simpleexcel.ErrUnsupportedFile, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("export roster: %w", err)
	}
	logger.InfoLog(ctx, "Roster exported as %s (exited only: %t)", opts.Format, opts.ExitedOnly)
	return nil
}

func (s *EmployeeService) rosterExporter(ctx context.Context, opts ExportOptions) (*simpleexcel.DataExporter, error) {
	active := domain.InfoList(nil)
	if !opts.ExitedOnly {
		active = domain.InfoList(s.repo.List(ctx))
	}
	exited := domain.InfoList(s.repo.ListExited(ctx))

	var exporter *simpleexcel.DataExporter
	if opts.TemplatePath != "" {
		var err error
		exporter, err = simpleexcel.NewDataExporterFromYamlFile(opts.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("load export template: %w", err)
		}
		exporter.
			BindSectionData(SectionActiveEmployees, active).
			BindSectionData(SectionExitedEmployees, exited)
	} else {
		exporter = simpleexcel.NewDataExporter()
		if !opts.ExitedOnly {
			exporter.AddSheet("Employees").AddSection(&simpleexcel.SectionConfig{
				ID:          SectionActiveEmployees,
				Title:       "Employee List",
				ShowHeader:  true,
				HeaderStyle: headerStyle,
				Data:        active,
				Columns:     rosterColumns,
			})
		}
		exitedColumns := append(append([]simpleexcel.ColumnConfig{}, rosterColumns...), exitColumn)
		exporter.AddSheet("Exited Employees").AddSection(&simpleexcel.SectionConfig{
			ID:          SectionExitedEmployees,
			Title:       "Exited Employees",
			ShowHeader:  true,
			HeaderStyle: headerStyle,
			Locked:      true,
			Data:        exited,
			Columns:     exitedColumns,
		})
	}

	exporter.RegisterFormatter("currency", func(v interface{}) interface{} {
		if val, ok := v.(float64); ok {
			return math.Round(val*100) / 100
		}
		return v
	})
	return exporter, nil
}
