package simpleexcel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Constants & Types
// =============================================================================

const (
	SectionDirectionHorizontal = "horizontal"
	SectionDirectionVertical   = "vertical"
)

// Formatter rewrites a cell value before it is written.
type Formatter func(interface{}) interface{}

// DataExporter is the main entry point for exporting data.
type DataExporter struct {
	template *ReportTemplate
	// data holds data bound to specific section IDs (for YAML flow)
	data map[string]interface{}
	// sheets holds manually added sheets (for programmatic flow)
	sheets     []*SheetBuilder
	formatters map[string]Formatter
}

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines a section of data in a sheet.
type SectionConfig struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Data        interface{}    `yaml:"-"` // Data is bound at runtime
	Locked      bool           `yaml:"locked"`
	ShowHeader  bool           `yaml:"show_header"`
	Direction   string         `yaml:"direction"` // "horizontal" or "vertical"
	Position    string         `yaml:"position"`  // e.g., "A1"
	TitleStyle  *StyleTemplate `yaml:"title_style"`
	HeaderStyle *StyleTemplate `yaml:"header_style"`
	Columns     []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a section.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"` // Struct field name or map key
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
	Formatter string  `yaml:"formatter"` // name passed to RegisterFormatter
}

// StyleTemplate defines basic styling.
type StyleTemplate struct {
	Font   *FontTemplate `yaml:"font"`
	Fill   *FillTemplate `yaml:"fill"`
	Locked *bool         `yaml:"locked"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"` // Hex color
}

type FillTemplate struct {
	Color string `yaml:"color"` // Hex color
}

// =============================================================================
// Constructors
// =============================================================================

func NewDataExporter() *DataExporter {
	return &DataExporter{
		data:       make(map[string]interface{}),
		sheets:     []*SheetBuilder{},
		formatters: make(map[string]Formatter),
	}
}

// NewDataExporterFromYamlConfig builds an exporter from an inline YAML template.
func NewDataExporterFromYamlConfig(config string) (*DataExporter, error) {
	var tmpl ReportTemplate
	if err := yaml.Unmarshal([]byte(config), &tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	e := NewDataExporter()
	e.template = &tmpl
	return e, nil
}

func NewDataExporterFromYamlFile(path string) (*DataExporter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open yaml file: %w", err)
	}
	return NewDataExporterFromYamlConfig(string(data))
}

// =============================================================================
// Fluent API
// =============================================================================

// AddSheet starts a new sheet builder.
func (e *DataExporter) AddSheet(name string) *SheetBuilder {
	sb := &SheetBuilder{
		name:     name,
		sections: []*SectionConfig{},
	}
	e.sheets = append(e.sheets, sb)
	return sb
}

// BindSectionData binds data to a section ID (for YAML-based export).
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	e.data[id] = data
	return e
}

// RegisterFormatter makes fn available to columns by name.
func (e *DataExporter) RegisterFormatter(name string, fn Formatter) *DataExporter {
	e.formatters[name] = fn
	return e
}

// BuildExcel renders every programmatic and templated sheet into a new workbook.
// The caller owns the returned file and must close it.
func (e *DataExporter) BuildExcel() (*excelize.File, error) {
	f := excelize.NewFile()

	// 1. Process Programmatic Sheets
	for i, sb := range e.sheets {
		if err := e.ensureSheet(f, sb.name, i == 0); err != nil {
			f.Close()
			return nil, err
		}
		if err := e.renderSections(f, sb.name, sb.sections); err != nil {
			f.Close()
			return nil, err
		}
	}

	// 2. Process YAML Template Sheets
	if e.template != nil {
		for i, sheetTmpl := range e.template.Sheets {
			if err := e.ensureSheet(f, sheetTmpl.Name, len(e.sheets) == 0 && i == 0); err != nil {
				f.Close()
				return nil, err
			}

			sections := make([]*SectionConfig, len(sheetTmpl.Sections))
			for j := range sheetTmpl.Sections {
				sec := sheetTmpl.Sections[j]
				if data, ok := e.data[sec.ID]; ok {
					sec.Data = data
				}
				sections[j] = &sec
			}

			if err := e.renderSections(f, sheetTmpl.Name, sections); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}

// ensureSheet renames the default sheet for the first sheet and creates the
// rest on demand.
func (e *DataExporter) ensureSheet(f *excelize.File, name string, first bool) error {
	if first {
		return f.SetSheetName("Sheet1", name)
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	if idx == -1 {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
	}
	return nil
}

// ToBytes exports the Excel file to an in-memory byte slice.
func (e *DataExporter) ToBytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := e.ToWriter(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToWriter writes the Excel file to the provided io.Writer.
func (e *DataExporter) ToWriter(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

// ToCSV exports the first sheet as CSV to the provided io.Writer.
func (e *DataExporter) ToCSV(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets found")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return fmt.Errorf("failed to get rows: %w", err)
	}
	defer rows.Close()

	csvWriter := csv.NewWriter(w)
	for rows.Next() {
		row, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("error reading row: %w", err)
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	if err := rows.Error(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// =============================================================================
// SheetBuilder
// =============================================================================

type SheetBuilder struct {
	name     string
	sections []*SectionConfig
}

func (sb *SheetBuilder) AddSection(config *SectionConfig) *SheetBuilder {
	sb.sections = append(sb.sections, config)
	return sb
}

// =============================================================================
// Rendering Logic
// =============================================================================

func (e *DataExporter) renderSections(f *excelize.File, sheet string, sections []*SectionConfig) error {
	maxRow := 1            // Next available row for Vertical sections (1-based)
	nextColHorizontal := 1 // Next available col for Horizontal sections (1-based)

	hasLockedSections := false

	for _, sec := range sections {
		if sec.Locked {
			hasLockedSections = true
		}

		startCol, startRow := 1, maxRow
		if sec.Direction == SectionDirectionHorizontal {
			startCol, startRow = nextColHorizontal, 1
		}
		if sec.Position != "" {
			if c, r, err := excelize.CellNameToCoordinates(sec.Position); err == nil {
				startCol, startRow = c, r
			}
		}

		// Every cell carries the section's lock flag so that unlocked sections
		// stay editable once the sheet is protected.
		withLock := func(base *StyleTemplate) *StyleTemplate {
			s := &StyleTemplate{}
			if base != nil {
				*s = *base
			}
			locked := sec.Locked
			s.Locked = &locked
			return s
		}

		currentRow := startRow

		if sec.Title != "" {
			cell, _ := excelize.CoordinatesToCellName(startCol, currentRow)
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return err
			}
			styleID, err := createStyle(f, withLock(sec.TitleStyle))
			if err != nil {
				return err
			}

			endCell := cell
			if len(sec.Columns) > 1 {
				endCell, _ = excelize.CoordinatesToCellName(startCol+len(sec.Columns)-1, currentRow)
				if err := f.MergeCell(sheet, cell, endCell); err != nil {
					return err
				}
			}
			if err := f.SetCellStyle(sheet, cell, endCell, styleID); err != nil {
				return err
			}
			currentRow++
		}

		if sec.ShowHeader {
			styleID, err := createStyle(f, withLock(sec.HeaderStyle))
			if err != nil {
				return err
			}
			for i, col := range sec.Columns {
				cell, _ := excelize.CoordinatesToCellName(startCol+i, currentRow)
				if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
					return err
				}
				if col.Width > 0 {
					colName, _ := excelize.ColumnNumberToName(startCol + i)
					if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
						return err
					}
				}
			}
			currentRow++
		}

		dataStyleID, err := createStyle(f, withLock(nil))
		if err != nil {
			return err
		}
		dataVal := reflect.ValueOf(sec.Data)
		if dataVal.Kind() == reflect.Slice {
			for i := 0; i < dataVal.Len(); i++ {
				item := dataVal.Index(i)
				for j, col := range sec.Columns {
					val := extractValue(item, col.FieldName)
					if fn, ok := e.formatters[col.Formatter]; ok {
						val = fn(val)
					}
					cell, _ := excelize.CoordinatesToCellName(startCol+j, currentRow)
					if err := f.SetCellValue(sheet, cell, val); err != nil {
						return err
					}
					if err := f.SetCellStyle(sheet, cell, cell, dataStyleID); err != nil {
						return err
					}
				}
				currentRow++
			}
		}

		// leave one blank row between stacked sections
		if currentRow+1 > maxRow {
			maxRow = currentRow + 1
		}
		nextColHorizontal = startCol + len(sec.Columns)
	}

	// Locked=true only takes effect on a protected sheet.
	if hasLockedSections {
		return f.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
			SelectLockedCells:   true,
			SelectUnlockedCells: true,
		})
	}

	return nil
}

// extractValue reads fieldName from a struct (by field name) or a string-keyed
// map (by key). Missing fields and nil values come back as nil.
func extractValue(item reflect.Value, fieldName string) interface{} {
	for item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
		if item.IsNil() {
			return nil
		}
		item = item.Elem()
	}

	var v reflect.Value
	switch item.Kind() {
	case reflect.Struct:
		v = item.FieldByName(fieldName)
	case reflect.Map:
		if item.Type().Key().Kind() != reflect.String {
			return nil
		}
		v = item.MapIndex(reflect.ValueOf(fieldName).Convert(item.Type().Key()))
	}
	if !v.IsValid() {
		return nil
	}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}

func createStyle(f *excelize.File, tmpl *StyleTemplate) (int, error) {
	style := &excelize.Style{}
	if tmpl.Font != nil {
		style.Font = &excelize.Font{
			Bold:  tmpl.Font.Bold,
			Color: strings.TrimPrefix(tmpl.Font.Color, "#"),
		}
	}
	if tmpl.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{strings.TrimPrefix(tmpl.Fill.Color, "#")},
			Pattern: 1,
		}
	}
	if tmpl.Locked != nil {
		style.Protection = &excelize.Protection{
			Locked: *tmpl.Locked,
		}
	}
	return f.NewStyle(style)
}
