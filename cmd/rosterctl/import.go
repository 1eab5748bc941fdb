package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/internal/repository"
	"github.com/locvowork/employee_roster/internal/service"
	"github.com/locvowork/employee_roster/pkg/simpleexcel"
)

var (
	importRow      int
	importOut      string
	importTemplate string
	importJSON     bool
)

// importCmd loads a spreadsheet into a fresh roster and writes it back out.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a spreadsheet and write the resulting roster",
	Long: `Read employees from an .xlsx or .csv file, normalize them the same
way the API does, and write the roster to --out.

The output format follows the extension of --out (.xlsx or .csv).
With --row only that data row (0-based) is imported.`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		// keep stdout clean for --json
		logger.SetOutput(cmd.ErrOrStderr(), zerolog.WarnLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd.Context(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.Flags().Changed("row"))
	},
}

func init() {
	importCmd.Flags().IntVar(&importRow, "row", 0, "import a single data row (0-based)")
	importCmd.Flags().StringVar(&importOut, "out", "roster.xlsx", "output file (.xlsx or .csv)")
	importCmd.Flags().StringVar(&importTemplate, "template", "", "YAML export layout")
	importCmd.Flags().BoolVar(&importJSON, "json", false, "print the imported employees as JSON")
}

func runImport(ctx context.Context, path string, stdout, stderr io.Writer, singleRow bool) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	table, err := simpleexcel.ReadTable(in, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	rows := table.Records()
	if singleRow {
		row, err := table.Row(importRow)
		if err != nil {
			return err
		}
		rows = []map[string]string{row}
	}

	svc := service.NewEmployeeService(repository.NewEmployeeRepository())
	added := svc.ImportRows(ctx, rows, service.ImportOverrides{})

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(importOut)), ".")
	if format != service.ExportFormatXLSX && format != service.ExportFormatCSV {
		return fmt.Errorf("%w: output %s", simpleexcel.ErrUnsupportedFile, importOut)
	}
	out, err := os.Create(importOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", importOut, err)
	}
	defer out.Close()

	if err := svc.ExportRoster(ctx, out, service.ExportOptions{Format: format, TemplatePath: importTemplate}); err != nil {
		return err
	}

	if importJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(domain.InfoList(added)); err != nil {
			return err
		}
	}
	fmt.Fprintf(stderr, "%d employees written to %s\n", len(added), importOut)
	return nil
}
