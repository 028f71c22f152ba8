package database

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Column mismatch report

Compares the live tables with the gorm tags of the record types. Run it with
GENERATE_COLUMN_REPORT=true on the server or `portfolioctl schema`.

Example output:
=== COLUMN MISMATCH REPORT ===
--- Table: projects ---
Columns in the database but not in the model:
  - legacy_slug

--- Table: skills ---
All columns are accounted for in the model.

=== SUMMARY ===
Total mismatched columns across all tables: 1
*/

// TableReport lists the differences of one table.
type TableReport struct {
	Table     string
	Exists    bool
	DBOnly    []string // columns the model does not map
	ModelOnly []string // mapped columns missing from the table
}

type SchemaReport struct {
	Tables []TableReport
}

// Mismatches counts the differing columns across all tables.
func (r SchemaReport) Mismatches() int {
	total := 0
	for _, t := range r.Tables {
		total += len(t.DBOnly) + len(t.ModelOnly)
	}
	return total
}

// ColumnReport inspects every content table.
func (d Database) ColumnReport() (SchemaReport, error) {
	var report SchemaReport
	migrator := d.db.Migrator()
	for _, model := range AllModels() {
		stmt := &gorm.Statement{DB: d.db}
		if err := stmt.Parse(model); err != nil {
			return report, fmt.Errorf("parsing model %T: %w", model, err)
		}
		table := TableReport{Table: stmt.Schema.Table}
		table.Exists = migrator.HasTable(model)
		modelFields := getModelFields(model)
		if !table.Exists {
			table.ModelOnly = modelFields
			report.Tables = append(report.Tables, table)
			continue
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return report, fmt.Errorf("error querying columns for table %s: %w", table.Table, err)
		}
		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		table.DBOnly = findColumnMismatches(dbColumns, modelFields)
		table.ModelOnly = findColumnMismatches(modelFields, dbColumns)
		report.Tables = append(report.Tables, table)
	}
	return report, nil
}

// Write prints the report in its text form.
func (r SchemaReport) Write(w io.Writer) {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")
	for _, t := range r.Tables {
		fmt.Fprintf(w, "\n--- Table: %s ---\n", t.Table)
		if !t.Exists {
			fmt.Fprintln(w, "Table does not exist yet (will be created during migration)")
			continue
		}
		if len(t.DBOnly) == 0 && len(t.ModelOnly) == 0 {
			fmt.Fprintln(w, "All columns are accounted for in the model.")
			continue
		}
		if len(t.DBOnly) > 0 {
			fmt.Fprintln(w, "Columns in the database but not in the model:")
			for _, col := range t.DBOnly {
				fmt.Fprintf(w, "  - %s\n", col)
			}
		}
		if len(t.ModelOnly) > 0 {
			fmt.Fprintln(w, "Columns in the model but not in the database:")
			for _, col := range t.ModelOnly {
				fmt.Fprintf(w, "  - %s\n", col)
			}
		}
	}
	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", r.Mismatches())
}

// getModelFields extracts column names from the gorm tags of a record type
func getModelFields(model any) []string {
	var fields []string
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		if columnName := extractColumnNameFromGormTag(field.Tag.Get("gorm")); columnName != "" {
			fields = append(fields, columnName)
		}
	}

	return fields
}

// extractColumnNameFromGormTag extracts the column name from a GORM tag
func extractColumnNameFromGormTag(gormTag string) string {
	settings := schema.ParseTagSetting(gormTag, ";")
	return strings.TrimSpace(settings["COLUMN"])
}

// findColumnMismatches returns the entries of have that are absent from want
func findColumnMismatches(have, want []string) []string {
	wantSet := make(map[string]bool, len(want))
	for _, field := range want {
		wantSet[field] = true
	}

	var mismatches []string
	for _, col := range have {
		if !wantSet[col] {
			mismatches = append(mismatches, col)
		}
	}

	return mismatches
}
