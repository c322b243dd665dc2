package checks

import (
	"moderation-diff/core/database"
	"moderation-diff/feature/moderation"

	"gorm.io/gorm"
)

// TableReport lists the missing columns of one table.
type TableReport struct {
	Table   string   `json:"table"`
	Missing []string `json:"missing"`
}

// SchemaReport is the outcome of a database schema check.
type SchemaReport struct {
	// Status is "ok", "mismatch" or "skipped" when no database is connected.
	Status string        `json:"status"`
	Tables []TableReport `json:"tables,omitempty"`
}

// CheckSchema compares the portal tables against the columns the moderation
// repository reads.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return &SchemaReport{Status: "skipped"}, nil
	}

	report := &SchemaReport{Status: "ok"}
	for _, table := range moderation.RequiredColumns() {
		missing, err := database.MissingColumns(db, table.Table, table.Columns)
		if err != nil {
			return nil, err
		}
		if missing == nil {
			missing = []string{}
		}
		if len(missing) > 0 {
			report.Status = "mismatch"
		}
		report.Tables = append(report.Tables, TableReport{Table: table.Table, Missing: missing})
	}
	return report, nil
}
