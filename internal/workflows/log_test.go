package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/PolarWolf314/campus/internal/audit"
	kerrors "github.com/PolarWolf314/campus/internal/errors"
)

func seedLog(t *testing.T) {
	t.Helper()
	for _, e := range []audit.Entry{
		{Timestamp: "2024-01-10T09:00:00.000000Z", User: "smith", Operation: audit.OpAddStudent},
		{Timestamp: "2024-01-15T09:00:00.000000Z", User: "alice", Operation: audit.OpChangePassword},
		{Timestamp: "2024-01-20T09:00:00.000000Z", User: "smith", Operation: audit.OpUpdateGrades},
		{Timestamp: "2024-01-25T23:59:00.000000Z", User: "smith", Operation: audit.OpGenerateReport},
	} {
		audit.Log(e)
	}
}

func TestLog_Filters(t *testing.T) {
	useDataDir(t)
	seedLog(t)

	tests := []struct {
		name string
		opts LogOptions
		want []string
	}{
		{"all", LogOptions{}, []string{audit.OpAddStudent, audit.OpChangePassword, audit.OpUpdateGrades, audit.OpGenerateReport}},
		{"user", LogOptions{User: "alice"}, []string{audit.OpChangePassword}},
		{"operations", LogOptions{Operations: "student.add, REPORT.generate"}, []string{audit.OpAddStudent, audit.OpGenerateReport}},
		{"since", LogOptions{Since: "2024-01-15"}, []string{audit.OpChangePassword, audit.OpUpdateGrades, audit.OpGenerateReport}},
		{"until includes whole day", LogOptions{Until: "2024-01-25"}, []string{audit.OpAddStudent, audit.OpChangePassword, audit.OpUpdateGrades, audit.OpGenerateReport}},
		{"limit keeps most recent", LogOptions{Limit: 2}, []string{audit.OpUpdateGrades, audit.OpGenerateReport}},
		{"reverse with limit", LogOptions{Limit: 2, Reverse: true}, []string{audit.OpGenerateReport, audit.OpUpdateGrades}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Log(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("Log failed: %v", err)
			}
			if result.TotalEntriesBeforeFilter != 4 {
				t.Errorf("Expected 4 entries before filtering, got %d", result.TotalEntriesBeforeFilter)
			}
			if len(result.Entries) != len(tt.want) {
				t.Fatalf("Expected %v, got %+v", tt.want, result.Entries)
			}
			for i, op := range tt.want {
				if result.Entries[i].Operation != op {
					t.Errorf("Entry %d: expected %s, got %s", i, op, result.Entries[i].Operation)
				}
			}
		})
	}
}

func TestLog_MissingLog(t *testing.T) {
	useDataDir(t)

	result, err := Log(context.Background(), LogOptions{})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("Expected no entries, got %+v", result.Entries)
	}
}

func TestLog_InvalidDate(t *testing.T) {
	useDataDir(t)
	seedLog(t)

	_, err := Log(context.Background(), LogOptions{Since: "01/15/2024"})
	if !errors.Is(err, kerrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestFormatDetails(t *testing.T) {
	id := 4
	tests := []struct {
		entry audit.Entry
		want  string
	}{
		{audit.Entry{Operation: audit.OpSignup, Role: "STUD", StudentID: &id}, "STUD, student 4"},
		{audit.Entry{Operation: audit.OpResetPassword, TargetUser: "alice"}, "alice"},
		{audit.Entry{Operation: audit.OpRemoveStudent, StudentID: &id, Count: 2}, "student 4, removed 2"},
		{audit.Entry{Operation: audit.OpGenerateReport, Count: 3, OutputPath: "r.csv"}, "3 rows to r.csv"},
		{audit.Entry{Operation: audit.OpLogin}, ""},
	}
	for _, tt := range tests {
		if got := FormatDetails(tt.entry); got != tt.want {
			t.Errorf("FormatDetails(%s) = %q, want %q", tt.entry.Operation, got, tt.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := FormatDateTime("2024-01-10T09:08:07.000000Z"); got != "2024-01-10 09:08:07" {
		t.Errorf("Unexpected format: %q", got)
	}
	if got := FormatDateTime("garbage"); got != "garbage" {
		t.Errorf("Unparseable timestamps should pass through, got %q", got)
	}
}
