package workflows

import (
	"context"
	"fmt"
	"io"

	"github.com/PolarWolf314/campus/internal/audit"
	"github.com/PolarWolf314/campus/internal/configs"
	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/report"
)

// GenerateReportOptions configures the report workflow.
type GenerateReportOptions struct {
	Actor records.Account

	// OutputPath overrides the configured report file.
	OutputPath string
}

// GenerateReportResult contains where the report went and how many rows
// it has.
type GenerateReportResult struct {
	OutputPath string
	Rows       int
}

// GenerateReport writes a CSV of every student with their average grade.
//
// Returns ErrPermissionDenied unless the actor is a professor.
func GenerateReport(ctx context.Context, opts GenerateReportOptions) (*GenerateReportResult, error) {
	if err := requireProfessor(opts.Actor); err != nil {
		return nil, err
	}

	students, err := openStudents()
	if err != nil {
		return nil, err
	}
	all, err := students.LoadAll()
	if err != nil {
		return nil, err
	}

	path := opts.OutputPath
	if path == "" {
		path = configs.Current.ReportPath()
	}
	if err := report.WriteFile(path, func(w io.Writer) error {
		return report.WriteCSV(w, all)
	}); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	Logger.Infof("Wrote %d rows to %s", len(all), path)

	entry := audit.LogAs(opts.Actor.Username, audit.OpGenerateReport)
	entry.Count = len(all)
	entry.OutputPath = path
	audit.Log(entry)

	return &GenerateReportResult{OutputPath: path, Rows: len(all)}, nil
}

// ExportTranscriptOptions configures the transcript workflow.
type ExportTranscriptOptions struct {
	Actor records.Account

	// OutputPath overrides the configured transcript file.
	OutputPath string
}

// ExportTranscriptResult contains the exported record and its location.
type ExportTranscriptResult struct {
	OutputPath string
	Student    records.Student
}

// ExportTranscript writes the actor's own student record to a text file.
//
// Returns the same errors as ViewProfile.
func ExportTranscript(ctx context.Context, opts ExportTranscriptOptions) (*ExportTranscriptResult, error) {
	profile, err := ViewProfile(ctx, ViewProfileOptions{Actor: opts.Actor})
	if err != nil {
		return nil, err
	}

	path := opts.OutputPath
	if path == "" {
		path = configs.Current.TranscriptPath()
	}
	if err := report.WriteFile(path, func(w io.Writer) error {
		return report.WriteTranscript(w, profile.Student)
	}); err != nil {
		return nil, fmt.Errorf("failed to write transcript: %w", err)
	}

	entry := audit.LogAs(opts.Actor.Username, audit.OpExportTranscript)
	entry.StudentID = &profile.Student.ID
	entry.OutputPath = path
	audit.Log(entry)

	return &ExportTranscriptResult{OutputPath: path, Student: profile.Student}, nil
}
