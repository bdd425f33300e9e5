package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/campus/internal/errors"
	"github.com/PolarWolf314/campus/internal/records"
)

func TestGenerateReport(t *testing.T) {
	cfg := useDataDir(t)
	seedStudents(t,
		records.Student{ID: 1, Name: "Ann", Grades: []float64{80, 90}},
		records.Student{ID: 2, Name: "Bo"},
	)

	result, err := GenerateReport(context.Background(), GenerateReportOptions{Actor: prof})
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}
	if result.OutputPath != cfg.ReportPath() || result.Rows != 2 {
		t.Errorf("Unexpected result: %+v", result)
	}

	data, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "ID,Name,Average\n1,Ann,85\n2,Bo,0\n"
	if string(data) != want {
		t.Errorf("Expected report:\n%s\ngot:\n%s", want, data)
	}
}

func TestGenerateReport_RequiresProfessor(t *testing.T) {
	useDataDir(t)
	_, err := GenerateReport(context.Background(), GenerateReportOptions{Actor: stud})
	if !errors.Is(err, kerrors.ErrPermissionDenied) {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}

func TestExportTranscript(t *testing.T) {
	useDataDir(t)
	seedStudents(t, records.Student{ID: 1, Name: "Ann", Grades: []float64{80, 92.5}})
	out := filepath.Join(t.TempDir(), "out", "t.txt")

	result, err := ExportTranscript(context.Background(), ExportTranscriptOptions{Actor: stud, OutputPath: out})
	if err != nil {
		t.Fatalf("ExportTranscript failed: %v", err)
	}
	if result.OutputPath != out {
		t.Errorf("Expected %s, got %s", out, result.OutputPath)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "ID: 1\nName: Ann\nGrades: 80, 92.5\n"
	if string(data) != want {
		t.Errorf("Expected transcript %q, got %q", want, data)
	}
}

func TestExportTranscript_ProfessorDenied(t *testing.T) {
	useDataDir(t)
	_, err := ExportTranscript(context.Background(), ExportTranscriptOptions{Actor: prof})
	if !errors.Is(err, kerrors.ErrPermissionDenied) {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}
