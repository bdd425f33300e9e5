package workflows

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/PolarWolf314/campus/internal/audit"
	kerrors "github.com/PolarWolf314/campus/internal/errors"
	"github.com/PolarWolf314/campus/internal/records"
)

func TestAddStudent(t *testing.T) {
	useDataDir(t)
	ctx := context.Background()

	result, err := AddStudent(ctx, AddStudentOptions{
		Actor:   prof,
		Student: records.Student{ID: 7, Name: "Ann", Grades: []float64{90, 85.5}},
	})
	if err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Expected total 1, got %d", result.Total)
	}

	students := loadStudents(t)
	if len(students) != 1 || students[0].Name != "Ann" || len(students[0].Grades) != 2 {
		t.Errorf("Unexpected stored students: %+v", students)
	}

	entries, _ := audit.ReadEntries()
	if len(entries) != 1 || entries[0].Operation != audit.OpAddStudent || *entries[0].StudentID != 7 {
		t.Errorf("Unexpected audit entries: %+v", entries)
	}
}

func TestAddStudent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		actor   records.Account
		student records.Student
		want    error
	}{
		{"student actor", stud, records.Student{ID: 2, Name: "Bo"}, kerrors.ErrPermissionDenied},
		{"duplicate id", prof, records.Student{ID: 1, Name: "Bo"}, kerrors.ErrDuplicateStudentID},
		{"empty name", prof, records.Student{ID: 2}, kerrors.ErrInvalidInput},
		{"delimiter in name", prof, records.Student{ID: 2, Name: "B|o"}, kerrors.ErrInvalidInput},
		{"negative id", prof, records.Student{ID: -1, Name: "Bo"}, kerrors.ErrInvalidInput},
		{"negative grade", prof, records.Student{ID: 2, Name: "Bo", Grades: []float64{-1}}, kerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useDataDir(t)
			seedStudents(t, records.Student{ID: 1, Name: "Ann"})

			_, err := AddStudent(context.Background(), AddStudentOptions{Actor: tt.actor, Student: tt.student})
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if got := loadStudents(t); len(got) != 1 {
				t.Errorf("Collection should be unchanged, got %+v", got)
			}
		})
	}
}

func TestRemoveStudent(t *testing.T) {
	useDataDir(t)
	seedStudents(t,
		records.Student{ID: 1, Name: "Ann"},
		records.Student{ID: 2, Name: "Bo"},
		records.Student{ID: 1, Name: "Ann again"},
	)

	result, err := RemoveStudent(context.Background(), RemoveStudentOptions{Actor: prof, ID: 1})
	if err != nil {
		t.Fatalf("RemoveStudent failed: %v", err)
	}
	if result.Removed != 2 || result.Remaining != 1 {
		t.Errorf("Expected 2 removed and 1 remaining, got %+v", result)
	}
	if got := loadStudents(t); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Unexpected stored students: %+v", got)
	}
}

func TestRemoveStudent_MissingIDIsNotAnError(t *testing.T) {
	cfg := useDataDir(t)
	seedStudents(t, records.Student{ID: 1, Name: "Ann"})
	before, err := os.ReadFile(cfg.StudentsPath())
	if err != nil {
		t.Fatal(err)
	}

	result, err := RemoveStudent(context.Background(), RemoveStudentOptions{Actor: prof, ID: 99})
	if err != nil {
		t.Fatalf("RemoveStudent failed: %v", err)
	}
	if result.Removed != 0 || result.Remaining != 1 {
		t.Errorf("Expected nothing removed, got %+v", result)
	}

	after, err := os.ReadFile(cfg.StudentsPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("File content changed:\nbefore: %q\nafter:  %q", before, after)
	}

	entries, _ := audit.ReadEntries()
	if len(entries) != 0 {
		t.Errorf("No-op removal should not be audited, got %+v", entries)
	}
}

func TestRemoveStudent_RequiresProfessor(t *testing.T) {
	useDataDir(t)
	_, err := RemoveStudent(context.Background(), RemoveStudentOptions{Actor: stud, ID: 1})
	if !errors.Is(err, kerrors.ErrPermissionDenied) {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}

func TestUpdateGrades(t *testing.T) {
	useDataDir(t)
	seedStudents(t,
		records.Student{ID: 1, Name: "Ann", Grades: []float64{50}},
		records.Student{ID: 2, Name: "Bo"},
	)

	result, err := UpdateGrades(context.Background(), UpdateGradesOptions{
		Actor:  prof,
		ID:     2,
		Grades: []float64{70, 80},
	})
	if err != nil {
		t.Fatalf("UpdateGrades failed: %v", err)
	}
	if result.Student.Name != "Bo" {
		t.Errorf("Expected Bo, got %+v", result.Student)
	}

	got := loadStudents(t)
	if len(got[1].Grades) != 2 || got[1].Grades[1] != 80 {
		t.Errorf("Grades not updated: %+v", got[1])
	}
	if len(got[0].Grades) != 1 || got[0].Grades[0] != 50 {
		t.Errorf("Other student changed: %+v", got[0])
	}
}

func TestUpdateGrades_ClearGrades(t *testing.T) {
	useDataDir(t)
	seedStudents(t, records.Student{ID: 1, Name: "Ann", Grades: []float64{50}})

	if _, err := UpdateGrades(context.Background(), UpdateGradesOptions{Actor: prof, ID: 1}); err != nil {
		t.Fatalf("UpdateGrades failed: %v", err)
	}
	if got := loadStudents(t); len(got[0].Grades) != 0 {
		t.Errorf("Expected no grades, got %v", got[0].Grades)
	}
}

func TestUpdateGrades_NotFound(t *testing.T) {
	cfg := useDataDir(t)
	seedStudents(t, records.Student{ID: 1, Name: "Ann"})
	before, _ := os.ReadFile(cfg.StudentsPath())

	_, err := UpdateGrades(context.Background(), UpdateGradesOptions{Actor: prof, ID: 5, Grades: []float64{1}})
	if !errors.Is(err, kerrors.ErrStudentNotFound) {
		t.Fatalf("Expected ErrStudentNotFound, got %v", err)
	}
	after, _ := os.ReadFile(cfg.StudentsPath())
	if string(before) != string(after) {
		t.Errorf("File should not be rewritten")
	}
}

func TestListStudents(t *testing.T) {
	useDataDir(t)

	result, err := ListStudents(context.Background(), ListStudentsOptions{Actor: prof})
	if err != nil {
		t.Fatalf("ListStudents failed: %v", err)
	}
	if len(result.Students) != 0 {
		t.Errorf("Expected empty collection on first run, got %+v", result.Students)
	}

	seedStudents(t, records.Student{ID: 1, Name: "Ann"}, records.Student{ID: 2, Name: "Bo"})
	result, err = ListStudents(context.Background(), ListStudentsOptions{Actor: prof})
	if err != nil {
		t.Fatalf("ListStudents failed: %v", err)
	}
	if len(result.Students) != 2 || result.Students[0].ID != 1 || result.Students[1].ID != 2 {
		t.Errorf("Expected file order, got %+v", result.Students)
	}
}

func TestSearchStudents(t *testing.T) {
	useDataDir(t)
	seedStudents(t,
		records.Student{ID: 1, Name: "Ann Lee"},
		records.Student{ID: 2, Name: "Bo Lee"},
		records.Student{ID: 3, Name: "Cy"},
	)

	tests := []struct {
		name string
		opts SearchStudentsOptions
		want []int
	}{
		{"by id", SearchStudentsOptions{ID: intPtr(2)}, []int{2}},
		{"missing id", SearchStudentsOptions{ID: intPtr(9)}, nil},
		{"by name", SearchStudentsOptions{Name: "Lee"}, []int{1, 2}},
		{"case sensitive", SearchStudentsOptions{Name: "lee"}, nil},
		{"id wins", SearchStudentsOptions{ID: intPtr(3), Name: "Lee"}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Actor = prof
			result, err := SearchStudents(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("SearchStudents failed: %v", err)
			}
			if len(result.Matches) != len(tt.want) {
				t.Fatalf("Expected %v, got %+v", tt.want, result.Matches)
			}
			for i, id := range tt.want {
				if result.Matches[i].ID != id {
					t.Errorf("Match %d: expected id %d, got %d", i, id, result.Matches[i].ID)
				}
			}
		})
	}
}

func TestWorkflows_CorruptFileFailsWithFormatError(t *testing.T) {
	cfg := useDataDir(t)
	if err := os.WriteFile(cfg.StudentsPath(), []byte("zz\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := ListStudents(context.Background(), ListStudentsOptions{Actor: prof})
	if !errors.Is(err, kerrors.ErrFormat) {
		t.Errorf("Expected ErrFormat, got %v", err)
	}
}

func TestAddStudent_AtomicWrites(t *testing.T) {
	cfg := useDataDir(t)
	cfg.Storage.AtomicWrites = true

	_, err := AddStudent(context.Background(), AddStudentOptions{
		Actor:   prof,
		Student: records.Student{ID: 1, Name: "Ann"},
	})
	if err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}
	if got := loadStudents(t); len(got) != 1 {
		t.Errorf("Expected one student, got %+v", got)
	}
}
