package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/campus/internal/audit"
	kerrors "github.com/PolarWolf314/campus/internal/errors"
	"github.com/PolarWolf314/campus/internal/records"
)

// AddStudentOptions configures the add-student workflow.
type AddStudentOptions struct {
	Actor   records.Account
	Student records.Student
}

// AddStudentResult contains the outcome of adding a student.
type AddStudentResult struct {
	Student records.Student

	// Total is the collection size after the add.
	Total int
}

// AddStudent appends a new student and rewrites the student file.
//
// Returns ErrPermissionDenied unless the actor is a professor.
// Returns ErrInvalidInput if the name is empty or contains the delimiter.
// Returns ErrDuplicateStudentID if the id is already in use.
func AddStudent(ctx context.Context, opts AddStudentOptions) (*AddStudentResult, error) {
	if err := requireProfessor(opts.Actor); err != nil {
		return nil, err
	}
	if err := validateInput(validate.Struct(opts.Student)); err != nil {
		return nil, err
	}

	students, err := openStudents()
	if err != nil {
		return nil, err
	}

	result := &AddStudentResult{Student: opts.Student}
	err = students.Update(func(all []records.Student) ([]records.Student, error) {
		if records.FindStudent(all, opts.Student.ID) >= 0 {
			return nil, fmt.Errorf("%w: %d", kerrors.ErrDuplicateStudentID, opts.Student.ID)
		}
		all = append(all, opts.Student)
		result.Total = len(all)
		return all, nil
	})
	if err != nil {
		return nil, err
	}

	entry := audit.LogAs(opts.Actor.Username, audit.OpAddStudent)
	entry.StudentID = &opts.Student.ID
	audit.Log(entry)

	return result, nil
}

// RemoveStudentOptions configures the remove-student workflow.
type RemoveStudentOptions struct {
	Actor records.Account
	ID    int
}

// RemoveStudentResult contains the outcome of removing a student.
type RemoveStudentResult struct {
	// Removed is the number of records dropped; zero when the id was absent.
	Removed int

	Remaining int
}

// RemoveStudent drops every student with the id and rewrites the file.
// A missing id is not an error.
//
// Returns ErrPermissionDenied unless the actor is a professor.
func RemoveStudent(ctx context.Context, opts RemoveStudentOptions) (*RemoveStudentResult, error) {
	if err := requireProfessor(opts.Actor); err != nil {
		return nil, err
	}

	students, err := openStudents()
	if err != nil {
		return nil, err
	}

	result := &RemoveStudentResult{}
	err = students.Update(func(all []records.Student) ([]records.Student, error) {
		kept := all[:0]
		for _, s := range all {
			if s.ID == opts.ID {
				result.Removed++
				continue
			}
			kept = append(kept, s)
		}
		result.Remaining = len(kept)
		return kept, nil
	})
	if err != nil {
		return nil, err
	}

	if result.Removed > 0 {
		entry := audit.LogAs(opts.Actor.Username, audit.OpRemoveStudent)
		entry.StudentID = &opts.ID
		entry.Count = result.Removed
		audit.Log(entry)
	}

	return result, nil
}

// UpdateGradesOptions configures the update-grades workflow.
type UpdateGradesOptions struct {
	Actor  records.Account
	ID     int
	Grades []float64
}

// UpdateGradesResult contains the updated student.
type UpdateGradesResult struct {
	Student records.Student
}

// UpdateGrades replaces the grades of the first student with the id.
//
// Returns ErrPermissionDenied unless the actor is a professor.
// Returns ErrInvalidInput for negative grades.
// Returns ErrStudentNotFound if no student has the id; nothing is written.
func UpdateGrades(ctx context.Context, opts UpdateGradesOptions) (*UpdateGradesResult, error) {
	if err := requireProfessor(opts.Actor); err != nil {
		return nil, err
	}
	if err := validateInput(validate.Var(opts.Grades, "dive,gte=0")); err != nil {
		return nil, err
	}

	students, err := openStudents()
	if err != nil {
		return nil, err
	}

	result := &UpdateGradesResult{}
	err = students.Update(func(all []records.Student) ([]records.Student, error) {
		i := records.FindStudent(all, opts.ID)
		if i < 0 {
			return nil, fmt.Errorf("%w: %d", kerrors.ErrStudentNotFound, opts.ID)
		}
		all[i].Grades = append([]float64(nil), opts.Grades...)
		result.Student = all[i]
		return all, nil
	})
	if err != nil {
		return nil, err
	}

	entry := audit.LogAs(opts.Actor.Username, audit.OpUpdateGrades)
	entry.StudentID = &opts.ID
	entry.Count = len(opts.Grades)
	audit.Log(entry)

	return result, nil
}

// ListStudentsOptions configures the list workflow.
type ListStudentsOptions struct {
	Actor records.Account
}

// ListStudentsResult contains every student in file order.
type ListStudentsResult struct {
	Students []records.Student
}

// ListStudents returns the full student collection.
//
// Returns ErrPermissionDenied unless the actor is a professor.
func ListStudents(ctx context.Context, opts ListStudentsOptions) (*ListStudentsResult, error) {
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
	return &ListStudentsResult{Students: all}, nil
}

// SearchStudentsOptions configures the search workflow. Exactly one of ID
// or Name is used; ID wins when both are set.
type SearchStudentsOptions struct {
	Actor records.Account

	// ID matches the first student with this id.
	ID *int

	// Name matches every student whose name contains it (case-sensitive).
	Name string
}

// SearchStudentsResult contains the matching students in file order.
type SearchStudentsResult struct {
	Matches []records.Student
}

// SearchStudents finds students by id or by name substring.
//
// Returns ErrPermissionDenied unless the actor is a professor.
func SearchStudents(ctx context.Context, opts SearchStudentsOptions) (*SearchStudentsResult, error) {
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

	result := &SearchStudentsResult{}
	if opts.ID != nil {
		if i := records.FindStudent(all, *opts.ID); i >= 0 {
			result.Matches = append(result.Matches, all[i])
		}
		return result, nil
	}

	for _, s := range all {
		if strings.Contains(s.Name, opts.Name) {
			result.Matches = append(result.Matches, s)
		}
	}
	return result, nil
}
