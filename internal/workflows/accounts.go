package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/campus/internal/audit"
	kerrors "github.com/PolarWolf314/campus/internal/errors"
	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/report"
)

// SignupOptions configures the signup workflow.
type SignupOptions struct {
	Username string
	Password string

	// Role accepts PROF/STUD as well as "Professor"/"Student".
	Role records.Role

	// StudentID links a student account to its record. Required for the
	// student role and ignored for professors.
	StudentID *int
}

// SignupResult contains the outcome of a signup.
type SignupResult struct {
	Account records.Account

	// DanglingReference is true when StudentID names no existing student.
	// The account is still created.
	DanglingReference bool
}

// Signup creates a new account.
//
// Returns ErrInvalidInput for empty or delimiter-bearing fields, an unknown
// role, or a student signup without a student id.
// Returns ErrUsernameTaken if the username already exists.
func Signup(ctx context.Context, opts SignupOptions) (*SignupResult, error) {
	account := records.Account{
		Username: opts.Username,
		Password: opts.Password,
		Role:     opts.Role.Canonical(),
	}
	if account.Role.IsStudent() {
		if opts.StudentID == nil {
			return nil, fmt.Errorf("%w: student accounts need a student id", kerrors.ErrInvalidInput)
		}
		account.Student = records.RefTo(*opts.StudentID)
	}
	if err := validateInput(validate.Struct(account)); err != nil {
		return nil, err
	}

	service, err := openAuth()
	if err != nil {
		return nil, err
	}

	result := &SignupResult{Account: account}
	if id, ok := account.Student.Get(); ok {
		students, err := openStudents()
		if err != nil {
			return nil, err
		}
		all, err := students.LoadAll()
		if err != nil {
			return nil, err
		}
		if records.FindStudent(all, id) < 0 {
			result.DanglingReference = true
			Logger.Warnf("No student with ID %d yet; account %s will have an empty profile until one is added", id, account.Username)
		}
	}

	if err := service.Register(account); err != nil {
		return nil, err
	}

	entry := audit.LogAs(account.Username, audit.OpSignup)
	entry.Role = account.Role.String()
	if id, ok := account.Student.Get(); ok {
		entry.StudentID = &id
	}
	audit.Log(entry)

	return result, nil
}

// LoginOptions configures the login workflow.
type LoginOptions struct {
	Username string
	Password string
}

// LoginResult contains the authenticated account.
type LoginResult struct {
	Account records.Account
}

// Login authenticates a username and password.
//
// Returns ErrInvalidCredentials for any mismatch. Store errors pass through.
func Login(ctx context.Context, opts LoginOptions) (*LoginResult, error) {
	service, err := openAuth()
	if err != nil {
		return nil, err
	}
	account, err := service.Authenticate(opts.Username, opts.Password)
	if err != nil {
		return nil, err
	}

	audit.Log(audit.LogAs(account.Username, audit.OpLogin))

	return &LoginResult{Account: account}, nil
}

// ChangePasswordOptions configures the change-password workflow.
type ChangePasswordOptions struct {
	Actor       records.Account
	NewPassword string
}

// ChangePassword sets a new password on the actor's own account.
//
// Returns ErrInvalidInput for an empty or delimiter-bearing password.
// Returns ErrAccountNotFound if the account was removed since login.
func ChangePassword(ctx context.Context, opts ChangePasswordOptions) error {
	if err := validatePassword(opts.NewPassword); err != nil {
		return err
	}
	service, err := openAuth()
	if err != nil {
		return err
	}
	if err := service.ChangePassword(opts.Actor.Username, opts.NewPassword); err != nil {
		return err
	}

	audit.Log(audit.LogAs(opts.Actor.Username, audit.OpChangePassword))
	return nil
}

// ResetStudentPasswordOptions configures the reset-password workflow.
type ResetStudentPasswordOptions struct {
	Actor       records.Account
	Username    string
	NewPassword string
}

// ResetStudentPassword sets the password of a student account on behalf
// of a professor.
//
// Returns ErrPermissionDenied unless the actor is a professor.
// Returns ErrAccountNotFound if no student account has the username.
func ResetStudentPassword(ctx context.Context, opts ResetStudentPasswordOptions) error {
	if err := requireProfessor(opts.Actor); err != nil {
		return err
	}
	if err := validatePassword(opts.NewPassword); err != nil {
		return err
	}
	service, err := openAuth()
	if err != nil {
		return err
	}
	if err := service.ResetStudentPassword(opts.Username, opts.NewPassword); err != nil {
		return fmt.Errorf("%w: no student account named %q", err, opts.Username)
	}

	entry := audit.LogAs(opts.Actor.Username, audit.OpResetPassword)
	entry.TargetUser = opts.Username
	audit.Log(entry)
	return nil
}

func validatePassword(password string) error {
	return validateInput(validate.Var(password, "required,excludesall=0x7C"))
}

// ViewProfileOptions configures the profile workflow.
type ViewProfileOptions struct {
	Actor records.Account
}

// ViewProfileResult contains the student record linked to the actor.
type ViewProfileResult struct {
	Student records.Student
}

// ViewProfile returns the student record referenced by a student account.
//
// Returns ErrPermissionDenied for non-student accounts.
// Returns ErrNoStudentReference if the account has no student id.
// Returns ErrStudentNotFound if the referenced record does not exist.
func ViewProfile(ctx context.Context, opts ViewProfileOptions) (*ViewProfileResult, error) {
	id, err := requireStudentRef(opts.Actor)
	if err != nil {
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
	i := records.FindStudent(all, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", kerrors.ErrStudentNotFound, id)
	}
	return &ViewProfileResult{Student: all[i]}, nil
}

// ViewGradesResult contains the actor's grades and their average.
type ViewGradesResult struct {
	Grades  []float64
	Average float64
}

// ViewGrades returns only the grades of the actor's student record.
//
// Returns the same errors as ViewProfile.
func ViewGrades(ctx context.Context, opts ViewProfileOptions) (*ViewGradesResult, error) {
	profile, err := ViewProfile(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &ViewGradesResult{
		Grades:  profile.Student.Grades,
		Average: report.Average(profile.Student.Grades),
	}, nil
}
