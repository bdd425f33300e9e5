package workflows

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/campus/internal/auth"
	"github.com/PolarWolf314/campus/internal/configs"
	kerrors "github.com/PolarWolf314/campus/internal/errors"
	logger "github.com/PolarWolf314/campus/internal/logging"
	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/store"
	"github.com/go-playground/validator/v10"
)

// Logger receives store debug output. The cmd layer replaces it.
var Logger logger.Logger

var validate = validator.New(validator.WithRequiredStructEnabled())

func storeOptions(cfg *configs.Config) []store.Option {
	opts := []store.Option{store.WithLogger(Logger)}
	if cfg.Storage.AtomicWrites {
		opts = append(opts, store.WithAtomicWrites())
	}
	return opts
}

func openStudents() (*store.Students, error) {
	cfg := configs.Current
	return store.NewStudents(cfg.StudentsPath(), cfg.Key(), storeOptions(cfg)...)
}

func openAccounts() (*store.Accounts, error) {
	cfg := configs.Current
	return store.NewAccounts(cfg.AccountsPath(), cfg.Key(), storeOptions(cfg)...)
}

func openAuth() (*auth.Service, error) {
	accounts, err := openAccounts()
	if err != nil {
		return nil, err
	}
	return auth.NewService(accounts), nil
}

func requireProfessor(actor records.Account) error {
	if !actor.Role.IsProfessor() {
		return fmt.Errorf("%w: %s is not a professor", kerrors.ErrPermissionDenied, actor.Username)
	}
	return nil
}

// requireStudentRef returns the student id linked to a student account.
func requireStudentRef(actor records.Account) (int, error) {
	if !actor.Role.IsStudent() {
		return 0, fmt.Errorf("%w: %s is not a student", kerrors.ErrPermissionDenied, actor.Username)
	}
	id, ok := actor.Student.Get()
	if !ok {
		return 0, kerrors.ErrNoStudentReference
	}
	return id, nil
}

// validateInput runs struct or field validation and folds failures into
// ErrInvalidInput.
func validateInput(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", kerrors.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", kerrors.ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	if field == "" {
		field = "value"
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "excludesall":
		return field + " must not contain '" + records.FieldDelimiter + "'"
	case "gte":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of " + fe.Param()
	}
	return field + " failed " + fe.Tag()
}
