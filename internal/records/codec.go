package records

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/campus/internal/errors"
)

const (
	// FieldDelimiter separates the fields of a record line.
	FieldDelimiter = "|"

	// GradeSeparator separates grades inside the grade field.
	GradeSeparator = ","
)

// Codec converts one record type to and from a single plain-text line.
type Codec[T any] interface {
	Serialize(record T) string
	Deserialize(line string) (T, error)
}

// StudentCodec implements Codec for Student.
type StudentCodec struct{}

// Serialize returns id|name|g1,...,gn.
func (StudentCodec) Serialize(s Student) string {
	grades := make([]string, len(s.Grades))
	for i, g := range s.Grades {
		grades[i] = FormatGrade(g)
	}
	return strconv.Itoa(s.ID) + FieldDelimiter + s.Name + FieldDelimiter + strings.Join(grades, GradeSeparator)
}

// Deserialize parses a line written by Serialize.
func (StudentCodec) Deserialize(line string) (Student, error) {
	parts := strings.Split(line, FieldDelimiter)
	if len(parts) != 3 {
		return Student{}, kerrors.NewFormatError(fmt.Sprintf("student record has %d fields, want 3", len(parts)), nil)
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Student{}, kerrors.NewFormatError("student id is not an integer", err)
	}

	s := Student{ID: id, Name: parts[1]}
	if parts[2] == "" {
		return s, nil
	}

	for _, tok := range strings.Split(parts[2], GradeSeparator) {
		g, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Student{}, kerrors.NewFormatError(fmt.Sprintf("grade %q is not a number", tok), err)
		}
		s.Grades = append(s.Grades, g)
	}
	return s, nil
}

// AccountCodec implements Codec for Account.
type AccountCodec struct{}

// Serialize returns username|password|role|studentId, or the three-field
// short form when the student reference is unset.
func (AccountCodec) Serialize(a Account) string {
	line := a.Username + FieldDelimiter + a.Password + FieldDelimiter + string(a.Role)
	if id, ok := a.Student.Get(); ok {
		line += FieldDelimiter + strconv.Itoa(id)
	}
	return line
}

// Deserialize parses a three- or four-field account line.
func (AccountCodec) Deserialize(line string) (Account, error) {
	parts := strings.Split(line, FieldDelimiter)
	if len(parts) != 3 && len(parts) != 4 {
		return Account{}, kerrors.NewFormatError(fmt.Sprintf("account record has %d fields, want 3 or 4", len(parts)), nil)
	}

	a := Account{
		Username: parts[0],
		Password: parts[1],
		Role:     Role(parts[2]),
	}
	if len(parts) == 4 {
		id, err := strconv.Atoi(parts[3])
		if err != nil {
			return Account{}, kerrors.NewFormatError("student account id is not an integer", err)
		}
		a.Student = RefTo(id)
	}
	return a, nil
}

// FormatGrade returns the shortest decimal form that parses back to g.
func FormatGrade(g float64) string {
	return strconv.FormatFloat(g, 'g', -1, 64)
}
