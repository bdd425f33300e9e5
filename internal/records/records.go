package records

import "strings"

// Role identifies the capability set of an account.
type Role string

// Role tokens written to the accounts file.
const (
	RoleProfessor Role = "PROF"
	RoleStudent   Role = "STUD"
)

// Canonical maps the long and lowercase spellings of a role to its token.
// Unrecognised roles are returned unchanged.
func (r Role) Canonical() Role {
	switch strings.ToLower(string(r)) {
	case "prof", "professor":
		return RoleProfessor
	case "stud", "student":
		return RoleStudent
	}
	return r
}

// IsProfessor reports whether r grants the professor capability set.
func (r Role) IsProfessor() bool { return r.Canonical() == RoleProfessor }

// IsStudent reports whether r grants the student capability set.
func (r Role) IsStudent() bool { return r.Canonical() == RoleStudent }

func (r Role) String() string { return string(r) }

// Student is one academic record.
type Student struct {
	ID     int       `validate:"gte=0"`
	Name   string    `validate:"required,excludesall=0x7C,max=128"`
	Grades []float64 `validate:"dive,gte=0"`
}

// StudentRef is a soft reference from an account to a Student.ID.
// The zero value is an unset reference.
type StudentRef struct {
	ID    int
	Valid bool
}

// RefTo returns a set reference to student id.
func RefTo(id int) StudentRef {
	return StudentRef{ID: id, Valid: true}
}

// Get returns the referenced id and whether the reference is set.
func (r StudentRef) Get() (int, bool) {
	return r.ID, r.Valid
}

// Account is one set of login credentials.
type Account struct {
	Username string `validate:"required,excludesall=0x7C,max=64"`
	Password string `validate:"required,excludesall=0x7C"`
	Role     Role   `validate:"oneof=PROF STUD"`
	Student  StudentRef
}

// FindStudent returns the index of the first student with id, or -1.
func FindStudent(students []Student, id int) int {
	for i, s := range students {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// FindAccount returns the index of the first account named username, or -1.
func FindAccount(accounts []Account, username string) int {
	for i, a := range accounts {
		if a.Username == username {
			return i
		}
	}
	return -1
}
