package cmd

import (
	"fmt"

	"github.com/PolarWolf314/campus/internal/records"
	"github.com/spf13/pflag"
)

// roleValue is a pflag.Value accepting the role tokens and their long names.
type roleValue records.Role

var _ pflag.Value = (*roleValue)(nil)

func (r *roleValue) String() string { return string(*r) }

func (r *roleValue) Set(s string) error {
	role := records.Role(s).Canonical()
	if !role.IsProfessor() && !role.IsStudent() {
		return fmt.Errorf("must be one of PROF, STUD, Professor or Student")
	}
	*r = roleValue(role)
	return nil
}

func (r *roleValue) Type() string { return "role" }

// Role returns the parsed role.
func (r *roleValue) Role() records.Role { return records.Role(*r) }
