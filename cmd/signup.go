package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	signupUsername      string
	signupRole          roleValue
	signupStudentID     int
	signupPasswordStdin bool
)

func init() {
	signupCmd.Flags().StringVarP(&signupUsername, "username", "u", "", "username for the new account")
	signupCmd.Flags().Var(&signupRole, "role", "account role: PROF or STUD (Professor/Student also accepted)")
	signupCmd.Flags().IntVar(&signupStudentID, "student-id", -1, "student record linked to a STUD account")
	signupCmd.Flags().BoolVar(&signupPasswordStdin, "password-stdin", false, "read the password from the first line of stdin")
}

// resetSignupState resets the signup command's global state for testing.
func resetSignupState() {
	signupUsername = ""
	signupRole = ""
	signupStudentID = -1
	signupPasswordStdin = false
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Long: `Creates a professor or student account.

Student accounts are linked to a student record by ID. The record does not
have to exist yet; the profile stays empty until a professor adds it.

Missing values are prompted for. Passwords are never echoed.

Examples:
  campus signup --username smith --role Professor
  campus signup --username alice --role STUD --student-id 7
  echo "$PW" | campus signup -u alice --role STUD --student-id 7 --password-stdin`,
	RunE: runSignup,
}

func runSignup(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting signup command")
	p := newPrompter(cmd)

	var err error
	username := signupUsername
	if username == "" {
		if username, err = p.Line("Username: "); err != nil {
			return err
		}
	}

	role := signupRole.Role()
	if role == "" {
		answer, err := p.Line("Role (PROF/STUD): ")
		if err != nil {
			return err
		}
		role = records.Role(answer).Canonical()
	}

	var studentID *int
	if role.IsStudent() {
		id := signupStudentID
		if id < 0 {
			if id, err = p.Int("Student ID: "); err != nil {
				return handleInputError(cmd, err)
			}
		}
		studentID = &id
	}

	var password string
	if signupPasswordStdin {
		password, err = p.Line("")
	} else {
		password, err = p.Password("Password: ")
	}
	if err != nil {
		return err
	}

	Logger.Debugf("Signing up %s with role %s", username, role)
	result, err := workflows.Signup(context.Background(), workflows.SignupOptions{
		Username:  username,
		Password:  password,
		Role:      role,
		StudentID: studentID,
	})
	if err != nil {
		return handleError(cmd, err)
	}

	lines := []string{ui.Done("Created " + result.Account.Role.String() + " account " + ui.Highlight.Sprint(result.Account.Username))}
	if result.DanglingReference {
		id, _ := result.Account.Student.Get()
		lines = append(lines, ui.Hint(fmt.Sprintf("No student with ID %d exists yet; the profile will be empty until one is added", id)))
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Lines(lines...))
	return nil
}

// handleInputError reports a malformed prompt answer without failing the process.
func handleInputError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Failed(err.Error())))
	return nil
}
