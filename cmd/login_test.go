package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogin_ProfessorMenu(t *testing.T) {
	setupTestEnvironment(t)
	signupProfessor(t)

	input := strings.Join([]string{
		"smith", "pw",
		"1", "7", "Ann Lee", "90 80",
		"1", "8", "Bo", "",
		"3", "8", "70,75",
		"4",
		"5", "2", "Lee",
		"2", "8",
		"8",
	}, "\n") + "\n"

	output := mustRunCLI(t, input, "login")
	assertContains(t, output,
		"Welcome", "smith",
		"Professor Menu", "7) Reset Student Password", "8) Exit",
		"Student added", "Grades updated", "70, 75",
		"Removed 1 record(s)",
		"Goodbye!",
	)
}

func TestLogin_StudentMenu(t *testing.T) {
	dir := setupTestEnvironment(t)
	signupProfessor(t)
	signupStudent(t, "alice", "7")
	t.Setenv(EnvPassword, "pw")
	mustRunCLI(t, "", "students", "add", "-u", "smith", "--id", "7", "--name", "Ann", "--grades", "80,92.5")
	unsetEnv(t, EnvPassword)

	input := strings.Join([]string{
		"alice", "pw",
		"1",
		"2",
		"4",
		"3", "new",
		"5",
	}, "\n") + "\n"

	output := mustRunCLI(t, input, "login")
	assertContains(t, output,
		"Student Menu", "5) Exit",
		"Name:", "Ann",
		"Average:", "86.25",
		"Transcript written to",
		"Password changed",
		"Goodbye!",
	)

	data, err := os.ReadFile(filepath.Join(dir, "my_transcript.txt"))
	if err != nil {
		t.Fatalf("Transcript not written: %v", err)
	}
	if string(data) != "ID: 7\nName: Ann\nGrades: 80, 92.5\n" {
		t.Errorf("Unexpected transcript: %q", data)
	}

	output = mustRunCLI(t, "alice\nnew\n5\n", "login")
	assertContains(t, output, "Welcome")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	setupTestEnvironment(t)
	signupProfessor(t)

	output := mustRunCLI(t, "smith\nwrong\n", "login")
	assertContains(t, output, "Invalid username or password")
	if strings.Contains(output, "Professor Menu") {
		t.Error("Menu should not open after a failed login")
	}
}

func TestLogin_InvalidChoiceKeepsMenuOpen(t *testing.T) {
	setupTestEnvironment(t)
	signupProfessor(t)

	output := mustRunCLI(t, "smith\npw\nabc\n42\n8\n", "login")
	assertContains(t, output, "Choose a number from 1 to 8", "Goodbye!")
}

func TestLogin_EndOfInputExits(t *testing.T) {
	setupTestEnvironment(t)
	signupProfessor(t)

	output := mustRunCLI(t, "smith\npw\n", "login")
	assertContains(t, output, "Professor Menu", "Goodbye!")
}

func TestLogin_MenuErrorsDoNotEndSession(t *testing.T) {
	setupTestEnvironment(t)
	signupProfessor(t)

	// Update grades of a missing student, then reset a professor password.
	output := mustRunCLI(t, "smith\npw\n3\n99\n1\n7\nsmith\nx\n8\n", "login")
	assertContains(t, output, "Student not found", "Account not found", "Goodbye!")
}
