package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func seedStudentAccount(t *testing.T) {
	t.Helper()
	signupProfessor(t)
	signupStudent(t, "alice", "7")
	t.Setenv(EnvPassword, "pw")
	mustRunCLI(t, "", "students", "add", "-u", "smith", "--id", "7", "--name", "Ann", "--grades", "80,90")
}

func TestMe_ProfileAndGrades(t *testing.T) {
	setupTestEnvironment(t)
	seedStudentAccount(t)

	output := mustRunCLI(t, "", "me", "profile", "-u", "alice")
	assertContains(t, output, "ID:", "7", "Name:", "Ann", "80, 90")

	output = mustRunCLI(t, "", "me", "grades", "-u", "alice")
	assertContains(t, output, "Average:", "85")
}

func TestMe_ProfessorHasNoProfile(t *testing.T) {
	setupTestEnvironment(t)
	seedStudentAccount(t)

	output := mustRunCLI(t, "", "me", "profile", "-u", "smith")
	assertContains(t, output, "Permission denied")
}

func TestMe_Transcript(t *testing.T) {
	dir := setupTestEnvironment(t)
	seedStudentAccount(t)
	out := filepath.Join(dir, "exports", "ann.txt")

	output := mustRunCLI(t, "", "me", "transcript", "-u", "alice", "-o", out)
	assertContains(t, output, "Transcript written to")

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Transcript not written: %v", err)
	}
	if string(data) != "ID: 7\nName: Ann\nGrades: 80, 90\n" {
		t.Errorf("Unexpected transcript: %q", data)
	}
}

func TestMe_Passwd(t *testing.T) {
	setupTestEnvironment(t)
	seedStudentAccount(t)

	output := mustRunCLI(t, "fresh\n", "me", "passwd", "-u", "alice")
	assertContains(t, output, "Password changed")

	t.Setenv(EnvPassword, "fresh")
	output = mustRunCLI(t, "", "me", "profile", "-u", "alice")
	assertContains(t, output, "Ann")
}

func TestAccounts_ResetPassword(t *testing.T) {
	setupTestEnvironment(t)
	seedStudentAccount(t)

	output := mustRunCLI(t, "reset\n", "accounts", "reset-password", "-u", "smith", "--target", "alice")
	assertContains(t, output, "Password reset for", "alice")

	t.Setenv(EnvPassword, "reset")
	output = mustRunCLI(t, "", "me", "grades", "-u", "alice")
	assertContains(t, output, "Average:")
}

func TestAccounts_ResetPasswordRejectsProfessorTarget(t *testing.T) {
	setupTestEnvironment(t)
	seedStudentAccount(t)

	output := mustRunCLI(t, "x\n", "accounts", "reset-password", "-u", "smith", "--target", "smith")
	assertContains(t, output, "Account not found")
}

func TestAccounts_ResetPasswordRequiresProfessor(t *testing.T) {
	setupTestEnvironment(t)
	seedStudentAccount(t)

	output := mustRunCLI(t, "x\n", "accounts", "reset-password", "-u", "alice", "--target", "alice")
	assertContains(t, output, "Permission denied")
}
