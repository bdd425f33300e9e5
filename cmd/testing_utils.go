package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/campus/internal/configs"
)

// setupTestEnvironment points the CLI at a fresh data directory and a config
// path that does not exist yet. It returns the data directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	t.Setenv(configs.EnvConfig, filepath.Join(dir, "config", "config.toml"))
	t.Setenv(configs.EnvDataDir, dir)
	t.Setenv(configs.EnvKey, configs.DefaultKey)
	unsetEnv(t, EnvPassword)

	original := configs.Current
	t.Cleanup(func() {
		configs.Current = original
		RootCmd.SetIn(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		ResetGlobalState()
	})
	return dir
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Failed to unset %s: %v", key, err)
	}
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, value)
		}
	})
}

// runCLI executes the root command with args, feeding stdin to prompts.
// It returns everything written to stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()

	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}

	var out bytes.Buffer
	RootCmd.SetArgs(args)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)

	err := RootCmd.Execute()
	return out.String(), err
}

// mustRunCLI is runCLI that fails the test on a returned error.
func mustRunCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	output, err := runCLI(t, stdin, args...)
	if err != nil {
		t.Fatalf("campus %s failed: %v\nOutput: %s", strings.Join(args, " "), err, output)
	}
	return output
}

// signupProfessor creates the smith/pw professor account.
func signupProfessor(t *testing.T) {
	t.Helper()
	mustRunCLI(t, "pw\n", "signup", "--username", "smith", "--role", "Professor", "--password-stdin")
}

// signupStudent creates a student account linked to id.
func signupStudent(t *testing.T, username, id string) {
	t.Helper()
	mustRunCLI(t, "pw\n", "signup", "--username", username, "--role", "STUD", "--student-id", id, "--password-stdin")
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}
