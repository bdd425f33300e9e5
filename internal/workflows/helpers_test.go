package workflows

import (
	"testing"

	"github.com/PolarWolf314/campus/internal/configs"
	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/store"
)

var (
	prof = records.Account{Username: "smith", Password: "pw", Role: records.RoleProfessor}
	stud = records.Account{Username: "alice", Password: "pw", Role: records.RoleStudent, Student: records.RefTo(1)}
)

// useDataDir points configs.Current at a fresh data directory.
func useDataDir(t *testing.T) *configs.Config {
	t.Helper()
	original := configs.Current
	cfg := configs.DefaultConfig()
	cfg.Storage.DataDir = t.TempDir()
	configs.Current = cfg
	t.Cleanup(func() { configs.Current = original })
	return cfg
}

func seedStudents(t *testing.T, students ...records.Student) {
	t.Helper()
	cfg := configs.Current
	if err := store.SaveAllStudents(cfg.StudentsPath(), cfg.Key(), students); err != nil {
		t.Fatalf("seeding students: %v", err)
	}
}

func seedAccounts(t *testing.T, accounts ...records.Account) {
	t.Helper()
	cfg := configs.Current
	if err := store.SaveAllAccounts(cfg.AccountsPath(), cfg.Key(), accounts); err != nil {
		t.Fatalf("seeding accounts: %v", err)
	}
}

func loadStudents(t *testing.T) []records.Student {
	t.Helper()
	cfg := configs.Current
	students, err := store.LoadAllStudents(cfg.StudentsPath(), cfg.Key())
	if err != nil {
		t.Fatalf("loading students: %v", err)
	}
	return students
}

func loadAccounts(t *testing.T) []records.Account {
	t.Helper()
	cfg := configs.Current
	accounts, err := store.LoadAllAccounts(cfg.AccountsPath(), cfg.Key())
	if err != nil {
		t.Fatalf("loading accounts: %v", err)
	}
	return accounts
}

func intPtr(i int) *int { return &i }
