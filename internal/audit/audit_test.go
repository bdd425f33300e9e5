package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/campus/internal/configs"
)

// useDataDir points configs.Current at a fresh data directory.
func useDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	original := configs.Current
	cfg := configs.DefaultConfig()
	cfg.Storage.DataDir = dir
	configs.Current = cfg
	t.Cleanup(func() { configs.Current = original })
	return dir
}

func TestLog_CreatesFile(t *testing.T) {
	dir := useDataDir(t)

	Log(LogAs("alice", OpAddStudent))

	if _, err := os.Stat(filepath.Join(dir, "audit.jsonl")); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	dir := useDataDir(t)

	Log(LogAs("alice", OpAddStudent))
	Log(LogAs("alice", OpUpdateGrades))
	Log(LogAs("bob", OpChangePassword))

	data, err := os.ReadFile(filepath.Join(dir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	var last Entry
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("Failed to parse entry: %v", err)
	}
	if last.User != "bob" || last.Operation != OpChangePassword {
		t.Errorf("unexpected last entry: %+v", last)
	}
}

func TestLog_FillsTimestampAndSession(t *testing.T) {
	useDataDir(t)

	id := 7
	entry := LogAs("alice", OpRemoveStudent)
	entry.StudentID = &id
	Log(entry)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	got := entries[0]
	if got.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
	if got.Session != SessionID() {
		t.Errorf("expected session %q, got %q", SessionID(), got.Session)
	}
	if got.StudentID == nil || *got.StudentID != 7 {
		t.Errorf("expected student id 7, got %v", got.StudentID)
	}
}

func TestLog_StudentIDZeroIsKept(t *testing.T) {
	useDataDir(t)

	zero := 0
	entry := LogAs("alice", OpAddStudent)
	entry.StudentID = &zero
	Log(entry)

	entries, _ := ReadEntries()
	if len(entries) != 1 || entries[0].StudentID == nil || *entries[0].StudentID != 0 {
		t.Errorf("expected student id 0 to round trip, got %+v", entries)
	}
}

func TestLog_UnwritableIsIgnored(t *testing.T) {
	dir := useDataDir(t)
	// A directory where the log file should be makes the open fail.
	if err := os.Mkdir(filepath.Join(dir, "audit.jsonl"), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	Log(LogAs("alice", OpAddStudent))
}

func TestReadEntries_MissingLog(t *testing.T) {
	useDataDir(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries, got %v", entries)
	}
}

func TestParseEntries_SkipsMalformed(t *testing.T) {
	data := []byte(`{"ts":"2026-01-01T00:00:00.000000Z","user":"alice","op":"student.add"}
not json
{"ts":"2026-01-02T00:00:00.000000Z","user":"bob","op":"account.signup"}
{"ts":"2026-01-03T00:00:00.000000Z","user":"tr`)

	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].User != "bob" {
		t.Errorf("unexpected entry %+v", entries[1])
	}
}

func TestSessionID_Stable(t *testing.T) {
	if SessionID() == "" {
		t.Fatal("expected non-empty session id")
	}
	if SessionID() != SessionID() {
		t.Error("session id must be stable within a process")
	}
}
