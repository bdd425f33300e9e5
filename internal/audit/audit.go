package audit

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/PolarWolf314/campus/internal/configs"
	"github.com/google/uuid"
)

// Operation names.
const (
	OpSignup           = "account.signup"
	OpLogin            = "account.login"
	OpChangePassword   = "account.change_password"
	OpResetPassword    = "account.reset_password"
	OpAddStudent       = "student.add"
	OpRemoveStudent    = "student.remove"
	OpUpdateGrades     = "student.update_grades"
	OpGenerateReport   = "report.generate"
	OpExportTranscript = "report.transcript"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	User      string `json:"user"`    // Username of the acting account.
	Session   string `json:"session"` // Per-process session id.
	Operation string `json:"op"`

	// Optional fields depending on operation.
	StudentID  *int   `json:"student_id,omitempty"`
	TargetUser string `json:"target_user,omitempty"`
	Role       string `json:"role,omitempty"`
	Count      int    `json:"count,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
}

var (
	sessionOnce sync.Once
	sessionID   string
)

// SessionID returns the id shared by all entries written by this process.
func SessionID() string {
	sessionOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// LogAs returns an entry for op performed by user.
func LogAs(user, op string) Entry {
	return Entry{User: user, Operation: op}
}

// Log appends an entry to the audit log. Failures are ignored.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.Session == "" {
		entry.Session = SessionID()
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return configs.Current.AuditPath()
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}
	return entries
}
