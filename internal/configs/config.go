package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultKey is the compiled-in cipher key used when no key is configured.
const DefaultKey = "supersecret"

// Environment variables read by ConfigPath and ApplyEnv.
const (
	EnvConfig  = "CAMPUS_CONFIG"
	EnvKey     = "CAMPUS_KEY"
	EnvDataDir = "CAMPUS_DATA_DIR"
)

type Config struct {
	Storage  Storage  `toml:"storage"`
	Security Security `toml:"security"`
	Output   Output   `toml:"output"`
}

type Storage struct {
	DataDir      string `toml:"data_dir"`
	StudentsFile string `toml:"students_file"`
	AccountsFile string `toml:"accounts_file"`
	AtomicWrites bool   `toml:"atomic_writes"`
}

type Security struct {
	Key string `toml:"key"`
}

type Output struct {
	ReportFile     string `toml:"report_file"`
	TranscriptFile string `toml:"transcript_file"`
}

// DefaultConfig returns the settings of a fresh installation.
func DefaultConfig() *Config {
	return &Config{
		Storage: Storage{
			DataDir:      ".",
			StudentsFile: "students.txt",
			AccountsFile: "login.txt",
		},
		Security: Security{Key: DefaultKey},
		Output: Output{
			ReportFile:     "report.csv",
			TranscriptFile: "my_transcript.txt",
		},
	}
}

// ConfigPath returns $CAMPUS_CONFIG or the per-user default location.
func ConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "campus.toml"
	}
	return filepath.Join(dir, "campus", "config.toml")
}

// LoadConfig reads the file at path over DefaultConfig. A missing file
// yields the defaults. Unknown keys are returned so callers can warn.
func LoadConfig(path string) (*Config, []string, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil, nil
	}

	unknown, err := LoadTOML(path, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", parseError(path, err))
	}
	return cfg, unknown, nil
}

// SaveConfig writes cfg to path.
func SaveConfig(cfg *Config, path string) error {
	if err := SaveTOML(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvKey); ok {
		c.Security.Key = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Storage.DataDir = v
	}
}

// Validate reports settings the store cannot work with.
func (c *Config) Validate() error {
	var problems []string
	if c.Security.Key == "" {
		problems = append(problems, "security.key must not be empty")
	}
	if c.Storage.StudentsFile == "" {
		problems = append(problems, "storage.students_file must not be empty")
	}
	if c.Storage.AccountsFile == "" {
		problems = append(problems, "storage.accounts_file must not be empty")
	}
	if c.Storage.StudentsFile != "" && c.StudentsPath() == c.AccountsPath() {
		problems = append(problems, "storage.students_file and storage.accounts_file must differ")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Key returns the cipher key bytes.
func (c *Config) Key() []byte {
	return []byte(c.Security.Key)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Storage.DataDir, name)
}

// StudentsPath returns the student record file path.
func (c *Config) StudentsPath() string { return c.resolve(c.Storage.StudentsFile) }

// AccountsPath returns the account record file path.
func (c *Config) AccountsPath() string { return c.resolve(c.Storage.AccountsFile) }

// ReportPath returns the CSV report path.
func (c *Config) ReportPath() string { return c.resolve(c.Output.ReportFile) }

// TranscriptPath returns the transcript export path.
func (c *Config) TranscriptPath() string { return c.resolve(c.Output.TranscriptFile) }

// AuditPath returns the audit log path.
func (c *Config) AuditPath() string { return c.resolve("audit.jsonl") }

// MaskedKey returns the key with all but its first character hidden.
func (c *Config) MaskedKey() string {
	k := c.Security.Key
	if len(k) <= 1 {
		return strings.Repeat("*", len(k))
	}
	return k[:1] + strings.Repeat("*", len(k)-1)
}
