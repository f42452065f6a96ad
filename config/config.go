package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the newsbrief tool.
type Config struct {
	Summary   SummaryConfig   `yaml:"summary"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Input     InputConfig     `yaml:"input"`
	Guardian  GuardianConfig  `yaml:"guardian"`
	Feeds     FeedsConfig     `yaml:"feeds"`
	Email     EmailConfig     `yaml:"email"`
	Archive   ArchiveConfig   `yaml:"archive"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SummaryConfig holds the ranking parameters.
type SummaryConfig struct {
	Sentences     int     `yaml:"sentences"`      // sentences per summary
	Damping       float64 `yaml:"damping"`        // PageRank damping factor
	MaxIter       int     `yaml:"max_iter"`       // power iteration cap
	Tol           float64 `yaml:"tol"`            // L1 convergence threshold
	DropStopwords bool    `yaml:"drop_stopwords"` // exclude stopwords from sentence vectors
}

// EmbeddingConfig holds the word embedding table settings.
type EmbeddingConfig struct {
	Path      string `yaml:"path"`      // GloVe-format text file
	Dimension int    `yaml:"dimension"` // 0 = inferred from the file
}

// InputConfig holds file patterns for batch summarization.
type InputConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// GuardianConfig holds Guardian content API settings.
type GuardianConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Section     string `yaml:"section"`
	PageSize    int    `yaml:"page_size"`
	OrderBy     string `yaml:"order_by"`
	FromLastDay bool   `yaml:"from_last_day"`
	APIKeyEnv   string `yaml:"api_key_env"` // environment variable holding the key
}

// FeedsConfig holds RSS source settings.
type FeedsConfig struct {
	Enabled bool     `yaml:"enabled"`
	URLs    []string `yaml:"urls"`
}

// EmailConfig holds SMTP digest delivery settings. The password comes
// from the environment, never from this file.
type EmailConfig struct {
	Enabled     bool     `yaml:"enabled"`
	SMTPHost    string   `yaml:"smtp_host"`
	SMTPPort    int      `yaml:"smtp_port"`
	FromEnv     string   `yaml:"from_env"`     // env var with the sender address
	PasswordEnv string   `yaml:"password_env"` // env var with the sender password
	Recipients  []string `yaml:"recipients"`
}

// ArchiveConfig holds digest archive settings.
type ArchiveConfig struct {
	Path     string `yaml:"path"`
	Articles int    `yaml:"articles"` // articles per digest
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Summary: SummaryConfig{
			Sentences:     5,
			Damping:       0.85,
			MaxIter:       100,
			Tol:           1e-6,
			DropStopwords: true,
		},
		Embedding: EmbeddingConfig{
			Path:      "glove.6B.100d.txt",
			Dimension: 0,
		},
		Input: InputConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/node_modules/**", "**/.git/**"},
		},
		Guardian: GuardianConfig{
			Enabled:     false,
			Section:     "world",
			PageSize:    10,
			OrderBy:     "newest",
			FromLastDay: true,
			APIKeyEnv:   "GUARDIAN_KEY",
		},
		Feeds: FeedsConfig{
			Enabled: false,
		},
		Email: EmailConfig{
			Enabled:     false,
			SMTPPort:    587,
			FromEnv:     "SENDER_EMAIL",
			PasswordEnv: "SENDER_EMAIL_PASSWORD",
		},
		Archive: ArchiveConfig{
			Path:     ".newsbrief/archive.db",
			Articles: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, returning defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// newsbrief.yaml, then .newsbrief/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "newsbrief.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".newsbrief", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ArchivePath resolves the archive database path relative to dir.
func ArchivePath(dir string, c *Config) string {
	if filepath.IsAbs(c.Archive.Path) {
		return c.Archive.Path
	}
	return filepath.Join(dir, c.Archive.Path)
}

// EnsureArchiveDir ensures the archive directory exists.
func EnsureArchiveDir(dir string, c *Config) error {
	return os.MkdirAll(filepath.Dir(ArchivePath(dir, c)), 0755)
}
