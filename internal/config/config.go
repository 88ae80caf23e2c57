package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Summarize configures the project aggregation command.
type Summarize struct {
	Policy           string   `toml:"policy"`
	ExtraExcludeDirs []string `toml:"extra_exclude_dirs"`
	Clipboard        bool     `toml:"clipboard"`
	Verbose          bool     `toml:"verbose"`
}

// Tree configures the directory-tree command.
type Tree struct {
	ExcludeDirs  []string `toml:"exclude_dirs"`
	ExcludeFiles []string `toml:"exclude_files"`
	OutputFile   string   `toml:"output_file"`
}

// Dedup configures the line-deduplication command.
type Dedup struct {
	IgnoreCase      bool   `toml:"ignore_case"`
	StripWhitespace bool   `toml:"strip_whitespace"`
	OutputSuffix    string `toml:"output_suffix"`
}

// Logging configures diagnostic output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config centralizes every knob the CLI reads.
type Config struct {
	Summarize Summarize `toml:"summarize"`
	Tree      Tree      `toml:"tree"`
	Dedup     Dedup     `toml:"dedup"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/codesum/config.toml")
}

// Load locates, parses, and validates a configuration file. Missing files are
// not an error; defaults apply. The returned bool reports whether a file was
// actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("codesum.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Summarize.Policy = strings.ToLower(strings.TrimSpace(c.Summarize.Policy))
	if c.Summarize.Policy == "" {
		c.Summarize.Policy = defaultPolicy
	}

	trimmed := make([]string, 0, len(c.Summarize.ExtraExcludeDirs))
	for _, name := range c.Summarize.ExtraExcludeDirs {
		if name = strings.TrimSpace(name); name != "" {
			trimmed = append(trimmed, name)
		}
	}
	c.Summarize.ExtraExcludeDirs = trimmed

	if strings.TrimSpace(c.Tree.OutputFile) == "" {
		c.Tree.OutputFile = defaultTreeOutputFile
	}
	if strings.TrimSpace(c.Dedup.OutputSuffix) == "" {
		c.Dedup.OutputSuffix = defaultDedupOutputSuffix
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// CreateSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists: %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if pathValue == "" {
		return "", errors.New("path is empty")
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			return home, nil
		}
		pathValue = filepath.Join(home, pathValue[2:])
	}
	return filepath.Abs(pathValue)
}
