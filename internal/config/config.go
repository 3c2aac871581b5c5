// Package config loads and validates arbor.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "arbor.json"

	// DefaultInspectAddr is the default inspector listen address.
	DefaultInspectAddr = "localhost:6360"

	// DefaultSnapshotPath is the default bbolt database path.
	DefaultSnapshotPath = ".arbor/snapshots.db"
)

// ErrNotFound is returned when no arbor.json can be located.
var ErrNotFound = errors.New("config: arbor.json not found")

// Config represents the complete arbor.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Inspect contains tree inspector settings.
	Inspect InspectConfig `json:"inspect,omitempty"`

	// Snapshot contains snapshot archive settings.
	Snapshot SnapshotConfig `json:"snapshot,omitempty"`

	// Bench contains benchmark settings.
	Bench BenchConfig `json:"bench,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// InspectConfig contains tree inspector settings.
type InspectConfig struct {
	// Addr is the inspector listen address.
	Addr string `json:"addr,omitempty"`
}

// SnapshotConfig contains snapshot archive settings.
type SnapshotConfig struct {
	// Backend selects the archive backend: "none", "bolt" or "s3".
	Backend string `json:"backend,omitempty"`

	// Path is the bbolt database path (backend "bolt").
	Path string `json:"path,omitempty"`

	// Bucket is the S3 bucket name (backend "s3").
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the S3 key prefix (backend "s3").
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region (backend "s3").
	Region string `json:"region,omitempty"`

	// MaxAge bounds snapshot retention (e.g. "24h"). Empty keeps all.
	MaxAge string `json:"maxAge,omitempty"`
}

// BenchConfig contains benchmark settings.
type BenchConfig struct {
	// Passes is the number of render passes to run.
	Passes int `json:"passes,omitempty"`

	// Width is the number of children per element.
	Width int `json:"width,omitempty"`

	// Depth is the nesting depth of the synthetic tree.
	Depth int `json:"depth,omitempty"`
}

// Default creates a Config with default values.
func Default() *Config {
	return &Config{
		Inspect: InspectConfig{
			Addr: DefaultInspectAddr,
		},
		Snapshot: SnapshotConfig{
			Backend: "none",
			Path:    DefaultSnapshotPath,
			Prefix:  "arbor/snapshots/",
		},
		Bench: BenchConfig{
			Passes: 100,
			Width:  10,
			Depth:  4,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for arbor.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrNotFound, filepath.Dir(path))
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config: no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Inspect.Addr == "" {
		c.Inspect.Addr = DefaultInspectAddr
	}
	if c.Snapshot.Backend == "" {
		c.Snapshot.Backend = "none"
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = DefaultSnapshotPath
	}
	if c.Snapshot.Prefix == "" {
		c.Snapshot.Prefix = "arbor/snapshots/"
	}
	if c.Bench.Passes == 0 {
		c.Bench.Passes = 100
	}
	if c.Bench.Width == 0 {
		c.Bench.Width = 10
	}
	if c.Bench.Depth == 0 {
		c.Bench.Depth = 4
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Snapshot.Backend {
	case "none", "bolt", "s3":
	default:
		return fmt.Errorf("config: unknown snapshot backend %q", c.Snapshot.Backend)
	}
	if c.Snapshot.Backend == "s3" && c.Snapshot.Bucket == "" {
		return errors.New("config: snapshot backend s3 requires a bucket")
	}
	if c.Bench.Passes < 0 || c.Bench.Width < 0 || c.Bench.Depth < 0 {
		return errors.New("config: bench values must be non-negative")
	}
	return nil
}

// SnapshotPath returns the absolute path to the bbolt database.
func (c *Config) SnapshotPath() string {
	if filepath.IsAbs(c.Snapshot.Path) {
		return c.Snapshot.Path
	}
	return filepath.Join(c.Dir(), c.Snapshot.Path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing arbor.json, or ErrNotFound.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory,
// walking up to the nearest arbor.json. Falls back to defaults when no
// config file exists.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(root)
}
