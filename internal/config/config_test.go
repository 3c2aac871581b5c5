package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Inspect.Addr != DefaultInspectAddr {
		t.Errorf("Inspect.Addr = %q, want %q", cfg.Inspect.Addr, DefaultInspectAddr)
	}
	if cfg.Snapshot.Backend != "none" {
		t.Errorf("Snapshot.Backend = %q, want none", cfg.Snapshot.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"name": "demo",
		"inspect": {"addr": ":7000"},
		"snapshot": {"backend": "bolt", "path": "snaps.db"},
		"bench": {"passes": 5}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}
	if cfg.Inspect.Addr != ":7000" {
		t.Errorf("Inspect.Addr = %q, want :7000", cfg.Inspect.Addr)
	}
	if cfg.Snapshot.Backend != "bolt" {
		t.Errorf("Snapshot.Backend = %q, want bolt", cfg.Snapshot.Backend)
	}
	// Unset fields keep their defaults.
	if cfg.Bench.Width != 10 {
		t.Errorf("Bench.Width = %d, want default 10", cfg.Bench.Width)
	}
	if want := filepath.Join(dir, "snaps.db"); cfg.SnapshotPath() != want {
		t.Errorf("SnapshotPath() = %q, want %q", cfg.SnapshotPath(), want)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(empty dir) = %v, want ErrNotFound", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)

	if _, err := Load(dir); err == nil {
		t.Error("Load accepted invalid JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bolt backend", func(c *Config) { c.Snapshot.Backend = "bolt" }, false},
		{"s3 with bucket", func(c *Config) {
			c.Snapshot.Backend = "s3"
			c.Snapshot.Bucket = "trees"
		}, false},
		{"s3 without bucket", func(c *Config) { c.Snapshot.Backend = "s3" }, true},
		{"unknown backend", func(c *Config) { c.Snapshot.Backend = "redis" }, true},
		{"negative passes", func(c *Config) { c.Bench.Passes = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundtrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Name = "roundtrip"

	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "roundtrip" {
		t.Errorf("Name = %q, want roundtrip", loaded.Name)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	// Resolve symlinks; t.TempDir may sit under one on some platforms.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}
