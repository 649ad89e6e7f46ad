package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"), discardLogger())
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load(missing) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".wisprc.yaml")
	content := "no_color: true\ndebug: true\nhistory_file: /tmp/hist\ndisable_cache: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load(path, discardLogger())
	want := Config{NoColor: true, Debug: true, HistoryFile: "/tmp/hist", DisableCache: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedYAMLReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".wisprc.yaml")
	if err := os.WriteFile(path, []byte("no_color: [this is not a bool"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load(path, discardLogger())
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load(malformed) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSchemaViolationReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".wisprc.yaml")
	// unknown_field violates additionalProperties: false
	if err := os.WriteFile(path, []byte("unknown_field: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load(path, discardLogger())
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load(schema violation) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadWrongTypeReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".wisprc.yaml")
	if err := os.WriteFile(path, []byte("no_color: \"not a bool\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load(path, discardLogger())
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load(wrong type) mismatch (-want +got):\n%s", diff)
	}
}
