// Package config loads wisp's optional per-user configuration file,
// ~/.wisprc.yaml. Config is entirely optional: a missing file is
// silently ignored, and one that fails validation is logged and ignored
// rather than treated as fatal, since the interpreter is fully usable
// with defaults alone.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Config holds user-tunable interpreter settings.
type Config struct {
	// NoColor disables ANSI color in the REPL (fatih/color), e.g. for
	// output piped to a file or a CI log.
	NoColor bool `yaml:"no_color" json:"no_color"`
	// Debug turns on WISP_DEBUG-equivalent lexer logging even when the
	// environment variable is unset.
	Debug bool `yaml:"debug" json:"debug"`
	// HistoryFile overrides the REPL's readline history file location.
	HistoryFile string `yaml:"history_file" json:"history_file"`
	// DisableCache stops internal/replcache's parse cache from being
	// loaded from or saved to disk. Parsed forms are still cached in
	// memory for the life of one process.
	DisableCache bool `yaml:"disable_cache" json:"disable_cache"`
}

// Default returns the configuration used when no file is present or
// loading fails.
func Default() Config {
	return Config{}
}

// schemaDoc is the JSON Schema (Draft 2020-12) that a decoded config
// document must satisfy, expressed as a Go map so it can be
// round-tripped through encoding/json before compiling it.
var schemaDoc = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]any{
		"no_color":      map[string]any{"type": "boolean"},
		"debug":         map[string]any{"type": "boolean"},
		"history_file":  map[string]any{"type": "string"},
		"disable_cache": map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

func compileSchema() (*jsonschema.Schema, error) {
	schemaJSON, err := json.Marshal(schemaDoc)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	const url = "wisp://config.json"
	if err := compiler.AddResource(url, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// Path returns the default config file location, ~/.wisprc.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wisprc.yaml"), nil
}

// Load reads and validates the config file at path. A missing file
// returns Default() without logging; any other error (unreadable file,
// malformed YAML, schema violation) is logged via logger at Warn level
// and Default() is returned instead: config problems never abort
// startup.
func Load(path string, logger *slog.Logger) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read config file, using defaults", "path", path, "error", err)
		}
		return Default()
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		logger.Warn("config file is not valid YAML, using defaults", "path", path, "error", err)
		return Default()
	}

	if err := validate(raw); err != nil {
		logger.Warn("config file failed schema validation, using defaults", "path", path, "error", err)
		return Default()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Warn("config file could not be decoded, using defaults", "path", path, "error", err)
		return Default()
	}
	return cfg
}

func validate(raw map[string]any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("internal schema compile error: %w", err)
	}
	normalized, err := normalizeForJSONSchema(raw)
	if err != nil {
		return err
	}
	return schema.Validate(normalized)
}

// normalizeForJSONSchema round-trips a YAML-decoded map[string]any
// through JSON so its key casing and nested-map types match what
// jsonschema/v5 expects (yaml.v3 decodes nested maps as
// map[string]interface{} already, but round-tripping guards against
// any non-string map keys YAML permits that JSON does not).
func normalizeForJSONSchema(raw map[string]any) (any, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("config contains a value JSON Schema cannot validate: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(b, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Example returns a commented starter ~/.wisprc.yaml, for `wisp config init`-
// style tooling.
func Example() string {
	var b strings.Builder
	b.WriteString("# wisp configuration (~/.wisprc.yaml)\n")
	b.WriteString("no_color: false\n")
	b.WriteString("debug: false\n")
	b.WriteString("history_file: \"\"\n")
	b.WriteString("disable_cache: false\n")
	return b.String()
}
