package syntax

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("could not write config: %v", err)
	}
	return path
}

func TestLoadConfigReplacesOnlyNamedSets(t *testing.T) {
	path := writeConfig(t, "constants:\n  - maybe\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Constants) != 1 || cfg.Constants[0] != "maybe" {
		t.Errorf("Expected constants to be replaced, got %v", cfg.Constants)
	}
	defaults := DefaultConfig()
	if len(cfg.CarefulKeywords) != len(defaults.CarefulKeywords) {
		t.Error("Expected unnamed sets to keep their default words")
	}

	table, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	src := "maybe\n"
	spans := table.Classify([]byte(src), 0, len(src), nil)
	if len(spans) != 1 || spans[0].Category != CategoryKeyword {
		t.Errorf("Expected the new constant to classify as a keyword, got %v", spans)
	}
}

func TestLoadConfigRejectsEmptySet(t *testing.T) {
	path := writeConfig(t, "builtin_keywords: []\n")

	_, err := LoadConfig(path)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected a *ConfigError for an emptied set, got %v", err)
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "constants: [unclosed\n")

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadConfigExtraPatterns(t *testing.T) {
	path := writeConfig(t, `extra_patterns:
  - regexp: "¤+"
    group: 0
    category: attribute
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg.ExtraPatterns) != 1 || cfg.ExtraPatterns[0].Category != "attribute" {
		t.Errorf("Expected one extra pattern, got %v", cfg.ExtraPatterns)
	}
	if _, err := Compile(cfg); err != nil {
		t.Errorf("Compile failed: %v", err)
	}
}
