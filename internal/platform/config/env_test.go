package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	ResDir string `env:"TEST_RES_DIR" envDefault:"app/src/main/res"`
	Depth  int    `env:"TEST_DEPTH" envDefault:"1"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.ResDir != "app/src/main/res" {
		t.Fatalf("expected default res dir, got %q", cfg.ResDir)
	}
	if cfg.Depth != 1 {
		t.Fatalf("expected default depth 1, got %d", cfg.Depth)
	}
}

func TestParseEnvReadsPrefixedNames(t *testing.T) {
	t.Setenv("STRING_PARITY_TEST_RES_DIR", "prefixed/res")
	t.Setenv("TEST_DEPTH", "9")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.ResDir != "prefixed/res" {
		t.Fatalf("res dir = %q, want prefixed/res", cfg.ResDir)
	}
	if cfg.Depth != 1 {
		t.Fatalf("depth = %d, want default 1 for unprefixed variable", cfg.Depth)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("STRING_PARITY_TEST_DEPTH", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
