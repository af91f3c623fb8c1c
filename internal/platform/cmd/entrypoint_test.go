package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	ResDir   string `env:"CMD_TEST_RES_DIR" envDefault:"app/src/main/res"`
	FileName string `env:"CMD_TEST_FILE_NAME" envDefault:"strings.xml"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("STRING_PARITY_CMD_TEST_RES_DIR", "env/res")
	t.Setenv("STRING_PARITY_CMD_TEST_FILE_NAME", "env.xml")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.ResDir, "res-dir", cfgRef.ResDir, "res dir")
	fs.StringVar(&cfgRef.FileName, "file-name", cfgRef.FileName, "file name")

	if err := ParseArgs(fs, []string{"-res-dir", "flag/res"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.ResDir != "flag/res" {
		t.Fatalf("expected flag value for res dir, got %q", cfgRef.ResDir)
	}
	if cfgRef.FileName != "env.xml" {
		t.Fatalf("expected env file name, got %q", cfgRef.FileName)
	}
}

func TestParseConfigFromArgsUsesDefaults(t *testing.T) {
	cfgRef := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfgRef, fs, nil); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfgRef.ResDir != "app/src/main/res" {
		t.Fatalf("expected default res dir, got %q", cfgRef.ResDir)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	var cfg *testConfig
	if err := ParseConfig(cfg); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestParseArgsRejectsPositionalArguments(t *testing.T) {
	fs := flag.NewFlagSet("positional", flag.ContinueOnError)
	if err := ParseArgs(fs, []string{"values-fr"}); err == nil {
		t.Fatal("expected positional argument error")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	body := func(context.Context) (int, error) { return 0, nil }
	if _, err := RunWithTelemetry(context.Background(), "", body); err == nil {
		t.Fatal("expected missing service error")
	}
	if _, err := RunWithTelemetry[int](context.Background(), ServiceStringParity, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsBodyResult(t *testing.T) {
	t.Setenv("STRING_PARITY_OTEL_ENDPOINT", "")
	wantErr := errors.New("boom")

	got, err := RunWithTelemetry(context.Background(), ServiceStringParity, func(context.Context) (int, error) {
		return 7, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if got != 7 {
		t.Fatalf("result = %d, want 7", got)
	}
}

func TestRunWithTelemetryFlushesConfiguredProvider(t *testing.T) {
	// Non-routable endpoint; no spans are started so nothing is exported.
	t.Setenv("STRING_PARITY_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("STRING_PARITY_OTEL_ENABLED", "")

	got, err := RunWithTelemetry(context.Background(), ServiceStringParity, func(context.Context) (string, error) {
		return "done", nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != "done" {
		t.Fatalf("result = %q, want done", got)
	}
}
