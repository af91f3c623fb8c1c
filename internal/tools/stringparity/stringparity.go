// Package stringparity wires configuration, discovery, the parity checker and
// report output for the string-parity command.
package stringparity

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/string-parity/internal/parity"
	entrypoint "github.com/louisbranch/string-parity/internal/platform/cmd"
	"github.com/louisbranch/string-parity/internal/platform/config"
	"github.com/louisbranch/string-parity/internal/platform/i18n/resources"
)

// Config holds string-parity command configuration.
type Config struct {
	ResDir      string `env:"RES_DIR" envDefault:"app/src/main/res"`
	BaselineDir string `env:"BASELINE_DIR" envDefault:"values"`
	FileName    string `env:"FILE_NAME" envDefault:"strings.xml"`
	JSONOut     string `env:"JSON_OUT"`
}

// ParseConfig loads environment defaults and parses args. The command takes
// no flags or positional arguments.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BaselinePath returns the configured baseline resource file.
func (c Config) BaselinePath() string {
	return resources.BaselinePath(c.ResDir, c.BaselineDir, c.FileName)
}

// Run checks every locale under cfg.ResDir, writes the report to out and
// returns the process exit status. Fatal conditions (missing baseline,
// malformed resource file) are returned as errors and nothing is written.
func Run(ctx context.Context, cfg Config, out io.Writer) (int, error) {
	if out == nil {
		return config.ExitFailure, errors.New("output is required")
	}
	if strings.TrimSpace(cfg.ResDir) == "" {
		return config.ExitFailure, errors.New("resource dir is required")
	}

	locales, err := resources.Discover(cfg.ResDir, cfg.BaselineDir, cfg.FileName)
	if err != nil {
		return config.ExitFailure, err
	}
	report, err := parity.Run(ctx, cfg.BaselinePath(), locales)
	if err != nil {
		return config.ExitFailure, err
	}

	printer, err := parity.NewPrinter()
	if err != nil {
		return config.ExitFailure, err
	}
	renderer := parity.NewRenderer(printer, fileNameOrDefault(cfg.FileName))

	if path := strings.TrimSpace(cfg.JSONOut); path != "" {
		if err := writeJSON(path, buildArtifact(report, renderer)); err != nil {
			return config.ExitFailure, fmt.Errorf("write json report: %w", err)
		}
		log.Printf("wrote %s", path)
	}

	if err := renderer.Write(out, report); err != nil {
		return config.ExitFailure, fmt.Errorf("write report: %w", err)
	}
	if !report.Passed() {
		return config.ExitFailure, nil
	}
	return config.ExitOK, nil
}

func fileNameOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return resources.DefaultFileName
	}
	return name
}
