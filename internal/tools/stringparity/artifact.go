package stringparity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/louisbranch/string-parity/internal/parity"
)

type artifact struct {
	BaselinePath   string                `json:"baseline_path"`
	Passed         bool                  `json:"passed"`
	LocalesChecked int                   `json:"locales_checked"`
	Locales        []artifactLocale      `json:"locales"`
	Discrepancies  []artifactDiscrepancy `json:"discrepancies"`
}

type artifactLocale struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
	Path string `json:"path"`
}

type artifactDiscrepancy struct {
	Kind         string                `json:"kind"`
	Locale       string                `json:"locale"`
	Message      string                `json:"message"`
	Keys         []string              `json:"keys,omitempty"`
	Key          string                `json:"key,omitempty"`
	Placeholders *artifactPlaceholders `json:"placeholders,omitempty"`
}

type artifactPlaceholders struct {
	Expected map[string]int `json:"expected"`
	Actual   map[string]int `json:"actual"`
}

func buildArtifact(report parity.Report, renderer *parity.Renderer) artifact {
	out := artifact{
		BaselinePath:   report.BaselinePath,
		Passed:         report.Passed(),
		LocalesChecked: report.LocalesChecked(),
		Locales:        make([]artifactLocale, 0, len(report.Locales)),
		Discrepancies:  make([]artifactDiscrepancy, 0, len(report.Discrepancies)),
	}
	for _, locale := range report.Locales {
		out.Locales = append(out.Locales, artifactLocale{
			Name: locale.Name,
			Tag:  locale.Tag.String(),
			Path: locale.Path,
		})
	}
	for _, d := range report.Discrepancies {
		entry := artifactDiscrepancy{
			Kind:    d.Kind.String(),
			Locale:  d.Locale,
			Message: renderer.Line(d),
			Keys:    d.Keys,
		}
		if d.Kind == parity.KindPlaceholderMismatch {
			entry.Key = d.Key
			entry.Placeholders = &artifactPlaceholders{
				Expected: d.Expected.Counts(),
				Actual:   d.Actual.Counts(),
			}
		}
		out.Discrepancies = append(out.Discrepancies, entry)
	}
	return out
}

func writeJSON(path string, rep artifact) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
