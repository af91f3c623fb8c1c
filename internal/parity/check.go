package parity

import (
	"github.com/louisbranch/string-parity/internal/platform/i18n/resources"
)

// CheckLocale compares one locale table against the baseline. A nil table
// means the locale's resource file does not exist.
func CheckLocale(baseline resources.Table, locale string, table *resources.Table) []Discrepancy {
	if table == nil {
		return []Discrepancy{MissingFile(locale)}
	}

	var out []Discrepancy
	if missing := missingKeys(baseline, *table); len(missing) > 0 {
		out = append(out, MissingKeys(locale, missing))
	}
	if extra := missingKeys(*table, baseline); len(extra) > 0 {
		out = append(out, ExtraKeys(locale, extra))
	}

	for _, key := range baseline.Keys() {
		localized, ok := table.Text(key)
		if !ok {
			continue
		}
		base, _ := baseline.Text(key)
		expected := ExtractPlaceholders(base)
		actual := ExtractPlaceholders(localized)
		if !expected.Equal(actual) {
			out = append(out, PlaceholderMismatch(locale, key, expected, actual))
		}
	}
	return out
}

// missingKeys returns the sorted keys of base that target lacks.
func missingKeys(base resources.Table, target resources.Table) []string {
	out := make([]string, 0)
	for _, key := range base.Keys() {
		if !target.Has(key) {
			out = append(out, key)
		}
	}
	return out
}
