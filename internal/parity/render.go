package parity

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for report lines.
const (
	MsgFailedHeader        = "parity.report.failed"
	MsgPassed              = "parity.report.passed"
	MsgMissingFile         = "parity.discrepancy.missing_file"
	MsgMissingKeys         = "parity.discrepancy.missing_keys"
	MsgExtraKeys           = "parity.discrepancy.extra_keys"
	MsgPlaceholderMismatch = "parity.discrepancy.placeholder_mismatch"
)

// Counts are passed preformatted so they print without digit grouping.
var englishMessages = map[string]string{
	MsgFailedHeader:        "String parity check failed:",
	MsgPassed:              "String parity check passed for %s locale folders.",
	MsgMissingFile:         "%s: missing %s",
	MsgMissingKeys:         "%s: missing %s keys -> %s",
	MsgExtraKeys:           "%s: extra %s keys -> %s",
	MsgPlaceholderMismatch: "%s: placeholder mismatch for '%s' (expected %s, got %s)",
}

// Localizer is the minimal message-printer contract required by the renderer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// NewPrinter returns an English printer backed by the report message catalog.
func NewPrinter() (*message.Printer, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, template := range englishMessages {
		if err := builder.SetString(language.English, key, template); err != nil {
			return nil, fmt.Errorf("register message %s: %w", key, err)
		}
	}
	return message.NewPrinter(language.English, message.Catalog(builder)), nil
}

// Renderer turns reports into text lines.
type Renderer struct {
	loc      Localizer
	fileName string
}

// NewRenderer builds a renderer. fileName names the per-locale resource file
// in missing-file lines.
func NewRenderer(loc Localizer, fileName string) *Renderer {
	return &Renderer{loc: loc, fileName: fileName}
}

// Line renders one discrepancy without the list bullet.
func (r *Renderer) Line(d Discrepancy) string {
	switch d.Kind {
	case KindMissingFile:
		return r.loc.Sprintf(MsgMissingFile, d.Locale, r.fileName)
	case KindMissingKeys:
		return r.loc.Sprintf(MsgMissingKeys, d.Locale, strconv.Itoa(len(d.Keys)), strings.Join(d.Keys, ", "))
	case KindExtraKeys:
		return r.loc.Sprintf(MsgExtraKeys, d.Locale, strconv.Itoa(len(d.Keys)), strings.Join(d.Keys, ", "))
	case KindPlaceholderMismatch:
		return r.loc.Sprintf(MsgPlaceholderMismatch, d.Locale, d.Key, d.Expected.String(), d.Actual.String())
	default:
		return fmt.Sprintf("%s: %s", d.Locale, d.Kind)
	}
}

// Write prints the report: a header and one bullet per discrepancy on
// failure, or a single summary line on success.
func (r *Renderer) Write(w io.Writer, report Report) error {
	if report.Passed() {
		_, err := fmt.Fprintln(w, r.loc.Sprintf(MsgPassed, strconv.Itoa(report.LocalesChecked())))
		return err
	}

	var b strings.Builder
	b.WriteString(r.loc.Sprintf(MsgFailedHeader))
	b.WriteByte('\n')
	for _, d := range report.Discrepancies {
		b.WriteString("- ")
		b.WriteString(r.Line(d))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
