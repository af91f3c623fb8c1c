package parity

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/text/message"

	"github.com/louisbranch/string-parity/internal/platform/i18n/resources"
)

func mustRenderer(t *testing.T) *Renderer {
	t.Helper()
	printer, err := NewPrinter()
	if err != nil {
		t.Fatalf("new printer: %v", err)
	}
	return NewRenderer(printer, resources.DefaultFileName)
}

func TestRendererLine(t *testing.T) {
	r := mustRenderer(t)
	tests := []struct {
		name string
		d    Discrepancy
		want string
	}{
		{
			name: "missing file",
			d:    MissingFile("values-fr"),
			want: "values-fr: missing strings.xml",
		},
		{
			name: "missing keys",
			d:    MissingKeys("values-fr", []string{"a", "b"}),
			want: "values-fr: missing 2 keys -> a, b",
		},
		{
			name: "extra keys",
			d:    ExtraKeys("values-fr", []string{"c"}),
			want: "values-fr: extra 1 keys -> c",
		},
		{
			name: "placeholder mismatch",
			d:    PlaceholderMismatch("values-es", "greeting", ExtractPlaceholders("Hello %s, you have %d items"), ExtractPlaceholders("Hola %s")),
			want: "values-es: placeholder mismatch for 'greeting' (expected {%s:1, %d:1}, got {%s:1})",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Line(tt.d); got != tt.want {
				t.Fatalf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRendererWriteFailure(t *testing.T) {
	r := mustRenderer(t)
	var buf bytes.Buffer
	report := Report{Discrepancies: []Discrepancy{
		MissingFile("values-it"),
		ExtraKeys("values-ru", []string{"x"}),
	}}

	if err := r.Write(&buf, report); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "String parity check failed:\n- values-it: missing strings.xml\n- values-ru: extra 1 keys -> x\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestRendererWriteSuccess(t *testing.T) {
	r := mustRenderer(t)
	var buf bytes.Buffer
	report := Report{Locales: make([]resources.LocaleFile, 3)}

	if err := r.Write(&buf, report); err != nil {
		t.Fatalf("write: %v", err)
	}
	if want := "String parity check passed for 3 locale folders.\n"; buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestRendererUsesLocalizer(t *testing.T) {
	r := NewRenderer(fakeLocalizer{MsgMissingFile: "%s has no %s"}, "strings.xml")
	if got := r.Line(MissingFile("values-fr")); got != "values-fr has no strings.xml" {
		t.Fatalf("line = %q", got)
	}
}

type fakeLocalizer map[string]string

func (f fakeLocalizer) Sprintf(key message.Reference, args ...any) string {
	asString, _ := key.(string)
	template, ok := f[asString]
	if !ok {
		return asString
	}
	return fmt.Sprintf(template, args...)
}

func TestRendererLineLargeCountsHaveNoGrouping(t *testing.T) {
	r := mustRenderer(t)
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_%04d", i)
	}

	got := r.Line(MissingKeys("values-fr", keys))
	if want := "values-fr: missing 1000 keys -> key_0000, "; !strings.HasPrefix(got, want) {
		t.Fatalf("line = %.60q..., want prefix %q", got, want)
	}

	var buf bytes.Buffer
	if err := r.Write(&buf, Report{Locales: make([]resources.LocaleFile, 1200)}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if want := "String parity check passed for 1200 locale folders.\n"; buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}
