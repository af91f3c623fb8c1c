package parity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/string-parity/internal/platform/i18n/resources"
)

const tracerName = "github.com/louisbranch/string-parity/internal/parity"

// ErrBaselineNotFound reports that the baseline resource file does not exist.
var ErrBaselineNotFound = errors.New("baseline file not found")

// Report is the outcome of one run.
type Report struct {
	BaselinePath  string
	Locales       []resources.LocaleFile
	Discrepancies []Discrepancy
}

// Passed reports whether no discrepancies were found.
func (r Report) Passed() bool {
	return len(r.Discrepancies) == 0
}

// LocalesChecked returns the number of locales evaluated.
func (r Report) LocalesChecked() int {
	return len(r.Locales)
}

// Run loads the baseline and checks every locale against it. Locales are
// checked in name order. A missing baseline returns ErrBaselineNotFound
// before any locale is read; a malformed file returns its
// *resources.ParseError and no report.
func Run(ctx context.Context, baselinePath string, locales []resources.LocaleFile) (Report, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "parity.Run", trace.WithAttributes(
		attribute.String("parity.baseline_path", baselinePath),
		attribute.Int("parity.locales", len(locales)),
	))
	defer span.End()

	report, err := run(ctx, baselinePath, locales)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Report{}, err
	}
	span.SetAttributes(attribute.Int("parity.discrepancies", len(report.Discrepancies)))
	return report, nil
}

func run(ctx context.Context, baselinePath string, locales []resources.LocaleFile) (Report, error) {
	baseline, err := resources.Load(baselinePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{}, fmt.Errorf("%w: %s", ErrBaselineNotFound, baselinePath)
		}
		return Report{}, err
	}

	ordered := make([]resources.LocaleFile, len(locales))
	copy(ordered, locales)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})

	report := Report{BaselinePath: baselinePath, Locales: ordered}
	for _, locale := range ordered {
		found, err := checkLocaleFile(ctx, baseline, locale)
		if err != nil {
			return Report{}, err
		}
		report.Discrepancies = append(report.Discrepancies, found...)
	}
	return report, nil
}

func checkLocaleFile(ctx context.Context, baseline resources.Table, locale resources.LocaleFile) ([]Discrepancy, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "parity.CheckLocale", trace.WithAttributes(
		attribute.String("parity.locale", locale.Name),
		attribute.String("parity.locale_tag", locale.Tag.String()),
	))
	defer span.End()

	var table *resources.Table
	loaded, err := resources.Load(locale.Path)
	switch {
	case err == nil:
		table = &loaded
	case errors.Is(err, fs.ErrNotExist):
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	found := CheckLocale(baseline, locale.Name, table)
	span.SetAttributes(attribute.Int("parity.discrepancies", len(found)))
	return found, nil
}
