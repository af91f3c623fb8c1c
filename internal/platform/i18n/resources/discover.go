package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

const (
	// DefaultBaselineDir is the resource directory holding default-locale strings.
	DefaultBaselineDir = "values"
	// DefaultFileName is the string resource file expected in each directory.
	DefaultFileName = "strings.xml"

	valuesPrefix = "values"
)

// LocaleFile identifies one locale resource directory and its expected file.
type LocaleFile struct {
	// Name is the directory name, e.g. "values-pt-rBR".
	Name string
	// Path is the string resource file inside the directory. It may not exist.
	Path string
	// Tag is the BCP 47 tag derived from the directory qualifier, or
	// language.Und when the qualifier names no language.
	Tag language.Tag
}

// Discover lists the values* directories under resDir other than baselineDir,
// sorted by name. A missing resDir, or a file in its place, yields no locales.
func Discover(resDir string, baselineDir string, fileName string) ([]LocaleFile, error) {
	if strings.TrimSpace(baselineDir) == "" {
		baselineDir = DefaultBaselineDir
	}
	if strings.TrimSpace(fileName) == "" {
		fileName = DefaultFileName
	}

	entries, err := os.ReadDir(resDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		// A regular file in place of the resource dir holds no locales; the
		// baseline lookup reports it as missing.
		if info, statErr := os.Stat(resDir); statErr == nil && !info.IsDir() {
			return nil, nil
		}
		return nil, fmt.Errorf("read resource dir %s: %w", resDir, err)
	}

	out := make([]LocaleFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || !strings.HasPrefix(name, valuesPrefix) || name == baselineDir {
			continue
		}
		out = append(out, LocaleFile{
			Name: name,
			Path: filepath.Join(resDir, name, fileName),
			Tag:  QualifierTag(name),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// BaselinePath returns the baseline resource file path.
func BaselinePath(resDir string, baselineDir string, fileName string) string {
	if strings.TrimSpace(baselineDir) == "" {
		baselineDir = DefaultBaselineDir
	}
	if strings.TrimSpace(fileName) == "" {
		fileName = DefaultFileName
	}
	return filepath.Join(resDir, baselineDir, fileName)
}

// QualifierTag maps an Android values directory name to a BCP 47 tag.
//
//	values-fr        -> fr
//	values-pt-rBR    -> pt-BR
//	values-b+sr+Latn -> sr-Latn
//	values-night     -> und
func QualifierTag(dirName string) language.Tag {
	qualifier := strings.TrimPrefix(strings.TrimPrefix(dirName, valuesPrefix), "-")
	if qualifier == "" {
		return language.Und
	}

	parts := strings.Split(qualifier, "-")
	// Mobile country and network codes precede the language qualifier.
	for len(parts) > 0 && (strings.HasPrefix(parts[0], "mcc") || strings.HasPrefix(parts[0], "mnc")) {
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return language.Und
	}

	if strings.HasPrefix(parts[0], "b+") {
		tag, err := language.Parse(strings.ReplaceAll(strings.TrimPrefix(parts[0], "b+"), "+", "-"))
		if err != nil {
			return language.Und
		}
		return tag
	}

	base, err := language.ParseBase(parts[0])
	if err != nil {
		return language.Und
	}
	if len(parts) > 1 && len(parts[1]) == 3 && parts[1][0] == 'r' {
		if region, err := language.ParseRegion(parts[1][1:]); err == nil {
			if tag, err := language.Compose(base, region); err == nil {
				return tag
			}
		}
	}
	tag, err := language.Compose(base)
	if err != nil {
		return language.Und
	}
	return tag
}
