package resources

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"syscall"

	"golang.org/x/net/html/charset"
)

// Table maps string keys to their text for one resource file.
type Table struct {
	values map[string]string
}

// NewTable builds a table from a key/text map. Blank keys are dropped.
func NewTable(values map[string]string) Table {
	out := make(map[string]string, len(values))
	for key, text := range values {
		if key == "" {
			continue
		}
		out[key] = text
	}
	return Table{values: out}
}

// Len returns the number of keys.
func (t Table) Len() int {
	return len(t.values)
}

// Has reports whether key is defined.
func (t Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Text returns the text for key.
func (t Table) Text(key string) (string, bool) {
	text, ok := t.values[key]
	return text, ok
}

// Keys returns all keys sorted lexicographically.
func (t Table) Keys() []string {
	out := make([]string, 0, len(t.values))
	for key := range t.values {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Map returns a copy of the key/text mapping.
func (t Table) Map() map[string]string {
	out := make(map[string]string, len(t.values))
	for key, text := range t.values {
		out[key] = text
	}
	return out
}

// ParseError reports a resource file that is not well-formed XML.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", path, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and parses the resource file at path. A missing file, including
// one below a path component that is not a directory, returns an error
// matching fs.ErrNotExist.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, syscall.ENOTDIR) {
			// A parent path component is a file, so the resource cannot exist.
			return Table{}, fmt.Errorf("open %s: %w: %w", path, fs.ErrNotExist, err)
		}
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return Table{}, parseErr
		}
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return table, nil
}

// Parse decodes one resource document. The document must hold exactly one
// root element; comments and processing instructions may surround it. A
// string's text is the character data before its first child element, so
// `Deleted <xliff:g>%1$d</xliff:g> files` reads as "Deleted ".
func Parse(r io.Reader) (Table, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	root, err := findRoot(dec)
	if err != nil {
		return Table{}, err
	}
	values, err := readStrings(dec, root)
	if err != nil {
		return Table{}, err
	}
	if err := expectDocumentEnd(dec); err != nil {
		return Table{}, err
	}
	return Table{values: values}, nil
}

func findRoot(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, &ParseError{Err: errors.New("no root element found")}
		}
		if err != nil {
			return xml.StartElement{}, newParseError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				line, _ := dec.InputPos()
				return xml.StartElement{}, &ParseError{Line: line, Err: errors.New("text before document element")}
			}
		}
	}
}

// readStrings consumes the root element's children up to its end tag.
func readStrings(dec *xml.Decoder, root xml.StartElement) (map[string]string, error) {
	values := map[string]string{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, newParseError(unexpectedEOF(err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "string" {
				if err := dec.Skip(); err != nil {
					return nil, newParseError(unexpectedEOF(err))
				}
				continue
			}
			text, err := leadingText(dec)
			if err != nil {
				return nil, err
			}
			name := attrValue(t, "name")
			if name == "" {
				continue
			}
			// Later duplicates replace earlier ones.
			values[name] = text
		case xml.EndElement:
			if t.Name.Local == root.Name.Local {
				return values, nil
			}
		}
	}
}

// leadingText returns the character data of an opened element up to its
// first child element and consumes the rest of the element.
func leadingText(dec *xml.Decoder) (string, error) {
	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", newParseError(unexpectedEOF(err))
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			// Skip the child, then the remainder of the enclosing element.
			if err := dec.Skip(); err != nil {
				return "", newParseError(unexpectedEOF(err))
			}
			if err := dec.Skip(); err != nil {
				return "", newParseError(unexpectedEOF(err))
			}
			return b.String(), nil
		case xml.EndElement:
			return b.String(), nil
		}
	}
}

func attrValue(elem xml.StartElement, local string) string {
	for _, attr := range elem.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func expectDocumentEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return newParseError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			return &ParseError{Line: line, Err: fmt.Errorf("junk after document element: <%s>", t.Name.Local)}
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				line, _ := dec.InputPos()
				return &ParseError{Line: line, Err: errors.New("junk after document element")}
			}
		}
	}
}

func newParseError(err error) *ParseError {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Line: syntaxErr.Line, Err: errors.New(syntaxErr.Msg)}
	}
	return &ParseError{Err: err}
}
