// Package resources loads Android string resources (res/values*/strings.xml)
// into immutable key/text tables and discovers locale resource directories.
//
// Only <string> elements that are direct children of the root element are
// read. Entries without a name attribute are skipped without a warning;
// plurals, string arrays and comments are ignored. A file that is not
// well-formed XML yields a *ParseError.
package resources
