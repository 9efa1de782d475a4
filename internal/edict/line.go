// Package edict reads EDICT2 dictionary files and writes them out as a
// JavaScript array literal ordered by reading.
// Parsing works on raw source bytes; only sort keys are decoded to UTF-8.
package edict

import (
	"strings"
)

const (
	// EntryIDMarker prefixes the internal entry id at the end of each line.
	EntryIDMarker = "EntL"
	// SubsetMarker tags entries that belong to the common-word subset.
	SubsetMarker = "(P)"
)

// Entry is a source line split into the three output fields.
// All fields hold source bytes verbatim.
type Entry struct {
	Headword string
	Reading  string
	Gloss    string
}

// splitFields splits a line at its first space into the spellings field
// and the remainder. ok is false when the line has no space.
func splitFields(line string) (field0, rest string, ok bool) {
	return strings.Cut(line, " ")
}

// stripVariants keeps the first alternate of a semicolon-separated field
// and drops any parenthesised annotation.
func stripVariants(field string) string {
	if i := strings.IndexByte(field, ';'); i >= 0 {
		field = field[:i]
	}
	if i := strings.IndexByte(field, '('); i >= 0 {
		field = field[:i]
	}
	return field
}

// hasReading reports whether the remainder starts with a bracketed reading.
func hasReading(rest string) bool {
	return strings.HasPrefix(rest, "[")
}

// splitReading splits "[readings] glosses" into the bracket content and
// the gloss text. ok is false when the bracket token is not closed.
func splitReading(rest string) (reading, gloss string, ok bool) {
	token, gloss, _ := strings.Cut(rest, " ")
	if len(token) < 2 || token[len(token)-1] != ']' {
		return "", "", false
	}
	return token[1 : len(token)-1], gloss, true
}

// TrimEntryID drops the entry id marker and everything after it.
// Lines without the marker are returned unchanged.
func TrimEntryID(line string) string {
	if i := strings.Index(line, EntryIDMarker); i >= 0 {
		return line[:i]
	}
	return line
}

// InSubset reports whether the line carries the subset marker.
func InSubset(line string) bool {
	return strings.Contains(line, SubsetMarker)
}

// ParseEntry splits an id-trimmed line into headword, reading and gloss.
func ParseEntry(line string) (Entry, bool) {
	field0, rest, ok := splitFields(line)
	if !ok {
		return Entry{}, false
	}
	if !hasReading(rest) {
		return Entry{Headword: field0, Gloss: rest}, true
	}
	reading, gloss, ok := splitReading(rest)
	if !ok {
		return Entry{}, false
	}
	return Entry{Headword: field0, Reading: reading, Gloss: gloss}, true
}

// escapeJS backslash-escapes backslashes and double quotes for a JS
// string literal.
func escapeJS(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	return jsEscaper.Replace(s)
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
