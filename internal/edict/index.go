package edict

import (
	"errors"
	"fmt"
	"io"

	"github.com/peetscott/edict2-browser/internal/domain"
)

// Record locates one dictionary line and carries its sort keys.
type Record struct {
	Offset   int64  // first byte of the line in the source
	Line     int    // 1-based line number; the header is line 1
	Headword string // first spelling, UTF-8
	Reading  string // first reading, UTF-8; empty when the line has none
}

// Key returns the primary sort key: the reading, or the headword when the
// entry has no reading.
func (r Record) Key() string {
	if r.Reading != "" {
		return r.Reading
	}
	return r.Headword
}

// IndexStats holds indexer statistics for logging.
type IndexStats struct {
	Lines       int // entry lines, header excluded
	WithReading int
}

// Index is the result of the first pass over a dictionary.
type Index struct {
	Version string // header line, verbatim source bytes
	Records []Record
	Stats   IndexStats
}

// BuildIndex reads the whole dictionary once. The first line becomes the
// version string; every following line becomes a Record in file order.
func BuildIndex(r io.Reader) (Index, error) {
	lr := newLineReader(r, 0)
	dec := newKeyDecoder()

	header, _, err := lr.next()
	if err == io.EOF {
		return Index{}, nil
	}
	if err != nil {
		return Index{}, fmt.Errorf("read header: %w", err)
	}

	idx := Index{Version: header}
	lineNo := 1
	for {
		line, offset, err := lr.next()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			return Index{}, fmt.Errorf("read line %d: %w", lineNo, err)
		}

		rec, err := indexLine(dec, line)
		if err != nil {
			return Index{}, &domain.LineError{Line: lineNo, Reason: err.Error()}
		}
		rec.Offset = offset
		rec.Line = lineNo

		idx.Records = append(idx.Records, rec)
		idx.Stats.Lines++
		if rec.Reading != "" {
			idx.Stats.WithReading++
		}
	}

	return idx, nil
}

// indexLine derives the sort keys of a single entry line. The entry id is
// trimmed first so both passes split the same text.
func indexLine(dec *keyDecoder, line string) (Record, error) {
	field0, rest, ok := splitFields(TrimEntryID(line))
	if !ok {
		return Record{}, errors.New("no space after spellings")
	}

	rec := Record{Headword: dec.decode(stripVariants(field0))}
	if hasReading(rest) {
		reading, _, ok := splitReading(rest)
		if !ok {
			return Record{}, errors.New("unterminated reading")
		}
		rec.Reading = dec.decode(stripVariants(reading))
	}
	return rec, nil
}
