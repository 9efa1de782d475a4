package edict

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/peetscott/edict2-browser/internal/domain"
)

// EmitOptions configures an Emitter.
type EmitOptions struct {
	// Subset limits output to lines carrying SubsetMarker.
	Subset bool
}

// EmitStats holds emitter statistics. Emitted lists the written records in
// output order.
type EmitStats struct {
	Written int
	Skipped int
	Emitted []Record
}

// Emitter re-reads indexed lines from a seekable source and writes the
// Edict JavaScript declaration.
type Emitter struct {
	src  io.ReadSeeker
	lr   *lineReader
	opts EmitOptions
}

// NewEmitter creates an Emitter reading from src.
func NewEmitter(src io.ReadSeeker, opts EmitOptions) *Emitter {
	return &Emitter{src: src, lr: newLineReader(src, 0), opts: opts}
}

// Emit writes the declaration for records, in the given order, to w.
func (e *Emitter) Emit(ctx context.Context, w io.Writer, version string, records []Record) (EmitStats, error) {
	var stats EmitStats
	elements := make([]string, 0, len(records))

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, err := e.readAt(rec.Offset)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", rec.Line, err)
		}
		line = TrimEntryID(line)

		if e.opts.Subset && !InSubset(line) {
			stats.Skipped++
			continue
		}

		entry, ok := ParseEntry(line)
		if !ok {
			return stats, &domain.LineError{Line: rec.Line, Reason: "cannot split fields"}
		}

		elements = append(elements, renderEntry(entry))
		stats.Emitted = append(stats.Emitted, rec)
	}
	stats.Written = len(elements)

	if err := writeDeclaration(w, version, elements); err != nil {
		return stats, domain.NewIOError("write", "", err)
	}
	return stats, nil
}

// readAt seeks to offset and reads one line.
func (e *Emitter) readAt(offset int64) (string, error) {
	if _, err := e.src.Seek(offset, io.SeekStart); err != nil {
		return "", domain.NewIOError("seek", "", err)
	}
	e.lr.reset(e.src, offset)
	line, _, err := e.lr.next()
	if err == io.EOF {
		return "", domain.NewIOError("read", "", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return "", domain.NewIOError("read", "", err)
	}
	return line, nil
}

// renderEntry formats an entry as a three-element array literal.
func renderEntry(e Entry) string {
	var b strings.Builder
	b.Grow(len(e.Headword) + len(e.Reading) + len(e.Gloss) + 10)
	b.WriteString(`["`)
	b.WriteString(e.Headword)
	b.WriteString(`","`)
	b.WriteString(escapeJS(e.Reading))
	b.WriteString(`","`)
	b.WriteString(escapeJS(e.Gloss))
	b.WriteString(`"]`)
	return b.String()
}

func writeDeclaration(w io.Writer, version string, elements []string) error {
	parts := []string{
		"var Edict = {};\n",
		"Edict.version = \"", version, "\";\n",
		"Edict.entries = [\n",
		strings.Join(elements, ","),
		"];\n",
	}
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
