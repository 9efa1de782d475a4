package edict

import (
	"bufio"
	"io"
)

// lineReader reads lines ended by "\n", "\r\n" or a lone "\r" and tracks
// the byte offset at which each one starts.
type lineReader struct {
	br     *bufio.Reader
	offset int64
	buf    []byte
}

func newLineReader(r io.Reader, offset int64) *lineReader {
	return &lineReader{br: bufio.NewReader(r), offset: offset}
}

// reset discards buffered data and continues reading from r, whose
// current position is offset.
func (lr *lineReader) reset(r io.Reader, offset int64) {
	lr.br.Reset(r)
	lr.offset = offset
}

// next returns the next line without its terminator and the offset of its
// first byte. A final unterminated line is returned normally; io.EOF is
// returned only when no bytes remain.
func (lr *lineReader) next() (string, int64, error) {
	start := lr.offset
	lr.buf = lr.buf[:0]
	for {
		c, err := lr.br.ReadByte()
		if err != nil {
			if err == io.EOF && len(lr.buf) > 0 {
				return string(lr.buf), start, nil
			}
			return "", start, err
		}
		lr.offset++

		switch c {
		case '\n':
			return string(lr.buf), start, nil
		case '\r':
			if peek, err := lr.br.Peek(1); err == nil && peek[0] == '\n' {
				_, _ = lr.br.ReadByte()
				lr.offset++
			}
			return string(lr.buf), start, nil
		}
		lr.buf = append(lr.buf, c)
	}
}
