package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// ErrStop can be returned from a scan callback to end the scan early without
// surfacing an error to the caller.
var ErrStop = errors.New("dataset: stop scan")

// maxLineBytes bounds a single record line. LinkedIn export lines carry full
// nested work histories and routinely run tens of kilobytes; a line past this
// limit is skipped like any other undecodable record.
const maxLineBytes = 4 << 20

// ScanLines reads r incrementally and invokes fn once per non-blank line.
// Memory use is bounded by maxLineBytes, not the stream size; an oversized
// line is dropped and the scan resumes at the next line. fn errors abort the
// scan; ErrStop aborts it silently.
func ScanLines(r io.Reader, fn func(line []byte) error) error {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		line     []byte
		overflow bool
	)
	emit := func() error {
		defer func() { line, overflow = line[:0], false }()
		if overflow {
			return nil
		}
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			return nil
		}
		return fn(trimmed)
	}

	for {
		chunk, err := br.ReadSlice('\n')
		if !overflow {
			if len(line)+len(chunk) > maxLineBytes {
				overflow = true
				line = line[:0]
			} else {
				line = append(line, chunk...)
			}
		}

		switch {
		case err == nil:
			if cerr := emit(); cerr != nil {
				if errors.Is(cerr, ErrStop) {
					return nil
				}
				return cerr
			}
		case errors.Is(err, bufio.ErrBufferFull):
			// Mid-line; keep accumulating (or draining, when oversized).
		case errors.Is(err, io.EOF):
			if cerr := emit(); cerr != nil && !errors.Is(cerr, ErrStop) {
				return cerr
			}
			return nil
		default:
			return err
		}
	}
}
