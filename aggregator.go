package procstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ruipsrosario/procstream/internal/bufpool"
)

// LineAggregator is a Processor that collects a text stream into a single
// string: lines joined with the platform line separator, with no trailing
// separator after the last line. An empty stream produces an empty string.
type LineAggregator struct {
	mu     sync.Mutex
	r      *bufio.Reader
	result string
	// done distinguishes "computed" from "not yet computed". The result
	// value itself cannot serve as the sentinel: a real drain can
	// legitimately produce the empty string, and comparing against it
	// would re-drain an already-exhausted stream.
	done bool
}

var _ Processor[string] = (*LineAggregator)(nil)

// NewLineAggregator creates a LineAggregator bound to r. The reader must be
// non-nil and the configured buffer size positive; violations are reported
// as ErrNilReader or ErrBufferSize before any read occurs.
func NewLineAggregator(r io.Reader, opts ...Option) (*LineAggregator, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &LineAggregator{r: bufio.NewReaderSize(r, cfg.bufferSize)}, nil
}

// Process drains the stream and returns the joined lines. The first
// successful drain caches the result; later calls return the cached string
// without touching the stream, even when that string is empty.
//
// On failure nothing is cached. A retry is permitted and resumes from
// wherever the read stopped; streams are not rewindable, so the retried
// result can be truncated relative to the full stream content. That is
// inherent to draining a one-way cursor, not something Process papers over.
//
// Process is safe for concurrent use, so every Task obtained via
// ProcessAsync observes the identical cached value.
func (a *LineAggregator) Process() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done {
		return a.result, nil
	}

	buf := bufpool.Get()
	defer bufpool.Put(buf)

	first := true
	for {
		line, err := a.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		eof := err != nil
		// A final ReadString that returns only EOF carries no line; a
		// terminator-less tail (line != "") still counts as one.
		if line != "" || !eof {
			if !first {
				_, _ = buf.WriteString(lineSeparator) // ByteBuffer writes cannot fail
			}
			first = false
			_, _ = buf.WriteString(trimLineEnding(line))
		}
		if eof {
			break
		}
	}

	a.result = buf.String()
	a.done = true
	return a.result, nil
}

// trimLineEnding strips a trailing LF and, when present, the CR before it,
// so CRLF-terminated input aggregates the same as LF-terminated input.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
