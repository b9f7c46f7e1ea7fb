package procstream

import (
	"errors"
	"fmt"
	"io"
)

// Consumer drains the data in a byte stream.
//
// Attach one to a process output stream (stdout or stderr) you need drained
// but do not care about, so the process never blocks writing to a full pipe
// buffer.
type Consumer interface {
	// Consume fully drains the underlying stream until end-of-stream.
	// Calling Consume on an already-exhausted stream returns immediately
	// with no effect; nothing about "already ran" is cached.
	Consume() error
}

// ConsumeAsync runs c.Consume on a new goroutine and returns a channel that
// receives the final error (possibly nil) once the drain completes, then
// closes. ConsumeAsync itself never blocks.
//
// The drain failure, if any, is always observable on the returned channel;
// it is never lost on a detached goroutine.
func ConsumeAsync(c Consumer) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- c.Consume()
		close(done)
	}()
	return done
}

// Discard is a Consumer that throws away everything it reads.
type Discard struct {
	r   io.Reader
	buf []byte
}

var _ Consumer = (*Discard)(nil)

// NewDiscard creates a Discard bound to r. The reader must be non-nil and
// the configured buffer size positive; violations are reported as
// ErrNilReader or ErrBufferSize before any read occurs.
func NewDiscard(r io.Reader, opts ...Option) (*Discard, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Discard{r: r, buf: make([]byte, cfg.bufferSize)}, nil
}

// Consume reads chunks until end-of-stream, discarding each one. A read
// failure is returned to the caller; nothing is retried.
func (d *Discard) Consume() error {
	for {
		_, err := d.r.Read(d.buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("drain stream: %w", err)
		}
	}
}
