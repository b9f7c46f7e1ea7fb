package procstream

import "fmt"

// DefaultBufferSize is the default allocation size of the internal buffer
// used when draining a stream.
const DefaultBufferSize = 8192

// config holds per-handler construction settings.
type config struct {
	bufferSize int
}

// Option configures a Consumer or Processor during construction. Buffer
// sizing is purely a performance tuning knob; it never affects the logical
// content of results.
type Option func(*config)

// WithBufferSize sets the chunk size used when draining the stream.
// Zero or negative values cause the constructor to return ErrBufferSize.
//
// Default: DefaultBufferSize (8192).
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// newConfig applies opts over the defaults and validates the result.
// Validation happens here, before any I/O is attempted, so a misconfigured
// handler never touches its stream.
func newConfig(opts []Option) (config, error) {
	c := config{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	if c.bufferSize <= 0 {
		return config{}, fmt.Errorf("buffer size %d: %w", c.bufferSize, ErrBufferSize)
	}
	return c, nil
}
