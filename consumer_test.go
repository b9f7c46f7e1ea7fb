package procstream

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// brokenReader fails every Read with the given error.
type brokenReader struct {
	err error
}

func (r *brokenReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestNewDiscard_Validation(t *testing.T) {
	t.Parallel()

	type testCase struct {
		reader  io.Reader
		opts    []Option
		wantErr error
	}

	tests := map[string]testCase{
		"nil reader": {
			reader:  nil,
			wantErr: ErrNilReader,
		},
		"zero buffer size": {
			reader:  strings.NewReader("data"),
			opts:    []Option{WithBufferSize(0)},
			wantErr: ErrBufferSize,
		},
		"negative buffer size": {
			reader:  strings.NewReader("data"),
			opts:    []Option{WithBufferSize(-1)},
			wantErr: ErrBufferSize,
		},
		"default buffer size": {
			reader: strings.NewReader("data"),
		},
		"custom buffer size": {
			reader: strings.NewReader("data"),
			opts:   []Option{WithBufferSize(16)},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d, err := NewDiscard(tc.reader, tc.opts...)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				if d != nil {
					t.Error("expected nil Discard on construction error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d == nil {
				t.Fatal("expected non-nil Discard")
			}
		})
	}
}

func TestDiscard_Consume(t *testing.T) {
	t.Parallel()

	// Content far larger than the buffer so Consume loops.
	r := strings.NewReader(strings.Repeat("x", 100_000))
	d, err := NewDiscard(r, WithBufferSize(512))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := d.Consume(); err != nil {
		t.Fatalf("Consume() = %v, want nil", err)
	}
	if r.Len() != 0 {
		t.Errorf("reader has %d unread bytes, want 0", r.Len())
	}

	// A second Consume on the exhausted stream is a no-op, not an error.
	if err := d.Consume(); err != nil {
		t.Fatalf("second Consume() = %v, want nil", err)
	}
}

func TestDiscard_ConsumeError(t *testing.T) {
	t.Parallel()

	want := errors.New("pipe burst")
	d, err := NewDiscard(&brokenReader{err: want})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := d.Consume(); !errors.Is(err, want) {
		t.Fatalf("Consume() = %v, want wrapped %v", err, want)
	}
}

func TestConsumeAsync_Success(t *testing.T) {
	t.Parallel()

	d, err := NewDiscard(strings.NewReader("a few bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := ConsumeAsync(d)
	if err := <-done; err != nil {
		t.Fatalf("async drain error = %v, want nil", err)
	}
	// The channel closes after delivering the outcome.
	if _, ok := <-done; ok {
		t.Error("expected closed channel after outcome delivery")
	}
}

func TestConsumeAsync_DeliversFailure(t *testing.T) {
	t.Parallel()

	want := errors.New("read reset")
	d, err := NewDiscard(&brokenReader{err: want})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := <-ConsumeAsync(d); !errors.Is(err, want) {
		t.Fatalf("async drain error = %v, want wrapped %v", err, want)
	}
}
