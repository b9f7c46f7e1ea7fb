package procstream

// Compile-time check that Error implements the error interface.
var _ error = Error("")

// Error is an immutable error type backed by a string constant.
// Unlike errors.New, which returns a pointer and must be stored in a var,
// Error values can be declared as const, preventing reassignment.
//
// errors.Is compatibility: since Error is a comparable type, the default
// == comparison used by errors.Is works correctly through wrapped error chains.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}

// Sentinel errors for error inspection with errors.Is.
// Both are configuration errors, returned by constructors before any I/O
// is attempted.
const (
	// ErrNilReader is returned when a Consumer or Processor is constructed
	// without a stream to read from.
	ErrNilReader = Error("reader must not be nil")

	// ErrBufferSize is returned when a Consumer or Processor is constructed
	// with a zero or negative buffer size.
	ErrBufferSize = Error("buffer size must be greater than 0")
)
