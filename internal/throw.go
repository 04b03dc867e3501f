package internal

import "github.com/pkg/errors"

// Threading errors through every step of the reduction would add a lot of
// noise to code that can only fail on invalid input. Instead, we use panics,
// and the public API recovers to convert to an error.

var (
	ErrTooFewVertices = errors.New("polygon has fewer than three vertices")
	ErrReversal       = errors.New("polygon path reverses direction")
	ErrDegenerateEdge = errors.New("polygon has a zero-length edge")
	ErrNoEar          = errors.New("polygon has no convex corner")
)

// Panics carrying a ContainsError are converted to errors at the API boundary.
// Any other panic, including runtime errors, is a bug and is re-raised.
type ContainsError struct {
	err error
}

func (e ContainsError) Error() string {
	return e.err.Error()
}

func (e ContainsError) Unwrap() error {
	return e.err
}

func (e ContainsError) Cause() error {
	return errors.Cause(e.err)
}

// Panic with a ContainsError wrapping one of the sentinel errors above, so
// that callers can still match it with errors.Is.
func fatal(cause error, format string, args ...interface{}) {
	panic(ContainsError{errors.Wrapf(cause, format, args...)})
}

func HandleContainsPanicRecover(r interface{}) error {
	if r != nil {
		if containsError, ok := r.(ContainsError); ok {
			return containsError
		}
		panic(r)
	}
	return nil
}
