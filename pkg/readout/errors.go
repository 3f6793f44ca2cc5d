// pkg/readout/errors.go
package readout

import (
	"errors"
	"fmt"
)

var (
	// ErrMetricNotAvailable indicates the requested metric does not exist
	// on this host (e.g. battery percentage on a desktop machine).
	ErrMetricNotAvailable = errors.New("metric is not available on this system")

	// ErrNotImplemented indicates the metric is not implemented for the
	// current platform.
	ErrNotImplemented = errors.New("metric is not implemented on this platform")
)

// Error wraps a low-level failure with the readout operation that caused it.
// Every readout converts filesystem, process and syscall errors into an
// Error at the point of occurrence.
type Error struct {
	Op      string // Operation that failed, e.g. "battery.percentage"
	Warning bool   // Warnings are informational, not hard failures
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Otherf builds an Error for a metric that exists but could not be acquired.
func Otherf(op, format string, args ...interface{}) error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}

// Warnf builds a warning-class Error. Asking for a distribution name on
// macOS is a warning, not a failure.
func Warnf(op, format string, args ...interface{}) error {
	return &Error{Op: op, Warning: true, Err: fmt.Errorf(format, args...)}
}

// Wrap converts a low-level error into the readout taxonomy, keeping the
// original error reachable through errors.Unwrap.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// IsWarning reports whether err is a warning-class readout error.
func IsWarning(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Warning
}
