// errors.go
package sysfacts

import "github.com/sysfacts/sysfacts/pkg/readout"

// Re-export the readout error taxonomy so consumers can depend on the
// root package alone.
var (
	ErrMetricNotAvailable = readout.ErrMetricNotAvailable
	ErrNotImplemented     = readout.ErrNotImplemented
)

// Error is the wrapper every readout returns for low-level failures.
type Error = readout.Error

// IsWarning reports whether err is a warning-class readout error.
func IsWarning(err error) bool {
	return readout.IsWarning(err)
}
