// pkg/kernel/kernel_other.go
//go:build !linux && !darwin && !windows && !netbsd && !freebsd

package kernel

import "github.com/sysfacts/sysfacts/pkg/readout"

// Readout is a stub for platforms without a kernel backend.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) OSType() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) OSRelease() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) PrettyKernel() (string, error) {
	return "", readout.ErrNotImplemented
}
