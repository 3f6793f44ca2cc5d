// pkg/general/general_other.go
//go:build !linux && !darwin && !windows && !netbsd && !freebsd

package general

import "github.com/sysfacts/sysfacts/pkg/readout"

func (r *Readout) Distribution() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) OSName() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) WindowManager() (string, error) {
	return "", readout.ErrNotImplemented
}
