// pkg/graphical/graphical_other.go
//go:build !linux

package graphical

import "github.com/sysfacts/sysfacts/pkg/readout"

// Readout reads session information from the environment.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) Backlight() (int, error) {
	return 0, readout.ErrNotImplemented
}
