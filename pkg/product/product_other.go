// pkg/product/product_other.go
//go:build !linux && !darwin && !windows && !netbsd && !freebsd

package product

import "github.com/sysfacts/sysfacts/pkg/readout"

// Readout is a stub for platforms without a product backend.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) Vendor() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) Family() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) Name() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) Version() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) Product() (string, error) {
	return "", readout.ErrNotImplemented
}
