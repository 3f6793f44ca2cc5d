// pkg/product/product_darwin.go
//go:build darwin

package product

import (
	"golang.org/x/sys/unix"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads product identity from the hw sysctl tree.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func (r *Readout) Vendor() (string, error) {
	return "Apple", nil
}

func (r *Readout) Family() (string, error) {
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Name() (string, error) {
	model, err := unix.Sysctl("hw.model")
	if err != nil {
		return "", readout.Otherf("product", "sysctl hw.model: %v", err)
	}
	return model, nil
}

func (r *Readout) Version() (string, error) {
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Product() (string, error) {
	name, err := r.Name()
	if err != nil {
		return "", err
	}
	return composeProduct("Apple", "", name, ""), nil
}
