// pkg/product/product_bsd.go
//go:build netbsd || freebsd

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

func sysctlClean(name string) (string, error) {
	raw, err := unix.Sysctl(name)
	if err != nil {
		return "", readout.ErrMetricNotAvailable
	}
	value := cleanValue(raw)
	if value == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return value, nil
}

func (r *Readout) Vendor() (string, error) {
	return sysctlClean("machdep.dmi.system-vendor")
}

func (r *Readout) Family() (string, error) {
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Name() (string, error) {
	return sysctlClean("hw.model")
}

func (r *Readout) Version() (string, error) {
	return sysctlClean("machdep.dmi.system-version")
}

func (r *Readout) Product() (string, error) {
	vendor, _ := r.Vendor()
	name, _ := r.Name()
	version, _ := r.Version()

	product := composeProduct(vendor, "", name, version)
	if product == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return product, nil
}
