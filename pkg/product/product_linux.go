// pkg/product/product_linux.go
//go:build linux && !android

package product

import (
	"path/filepath"

	"github.com/sysfacts/sysfacts/internal/hostfs"
	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads product identity from the SMBIOS tables the kernel
// exports under /sys/class/dmi/id.
type Readout struct {
	dmiDir string
}

func New() *Readout {
	return &Readout{dmiDir: "/sys/class/dmi/id"}
}

func (r *Readout) dmiValue(file string) (string, error) {
	raw, err := hostfs.ReadTrimmed(filepath.Join(r.dmiDir, file))
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
	return r.dmiValue("sys_vendor")
}

func (r *Readout) Family() (string, error) {
	return r.dmiValue("product_family")
}

func (r *Readout) Name() (string, error) {
	return r.dmiValue("product_name")
}

func (r *Readout) Version() (string, error) {
	return r.dmiValue("product_version")
}

func (r *Readout) Product() (string, error) {
	vendor, _ := r.Vendor()
	family, _ := r.Family()
	name, _ := r.Name()
	version, _ := r.Version()

	product := composeProduct(vendor, family, name, version)
	if product == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return product, nil
}
