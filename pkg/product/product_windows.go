// pkg/product/product_windows.go
//go:build windows

package product

import (
	"golang.org/x/sys/windows/registry"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

const biosKey = `HARDWARE\DESCRIPTION\System\BIOS`

// Readout reads product identity from the SMBIOS values mirrored into
// the registry.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func biosValue(name string) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, biosKey, registry.QUERY_VALUE)
	if err != nil {
		return "", readout.Otherf("product", "open BIOS key: %v", err)
	}
	defer key.Close()

	raw, _, err := key.GetStringValue(name)
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
	return biosValue("SystemManufacturer")
}

func (r *Readout) Family() (string, error) {
	return biosValue("SystemFamily")
}

func (r *Readout) Name() (string, error) {
	return biosValue("SystemProductName")
}

func (r *Readout) Version() (string, error) {
	return biosValue("SystemVersion")
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
