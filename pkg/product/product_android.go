// pkg/product/product_android.go
//go:build android

package product

import (
	"os/exec"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads product identity from Android system properties.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func getprop(name string) (string, error) {
	out, err := exec.Command("getprop", name).Output()
	if err != nil {
		return "", readout.Otherf("product", "getprop %s: %v", name, err)
	}
	value := strings.TrimSpace(string(out))
	if value == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return value, nil
}

func (r *Readout) Vendor() (string, error) {
	return getprop("ro.product.manufacturer")
}

func (r *Readout) Family() (string, error) {
	return getprop("ro.product.device")
}

func (r *Readout) Name() (string, error) {
	return getprop("ro.product.model")
}

func (r *Readout) Version() (string, error) {
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Product() (string, error) {
	vendor, _ := r.Vendor()
	name, _ := r.Name()

	product := composeProduct(vendor, "", name, "")
	if product == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return product, nil
}
