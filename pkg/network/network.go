// pkg/network/network.go

// Package network reads per-interface traffic statistics and addresses.
package network

import (
	"net"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

func requireIface(iface string) error {
	if iface == "" {
		return readout.Otherf("network", "no interface specified")
	}
	return nil
}

// logicalAddress returns the first IP address assigned to the interface,
// preferring IPv4 over IPv6.
func logicalAddress(iface string) (string, error) {
	if err := requireIface(iface); err != nil {
		return "", err
	}

	nif, err := net.InterfaceByName(iface)
	if err != nil {
		return "", readout.Otherf("network", "interface %s: %v", iface, err)
	}
	addrs, err := nif.Addrs()
	if err != nil {
		return "", readout.Otherf("network", "addresses of %s: %v", iface, err)
	}

	var fallback string
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if v4 := ipNet.IP.To4(); v4 != nil {
			return v4.String(), nil
		}
		if fallback == "" {
			fallback = ipNet.IP.String()
		}
	}
	if fallback == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return fallback, nil
}
