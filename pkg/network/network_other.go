// pkg/network/network_other.go
//go:build !linux

package network

import (
	"net"

	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads interface statistics through gopsutil.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func counters(iface string) (*psnet.IOCountersStat, error) {
	if err := requireIface(iface); err != nil {
		return nil, err
	}
	stats, err := psnet.IOCounters(true)
	if err != nil {
		return nil, readout.Otherf("network", "io counters: %v", err)
	}
	for i := range stats {
		if stats[i].Name == iface {
			return &stats[i], nil
		}
	}
	return nil, readout.Otherf("network", "interface %s not found", iface)
}

func (r *Readout) TxBytes(iface string) (uint64, error) {
	stat, err := counters(iface)
	if err != nil {
		return 0, err
	}
	return stat.BytesSent, nil
}

func (r *Readout) TxPackets(iface string) (uint64, error) {
	stat, err := counters(iface)
	if err != nil {
		return 0, err
	}
	return stat.PacketsSent, nil
}

func (r *Readout) RxBytes(iface string) (uint64, error) {
	stat, err := counters(iface)
	if err != nil {
		return 0, err
	}
	return stat.BytesRecv, nil
}

func (r *Readout) RxPackets(iface string) (uint64, error) {
	stat, err := counters(iface)
	if err != nil {
		return 0, err
	}
	return stat.PacketsRecv, nil
}

func (r *Readout) PhysicalAddress(iface string) (string, error) {
	if err := requireIface(iface); err != nil {
		return "", err
	}
	nif, err := net.InterfaceByName(iface)
	if err != nil {
		return "", readout.Otherf("network", "interface %s: %v", iface, err)
	}
	if len(nif.HardwareAddr) == 0 {
		return "", readout.ErrMetricNotAvailable
	}
	return nif.HardwareAddr.String(), nil
}

func (r *Readout) LogicalAddress(iface string) (string, error) {
	return logicalAddress(iface)
}
