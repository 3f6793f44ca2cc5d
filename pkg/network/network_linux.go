// pkg/network/network_linux.go
//go:build linux

package network

import (
	"path/filepath"

	"github.com/sysfacts/sysfacts/internal/hostfs"
	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads interface statistics from the counters the kernel
// exports under /sys/class/net.
type Readout struct {
	netDir string
}

func New() *Readout {
	return &Readout{netDir: "/sys/class/net"}
}

func (r *Readout) statistic(iface, counter string) (uint64, error) {
	if err := requireIface(iface); err != nil {
		return 0, err
	}
	value, err := hostfs.ReadUint(filepath.Join(r.netDir, iface, "statistics", counter))
	if err != nil {
		return 0, readout.Otherf("network", "read %s of %s: %v", counter, iface, err)
	}
	return value, nil
}

func (r *Readout) TxBytes(iface string) (uint64, error) {
	return r.statistic(iface, "tx_bytes")
}

func (r *Readout) TxPackets(iface string) (uint64, error) {
	return r.statistic(iface, "tx_packets")
}

func (r *Readout) RxBytes(iface string) (uint64, error) {
	return r.statistic(iface, "rx_bytes")
}

func (r *Readout) RxPackets(iface string) (uint64, error) {
	return r.statistic(iface, "rx_packets")
}

func (r *Readout) PhysicalAddress(iface string) (string, error) {
	if err := requireIface(iface); err != nil {
		return "", err
	}
	mac, err := hostfs.ReadTrimmed(filepath.Join(r.netDir, iface, "address"))
	if err != nil {
		return "", readout.Otherf("network", "read address of %s: %v", iface, err)
	}
	if mac == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return mac, nil
}

func (r *Readout) LogicalAddress(iface string) (string, error) {
	return logicalAddress(iface)
}
