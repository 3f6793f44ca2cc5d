// sysfacts.go
package sysfacts

import (
	"github.com/sysfacts/sysfacts/pkg/battery"
	"github.com/sysfacts/sysfacts/pkg/general"
	"github.com/sysfacts/sysfacts/pkg/graphical"
	"github.com/sysfacts/sysfacts/pkg/kernel"
	"github.com/sysfacts/sysfacts/pkg/memory"
	"github.com/sysfacts/sysfacts/pkg/network"
	"github.com/sysfacts/sysfacts/pkg/packages"
	"github.com/sysfacts/sysfacts/pkg/processor"
	"github.com/sysfacts/sysfacts/pkg/product"
	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Re-export readout types for convenience
type (
	BatteryState   = readout.BatteryState
	ShellFormat    = readout.ShellFormat
	PackageManager = readout.PackageManager
	PackageCount   = readout.PackageCount

	BatteryReadout   = readout.BatteryReadout
	KernelReadout    = readout.KernelReadout
	MemoryReadout    = readout.MemoryReadout
	GeneralReadout   = readout.GeneralReadout
	ProductReadout   = readout.ProductReadout
	ProcessorReadout = readout.ProcessorReadout
	NetworkReadout   = readout.NetworkReadout
	GraphicalReadout = readout.GraphicalReadout
	PackageReadout   = readout.PackageReadout
)

// Re-export readout constants
const (
	Charging    = readout.Charging
	Discharging = readout.Discharging

	ShellRelative = readout.ShellRelative
	ShellAbsolute = readout.ShellAbsolute
)

// Readouts bundles one reader for every information source on the host.
// Construction never fails: a reader whose source is missing reports
// the failure from its methods instead. Nothing is cached; every call
// queries the host again.
type Readouts struct {
	Battery   BatteryReadout
	Kernel    KernelReadout
	Memory    MemoryReadout
	General   GeneralReadout
	Product   ProductReadout
	Processor ProcessorReadout
	Network   NetworkReadout
	Graphical GraphicalReadout
	Packages  PackageReadout
}

// New constructs a reader for every readout the platform supports.
func New() *Readouts {
	return &Readouts{
		Battery:   battery.New(),
		Kernel:    kernel.New(),
		Memory:    memory.New(),
		General:   general.New(),
		Product:   product.New(),
		Processor: processor.New(),
		Network:   network.New(),
		Graphical: graphical.New(),
		Packages:  packages.New(),
	}
}
