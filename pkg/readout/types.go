// pkg/readout/types.go
package readout

// BatteryState represents the charging state of a battery.
type BatteryState string

const (
	Charging    BatteryState = "Charging"
	Discharging BatteryState = "Discharging"
)

// ShellFormat selects how the running shell is reported: just the program
// name, or its full path.
type ShellFormat int

const (
	ShellRelative ShellFormat = iota
	ShellAbsolute
)

// BatteryReadout queries battery statistics from the host. Desktop machines
// usually have no battery, in which case every operation returns an error.
type BatteryReadout interface {
	// Percentage returns the current charge in the range 0 to 100.
	Percentage() (uint8, error)

	// Status reports whether the battery is charging or discharging.
	Status() (BatteryState, error)

	// Health returns the ratio of current full-charge capacity to the
	// designed capacity, as a percentage.
	Health() (uint64, error)
}

// KernelReadout queries kernel identity.
type KernelReadout interface {
	// OSType returns the kernel name, e.g. "Linux" or "Darwin".
	OSType() (string, error)

	// OSRelease returns the kernel release string, e.g. "6.8.0-41-generic".
	OSRelease() (string, error)

	// PrettyKernel returns kernel name and release joined for display.
	PrettyKernel() (string, error)
}

// MemoryReadout queries the current memory state of the host.
// All values are reported in kibibytes.
type MemoryReadout interface {
	Total() (uint64, error)
	Free() (uint64, error)
	Used() (uint64, error)
	Buffers() (uint64, error)
	Cached() (uint64, error)
	Reclaimable() (uint64, error)
}

// GeneralReadout queries general information about the running operating
// system and the current user.
type GeneralReadout interface {
	Username() (string, error)
	Hostname() (string, error)

	// Distribution returns the distribution name, e.g. "Arch Linux".
	Distribution() (string, error)

	// Uptime returns the seconds elapsed since boot.
	Uptime() (uint64, error)

	DesktopEnvironment() (string, error)
	WindowManager() (string, error)
	Terminal() (string, error)
	Shell(format ShellFormat) (string, error)

	// OSName returns the operating system name in a pretty format,
	// e.g. "macOS 14.3 Sonoma".
	OSName() (string, error)

	// Machine returns the host machine's model name.
	Machine() (string, error)
}

// ProductReadout queries product information set by the machine's
// manufacturer.
type ProductReadout interface {
	Vendor() (string, error)
	Family() (string, error)
	Name() (string, error)
	Product() (string, error)
	Version() (string, error)
}

// ProcessorReadout queries CPU identity and utilization.
type ProcessorReadout interface {
	ModelName() (string, error)
	Cores() (int, error)
	PhysicalCores() (int, error)

	// Usage returns the current CPU utilization as a percentage.
	Usage() (int, error)
}

// NetworkReadout queries per-interface traffic statistics and addresses.
// The interface name is required; an empty name is an error.
type NetworkReadout interface {
	TxBytes(iface string) (uint64, error)
	TxPackets(iface string) (uint64, error)
	RxBytes(iface string) (uint64, error)
	RxPackets(iface string) (uint64, error)

	// PhysicalAddress returns the interface's MAC address.
	PhysicalAddress(iface string) (string, error)

	// LogicalAddress returns the interface's first IP address.
	LogicalAddress(iface string) (string, error)
}

// GraphicalReadout queries the graphical session. Display-server specifics
// are out of scope, so most implementations only report the session type.
type GraphicalReadout interface {
	// Session reports the session type, e.g. "X11" or "Wayland".
	Session() (string, error)
	Resolution() (string, error)
	Backlight() (int, error)
}

// PackageReadout counts installed packages for every package manager that
// is detected on the host.
type PackageReadout interface {
	// CountPkgs probes the host for known package managers and counts the
	// installed packages of each. It is total: managers that are absent or
	// whose count cannot be obtained are omitted, and a host with no
	// package managers yields an empty slice.
	CountPkgs() []PackageCount
}
