// pkg/readout/packages.go
package readout

// PackageManager identifies a known package manager. The set is closed;
// extend it only by adding new constants.
type PackageManager string

const (
	Homebrew PackageManager = "Homebrew"
	MacPorts PackageManager = "MacPorts"
	Pacman   PackageManager = "pacman"
	Portage  PackageManager = "portage"
	Dpkg     PackageManager = "dpkg"
	Opkg     PackageManager = "opkg"
	Xbps     PackageManager = "xbps"
	Pkgsrc   PackageManager = "pkgsrc"
	Apk      PackageManager = "apk"
	Eopkg    PackageManager = "eopkg"
	Rpm      PackageManager = "rpm"
	Cargo    PackageManager = "cargo"
	Nix      PackageManager = "nix"
	Flatpak  PackageManager = "flatpak"
	Snap     PackageManager = "snap"
	Android  PackageManager = "Android"
	Pkg      PackageManager = "pkg"
	Scoop    PackageManager = "Scoop"
)

func (p PackageManager) String() string {
	return string(p)
}

// PackageCount pairs a package manager with its number of installed
// packages. Counts are never negative. A count of zero is valid: the
// manager is installed but has no packages.
type PackageCount struct {
	Manager PackageManager
	Count   int
}
