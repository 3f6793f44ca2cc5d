// pkg/packages/probes_linux.go
//go:build linux && !android && !openwrt

package packages

import (
	"os"
	"path/filepath"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// hostProbes returns the Linux probe table. The order is the fixed
// priority order of the result set: native managers first, then
// language and sandboxed managers. Multiple managers can be installed
// side by side (a Homebrew prefix next to pacman is common), so every
// probe runs and every detected manager is reported.
func hostProbes() []Probe {
	home, _ := os.UserHomeDir()
	return linuxProbes("/", home)
}

// linuxProbes builds the probe table against a filesystem root, so tests
// can point it at a scratch tree.
func linuxProbes(root, home string) []Probe {
	return []Probe{
		{readout.Pacman, func() (int, error) {
			return countDirEntries(filepath.Join(root, "var/lib/pacman/local"))
		}},
		{readout.Dpkg, func() (int, error) {
			// One .list file per installed package; the info directory
			// also holds .md5sums and maintainer scripts.
			return countDirEntries(filepath.Join(root, "var/lib/dpkg/info"), withExtension(".list"))
		}},
		{readout.Rpm, func() (int, error) {
			return countSQLite(filepath.Join(root, "var/lib/rpm/rpmdb.sqlite"),
				"SELECT COUNT(*) FROM Installtid")
		}},
		{readout.Portage, func() (int, error) {
			return countDirEntriesRecursive(filepath.Join(root, "var/db/pkg"))
		}},
		{readout.Cargo, countCargo},
		{readout.Xbps, func() (int, error) {
			if !which("xbps-query") {
				return 0, ErrNotDetected
			}
			return countOutputLines("xbps-query", "-l")
		}},
		{readout.Eopkg, func() (int, error) {
			return countDirEntries(filepath.Join(root, "var/lib/eopkg/package"))
		}},
		{readout.Apk, func() (int, error) {
			if !which("apk") {
				return 0, ErrNotDetected
			}
			return countOutputLines("apk", "info")
		}},
		{readout.Nix, func() (int, error) {
			return countNixStore(filepath.Join(root, "nix/store"))
		}},
		{readout.Flatpak, func() (int, error) {
			return countFlatpak(root, home)
		}},
		{readout.Snap, func() (int, error) {
			return countDirEntries(filepath.Join(root, "var/lib/snapd/snaps"), withExtension(".snap"))
		}},
		{readout.Homebrew, func() (int, error) {
			return countLinuxbrew(root, home)
		}},
	}
}

// countFlatpak sums system-wide and per-user flatpak applications. Either
// location alone is enough to report a count.
func countFlatpak(root, home string) (int, error) {
	system, sysErr := countDirEntries(filepath.Join(root, "var/lib/flatpak/app"))
	user, userErr := countDirEntries(filepath.Join(home, ".local/share/flatpak/app"))

	switch {
	case sysErr == nil && userErr == nil:
		return system + user, nil
	case sysErr == nil:
		return system, nil
	case userErr == nil:
		return user, nil
	default:
		return 0, ErrNotDetected
	}
}

// countLinuxbrew counts Homebrew-on-Linux packages. The Cellar holds one
// directory per installed formula plus a ".keepme" marker file, which is
// subtracted; the subtraction clamps at zero so a Cellar holding only the
// marker reports an empty install, not a negative one.
func countLinuxbrew(root, home string) (int, error) {
	base := filepath.Join(home, ".linuxbrew")
	if home == "" || !dirExists(base) {
		base = filepath.Join(root, "home/linuxbrew/.linuxbrew")
	}

	n, err := countDirEntries(filepath.Join(base, "Cellar"))
	if err != nil {
		return 0, err
	}

	return subtractFixed(n, keepmeEntries(filepath.Join(base, "Cellar"))), nil
}

// keepmeEntries reports how many fixed non-package entries the Cellar
// carries. Current Homebrew installs ship a single ".keepme" file.
func keepmeEntries(cellar string) int {
	if _, err := os.Stat(filepath.Join(cellar, ".keepme")); err == nil {
		return 1
	}
	return 0
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
