// pkg/packages/cargo.go
package packages

import (
	"os"
	"path/filepath"
)

// countCargo counts the binaries cargo has installed into its bin
// directory, one entry per installed crate. CARGO_HOME wins over the
// default ~/.cargo location.
func countCargo() (int, error) {
	if cargoHome := os.Getenv("CARGO_HOME"); cargoHome != "" {
		return countDirEntries(filepath.Join(cargoHome, "bin"))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return 0, ErrNotDetected
	}

	return countDirEntries(filepath.Join(home, ".cargo", "bin"))
}
