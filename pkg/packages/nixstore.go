// pkg/packages/nixstore.go
package packages

import (
	"fmt"
	"os"
	"strings"

	"zombiezen.com/go/nix"
)

// countNixStore counts the store objects in a Nix store directory.
// Entries that do not parse as store paths (the .links directory, stray
// temp files) are skipped, as are .drv derivation files, which describe
// builds rather than installed output.
func countNixStore(storeDir string) (int, error) {
	entries, err := os.ReadDir(storeDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotDetected
		}
		return 0, fmt.Errorf("reading %s: %w", storeDir, err)
	}

	dir := nix.StoreDirectory(storeDir)
	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".drv") {
			continue
		}
		if _, err := dir.Object(name); err != nil {
			continue
		}
		count++
	}

	return count, nil
}
