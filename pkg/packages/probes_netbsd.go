// pkg/packages/probes_netbsd.go
//go:build netbsd

package packages

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// hostProbes returns the NetBSD probe table.
func hostProbes() []Probe {
	return []Probe{
		{readout.Pkgsrc, countPkgsrc},
		{readout.Cargo, countCargo},
	}
}

// countPkgsrc counts pkgsrc packages by enumerating the package database
// directory. The directory location honors PKG_DBDIR / LOCALBASE from
// /etc/mk.conf and falls back to the /usr/pkg/pkgdb default. The database
// directory carries one bookkeeping entry (pkgdb.byfile.db) next to the
// per-package directories; the count subtracts it, clamping at zero.
func countPkgsrc() (int, error) {
	n, err := countDirEntries(pkgdbDir())
	if err != nil {
		return 0, err
	}
	return subtractFixed(n, 1), nil
}

func pkgdbDir() string {
	if dir := mkConfValue("PKG_DBDIR"); dir != "" && dirExists(dir) {
		return dir
	}
	if base := mkConfValue("LOCALBASE"); base != "" {
		if dir := filepath.Join(base, "pkgdb"); dirExists(dir) {
			return dir
		}
	}
	return "/usr/pkg/pkgdb"
}

// mkConfValue extracts a variable assignment from /etc/mk.conf.
func mkConfValue(key string) string {
	f, err := os.Open("/etc/mk.conf")
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, key) {
			continue
		}
		if _, value, found := strings.Cut(line, "="); found {
			return strings.TrimSpace(value)
		}
	}

	return ""
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
