// pkg/packages/strategies.go
package packages

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// entryFilter decides whether a directory entry counts as a package.
type entryFilter func(name string) bool

// withExtension keeps entries whose name ends in ext (including the dot).
func withExtension(ext string) entryFilter {
	return func(name string) bool {
		return filepath.Ext(name) == ext
	}
}

// withoutHidden drops dotfile entries such as Homebrew's Cellar marker.
func withoutHidden() entryFilter {
	return func(name string) bool {
		return !strings.HasPrefix(name, ".")
	}
}

// withoutName drops a single known non-package entry, e.g. the "scoop"
// self entry inside a Scoop apps directory.
func withoutName(skip string) entryFilter {
	return func(name string) bool {
		return name != skip
	}
}

// countDirEntries counts the entries of dir that pass every filter.
// A missing directory means the package manager is not installed.
func countDirEntries(dir string, filters ...entryFilter) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotDetected
		}
		return 0, fmt.Errorf("reading %s: %w", dir, err)
	}

	count := 0
entries:
	for _, entry := range entries {
		for _, keep := range filters {
			if !keep(entry.Name()) {
				continue entries
			}
		}
		count++
	}

	return count, nil
}

// countDirEntriesRecursive counts every entry beneath dir at any depth.
// Portage records each installed package as a directory two levels deep
// under /var/db/pkg, so a recursive walk is required.
func countDirEntriesRecursive(dir string) (int, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotDetected
		}
		return 0, fmt.Errorf("reading %s: %w", dir, err)
	}

	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return fs.SkipDir
		}
		if path != dir {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking %s: %w", dir, err)
	}

	return count, nil
}

// subtractFixed removes a known fixed number of non-package entries from a
// directory count, clamping at zero instead of wrapping. The offset is a
// documented property of the package manager, e.g. Homebrew's ".keepme"
// marker file inside Cellar.
func subtractFixed(n, k int) int {
	if n < k {
		return 0
	}
	return n - k
}

// which reports whether an executable with the given name is reachable
// through the host's PATH. Detection never spawns the binary itself.
func which(program string) bool {
	_, err := exec.LookPath(program)
	return err == nil
}

// countLines counts the non-empty lines of a command's output.
func countLines(s string) int {
	count := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// countOutputLines spawns a package manager's listing subcommand and counts
// the records it prints, one per line. Spawn failure or non-text output
// makes this one manager uncountable; it never aborts the other probes.
func countOutputLines(name string, args ...string) (int, error) {
	return countOutputLinesMatching(nil, name, args...)
}

// countOutputLinesMatching is countOutputLines restricted to lines accepted
// by match. A nil match accepts every non-empty line.
func countOutputLinesMatching(match func(line string) bool, name string, args ...string) (int, error) {
	out, err := CommandRunner.Output(exec.Command(name, args...))
	if err != nil {
		return 0, fmt.Errorf("running %s: %w", name, err)
	}
	if !utf8.Valid(out) {
		return 0, fmt.Errorf("%s: output is not valid UTF-8", name)
	}

	if match == nil {
		return countLines(string(out)), nil
	}

	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if match(line) {
			count++
		}
	}

	return count, nil
}

// countFileLinesMatching counts the lines of a status file accepted by
// match. Used for opkg, whose installed set lives in a plain-text status
// file with one "Package:" field per installed package.
func countFileLinesMatching(path string, match func(line string) bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotDetected
		}
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if match(line) {
			count++
		}
	}

	return count, nil
}
