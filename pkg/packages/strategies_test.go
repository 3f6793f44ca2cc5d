package packages

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// MockRunner simulates external package manager commands.
type MockRunner struct {
	OutputFunc func(cmd *exec.Cmd) ([]byte, error)
}

func (m *MockRunner) Output(cmd *exec.Cmd) ([]byte, error) {
	if m.OutputFunc != nil {
		return m.OutputFunc(cmd)
	}
	return nil, nil
}

func mkdirs(t *testing.T, base string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(base, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func touch(t *testing.T, base string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(base, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCountDirEntries(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir, "zlib", "zsh", "zstd")
	touch(t, dir, ".keepme")

	tests := []struct {
		name    string
		filters []entryFilter
		want    int
	}{
		{"no filters", nil, 4},
		{"skip hidden", []entryFilter{withoutHidden()}, 3},
		{"skip self entry", []entryFilter{withoutName("zsh")}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := countDirEntries(dir, tt.filters...)
			if err != nil {
				t.Fatalf("countDirEntries: %v", err)
			}
			if got != tt.want {
				t.Errorf("countDirEntries() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountDirEntries_Empty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "package")
	mkdirs(t, dir)

	// An existing but empty database directory is a detected manager
	// with zero packages, not an absent one.
	got, err := countDirEntries(dir)
	if err != nil {
		t.Fatalf("countDirEntries: %v", err)
	}
	if got != 0 {
		t.Fatalf("countDirEntries() = %d, want 0", got)
	}
}

func TestCountDirEntries_Missing(t *testing.T) {
	_, err := countDirEntries(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrNotDetected) {
		t.Fatalf("expected ErrNotDetected for a missing directory, got %v", err)
	}
}

func TestCountDirEntries_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "bash.list", "bash.md5sums", "coreutils.list", "coreutils.postinst")

	got, err := countDirEntries(dir, withExtension(".list"))
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Fatalf("countDirEntries(.list) = %d, want 2", got)
	}
}

func TestCountDirEntriesRecursive(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir, "app-editors/vim", "app-editors/nano", "sys-apps")

	// app-editors, sys-apps, vim, nano
	got, err := countDirEntriesRecursive(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Fatalf("countDirEntriesRecursive() = %d, want 4", got)
	}

	if _, err := countDirEntriesRecursive(filepath.Join(dir, "missing")); !errors.Is(err, ErrNotDetected) {
		t.Fatalf("expected ErrNotDetected, got %v", err)
	}
}

func TestSubtractFixed(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{5, 1, 4},
		{1, 1, 0},
		{0, 1, 0}, // underflow clamps, never wraps
	}

	for _, tt := range tests {
		if got := subtractFixed(tt.n, tt.k); got != tt.want {
			t.Errorf("subtractFixed(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"\n\n", 0},
		{"pkg-a\n", 1},
		{"pkg-a\npkg-b\npkg-c\n", 3},
		{"pkg-a\n\npkg-b", 2},
	}

	for _, tt := range tests {
		if got := countLines(tt.in); got != tt.want {
			t.Errorf("countLines(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCountOutputLines(t *testing.T) {
	defer func() { CommandRunner = RealRunner{} }()

	CommandRunner = &MockRunner{
		OutputFunc: func(cmd *exec.Cmd) ([]byte, error) {
			return []byte("ii  bash  5.2\nii  curl  8.5\nrc  old   1.0\n"), nil
		},
	}

	got, err := countOutputLines("dpkg", "-l")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Fatalf("countOutputLines() = %d, want 3", got)
	}

	matched, err := countOutputLinesMatching(func(line string) bool {
		return strings.HasPrefix(line, "ii ")
	}, "dpkg", "-l")
	if err != nil {
		t.Fatal(err)
	}
	if matched != 2 {
		t.Fatalf("countOutputLinesMatching() = %d, want 2", matched)
	}
}

func TestCountOutputLines_BadOutput(t *testing.T) {
	defer func() { CommandRunner = RealRunner{} }()

	t.Run("spawn failure", func(t *testing.T) {
		CommandRunner = &MockRunner{
			OutputFunc: func(cmd *exec.Cmd) ([]byte, error) {
				return nil, errors.New("exec: not found")
			},
		}
		if _, err := countOutputLines("xbps-query", "-l"); err == nil {
			t.Fatal("expected an error when the process cannot be spawned")
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		CommandRunner = &MockRunner{
			OutputFunc: func(cmd *exec.Cmd) ([]byte, error) {
				return []byte{0xff, 0xfe, 0xfd}, nil
			},
		}
		if _, err := countOutputLines("xbps-query", "-l"); err == nil {
			t.Fatal("expected an error for non-text output")
		}
	})
}

func TestCountFileLinesMatching(t *testing.T) {
	dir := t.TempDir()
	status := filepath.Join(dir, "status")
	content := "Package: busybox\nVersion: 1.36\n\nPackage: dropbear\nVersion: 2022.83\n"
	if err := os.WriteFile(status, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := countFileLinesMatching(status, func(line string) bool {
		return strings.HasPrefix(line, "Package:")
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Fatalf("countFileLinesMatching() = %d, want 2", got)
	}

	if _, err := countFileLinesMatching(filepath.Join(dir, "missing"), nil); !errors.Is(err, ErrNotDetected) {
		t.Fatalf("expected ErrNotDetected, got %v", err)
	}
}

func TestCountCargo(t *testing.T) {
	home := t.TempDir()
	mkdirs(t, home, "bin")
	for i := 0; i < 7; i++ {
		touch(t, filepath.Join(home, "bin"), string(rune('a'+i)))
	}
	t.Setenv("CARGO_HOME", home)

	got, err := countCargo()
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Fatalf("countCargo() = %d, want 7", got)
	}
}

func TestCountCargo_NotInstalled(t *testing.T) {
	t.Setenv("CARGO_HOME", filepath.Join(t.TempDir(), "nope"))

	if _, err := countCargo(); !errors.Is(err, ErrNotDetected) {
		t.Fatalf("expected ErrNotDetected, got %v", err)
	}
}

func TestCountSQLite_MissingDatabase(t *testing.T) {
	_, err := countSQLite(filepath.Join(t.TempDir(), "rpmdb.sqlite"), "SELECT COUNT(*) FROM Installtid")
	if !errors.Is(err, ErrNotDetected) {
		t.Fatalf("expected ErrNotDetected for a missing database, got %v", err)
	}
}
