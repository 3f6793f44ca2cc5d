// pkg/general/general.go

// Package general reads information about the running session: the
// current user, hostname, uptime, shell and desktop environment.
package general

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/sysfacts/sysfacts/pkg/product"
	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads session information from the environment, gopsutil and
// the platform's OS identity source.
type Readout struct {
	product       *product.Readout
	osReleasePath string
}

func New() *Readout {
	return &Readout{
		product:       product.New(),
		osReleasePath: "/etc/os-release",
	}
}

func (r *Readout) Username() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name, nil
		}
	}
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", readout.Otherf("general", "hostname: %v", err)
	}
	return name, nil
}

func (r *Readout) Uptime() (uint64, error) {
	uptime, err := host.Uptime()
	if err != nil {
		return 0, readout.Otherf("general", "uptime: %v", err)
	}
	return uptime, nil
}

func (r *Readout) DesktopEnvironment() (string, error) {
	return desktopEnvironment(os.Getenv)
}

// desktopEnvironment resolves the desktop environment from the session
// environment. Sessions started through startx carry a DESKTOP_SESSION
// that points at an xinitrc, which names no desktop at all.
func desktopEnvironment(getenv func(string) string) (string, error) {
	session := getenv("XDG_CURRENT_DESKTOP")
	if session == "" {
		session = getenv("DESKTOP_SESSION")
	}
	if session == "" {
		return "", readout.ErrMetricNotAvailable
	}

	if strings.ContainsRune(session, os.PathSeparator) {
		session = filepath.Base(session)
	}
	// The file is usually named ".xinitrc"; compare without the dot.
	if strings.EqualFold(strings.TrimPrefix(session, "."), "xinitrc") {
		return "", readout.Warnf("general", "session started from xinitrc, no desktop environment to report")
	}
	return session, nil
}

func (r *Readout) Terminal() (string, error) {
	return terminal(os.Getenv)
}

// terminalPrograms maps TERM_PROGRAM values to display names.
var terminalPrograms = map[string]string{
	"iterm.app":      "iTerm2",
	"apple_terminal": "Apple Terminal",
	"hyper":          "HyperTerm",
	"vscode":         "VSCode Terminal",
}

func terminal(getenv func(string) string) (string, error) {
	if program := getenv("TERM_PROGRAM"); program != "" {
		if name, ok := terminalPrograms[strings.ToLower(program)]; ok {
			return name, nil
		}
		return program, nil
	}
	if term := getenv("TERM"); term != "" && term != "dumb" {
		return term, nil
	}
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Shell(format readout.ShellFormat) (string, error) {
	return shell(format, os.Getenv)
}

func shell(format readout.ShellFormat, getenv func(string) string) (string, error) {
	path := getenv("SHELL")
	if path == "" {
		return "", readout.ErrMetricNotAvailable
	}
	if format == readout.ShellRelative {
		return filepath.Base(path), nil
	}
	return path, nil
}

func (r *Readout) Machine() (string, error) {
	return r.product.Product()
}
