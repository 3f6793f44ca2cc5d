// pkg/graphical/graphical.go

// Package graphical reads information about the graphical session.
package graphical

import (
	"os"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

func (r *Readout) Session() (string, error) {
	return session(os.Getenv)
}

func session(getenv func(string) string) (string, error) {
	switch strings.ToLower(getenv("XDG_SESSION_TYPE")) {
	case "x11":
		return "X11", nil
	case "wayland":
		return "Wayland", nil
	}
	// Fall back to protocol-specific variables for sessions that do not
	// set XDG_SESSION_TYPE.
	if getenv("WAYLAND_DISPLAY") != "" {
		return "Wayland", nil
	}
	if getenv("DISPLAY") != "" {
		return "X11", nil
	}
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Resolution() (string, error) {
	return "", readout.ErrNotImplemented
}
