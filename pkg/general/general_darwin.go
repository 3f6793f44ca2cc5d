// pkg/general/general_darwin.go
//go:build darwin

package general

import (
	"os/exec"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// macOSNames maps major versions to Apple's marketing names.
var macOSNames = map[string]string{
	"11": "Big Sur",
	"12": "Monterey",
	"13": "Ventura",
	"14": "Sonoma",
	"15": "Sequoia",
}

func productVersion() (string, error) {
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return "", readout.Otherf("general", "sw_vers: %v", err)
	}
	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", readout.ErrMetricNotAvailable
	}
	return version, nil
}

func (r *Readout) Distribution() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) OSName() (string, error) {
	version, err := productVersion()
	if err != nil {
		return "", err
	}
	return prettyMacOS(version), nil
}

func prettyMacOS(version string) string {
	name := "macOS " + version
	major, _, _ := strings.Cut(version, ".")
	if marketing, ok := macOSNames[major]; ok {
		name += " " + marketing
	}
	return name
}

// tilingManagers are the window managers people run on top of Quartz.
var tilingManagers = []string{"yabai", "Amethyst", "Rectangle", "Spectacle"}

func (r *Readout) WindowManager() (string, error) {
	out, err := exec.Command("ps", "-e", "-o", "comm=").Output()
	if err != nil {
		return "Quartz Compositor", nil
	}
	return windowManagerFromProcesses(string(out)), nil
}

func windowManagerFromProcesses(out string) string {
	for _, line := range strings.Split(out, "\n") {
		comm := strings.TrimSpace(line)
		for _, wm := range tilingManagers {
			if strings.HasSuffix(comm, "/"+wm) || comm == wm {
				return wm
			}
		}
	}
	return "Quartz Compositor"
}
