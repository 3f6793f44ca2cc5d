// pkg/general/general_unix.go
//go:build (linux && !android) || netbsd || freebsd

package general

import (
	"os"
	"os/exec"
	"strings"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// osRelease parses the os-release(5) file and returns the value of the
// requested key, unquoted.
func osRelease(data []byte, key string) string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok || k != key {
			continue
		}
		return strings.Trim(v, `"'`)
	}
	return ""
}

func (r *Readout) osReleaseValue(keys ...string) (string, error) {
	data, err := os.ReadFile(r.osReleasePath)
	if err != nil {
		return "", readout.ErrMetricNotAvailable
	}
	for _, key := range keys {
		if value := osRelease(data, key); value != "" {
			return value, nil
		}
	}
	return "", readout.ErrMetricNotAvailable
}

func (r *Readout) Distribution() (string, error) {
	return r.osReleaseValue("NAME", "PRETTY_NAME")
}

func (r *Readout) OSName() (string, error) {
	return r.osReleaseValue("PRETTY_NAME", "NAME")
}

// WindowManager shells out to wmctrl, which reports the name the
// running window manager registered on the root window.
func (r *Readout) WindowManager() (string, error) {
	out, err := exec.Command("wmctrl", "-m").Output()
	if err != nil {
		return "", readout.ErrMetricNotAvailable
	}
	return parseWmctrl(string(out))
}

func parseWmctrl(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		if name, ok := strings.CutPrefix(line, "Name: "); ok {
			name = strings.TrimSpace(name)
			if name == "" || name == "N/A" {
				break
			}
			return name, nil
		}
	}
	return "", readout.ErrMetricNotAvailable
}
