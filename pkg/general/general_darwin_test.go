// pkg/general/general_darwin_test.go
//go:build darwin

package general

import "testing"

func TestPrettyMacOS(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"14.4.1", "macOS 14.4.1 Sonoma"},
		{"12.0", "macOS 12.0 Monterey"},
		{"10.15.7", "macOS 10.15.7"},
	}
	for _, tt := range tests {
		if got := prettyMacOS(tt.version); got != tt.want {
			t.Errorf("prettyMacOS(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestWindowManagerFromProcesses(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{"yabai running", "/usr/bin/login\n/opt/homebrew/bin/yabai\n", "yabai"},
		{"bare quartz", "/usr/bin/login\n/usr/sbin/syslogd\n", "Quartz Compositor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowManagerFromProcesses(tt.out); got != tt.want {
				t.Errorf("windowManagerFromProcesses = %q, want %q", got, tt.want)
			}
		})
	}
}
