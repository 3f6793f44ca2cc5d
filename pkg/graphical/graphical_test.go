// pkg/graphical/graphical_test.go

package graphical

import (
	"errors"
	"testing"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestSession(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"x11", map[string]string{"XDG_SESSION_TYPE": "x11"}, "X11"},
		{"wayland", map[string]string{"XDG_SESSION_TYPE": "wayland"}, "Wayland"},
		{"wayland display fallback", map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, "Wayland"},
		{"x display fallback", map[string]string{"DISPLAY": ":0"}, "X11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := session(env(tt.vars))
			if err != nil {
				t.Fatalf("session: %v", err)
			}
			if got != tt.want {
				t.Errorf("session = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionHeadless(t *testing.T) {
	_, err := session(env(map[string]string{"XDG_SESSION_TYPE": "tty"}))
	if !errors.Is(err, readout.ErrMetricNotAvailable) {
		t.Fatalf("error = %v, want ErrMetricNotAvailable", err)
	}
}
