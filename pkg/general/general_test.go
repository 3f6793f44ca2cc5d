// pkg/general/general_test.go

package general

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

func TestDesktopEnvironment(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"xdg current desktop", map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"}, "GNOME"},
		{"desktop session fallback", map[string]string{"DESKTOP_SESSION": "plasma"}, "plasma"},
		{"xdg wins over session", map[string]string{
			"XDG_CURRENT_DESKTOP": "KDE",
			"DESKTOP_SESSION":     "gnome",
		}, "KDE"},
		{"path value reduced to base", map[string]string{
			"DESKTOP_SESSION": "/usr/share/xsessions/cinnamon",
		}, "cinnamon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := desktopEnvironment(env(tt.vars))
			if err != nil {
				t.Fatalf("desktopEnvironment: %v", err)
			}
			if got != tt.want {
				t.Errorf("desktopEnvironment = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDesktopEnvironmentUnset(t *testing.T) {
	_, err := desktopEnvironment(env(nil))
	if !errors.Is(err, readout.ErrMetricNotAvailable) {
		t.Fatalf("error = %v, want ErrMetricNotAvailable", err)
	}
}

func TestDesktopEnvironmentXinitrc(t *testing.T) {
	for _, session := range []string{"/home/u/.xinitrc", ".xinitrc", "xinitrc"} {
		_, err := desktopEnvironment(env(map[string]string{
			"DESKTOP_SESSION": session,
		}))
		if err == nil {
			t.Fatalf("DESKTOP_SESSION=%q: expected an error for an xinitrc session", session)
		}
		if !readout.IsWarning(err) {
			t.Errorf("DESKTOP_SESSION=%q: error %v is not marked as a warning", session, err)
		}
	}
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"iterm", map[string]string{"TERM_PROGRAM": "iTerm.app"}, "iTerm2"},
		{"apple terminal", map[string]string{"TERM_PROGRAM": "Apple_Terminal"}, "Apple Terminal"},
		{"unknown program passes through", map[string]string{"TERM_PROGRAM": "WezTerm"}, "WezTerm"},
		{"term fallback", map[string]string{"TERM": "xterm-256color"}, "xterm-256color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := terminal(env(tt.vars))
			if err != nil {
				t.Fatalf("terminal: %v", err)
			}
			if got != tt.want {
				t.Errorf("terminal = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerminalDumb(t *testing.T) {
	_, err := terminal(env(map[string]string{"TERM": "dumb"}))
	if !errors.Is(err, readout.ErrMetricNotAvailable) {
		t.Fatalf("error = %v, want ErrMetricNotAvailable", err)
	}
}

func TestShell(t *testing.T) {
	vars := env(map[string]string{"SHELL": "/usr/bin/zsh"})

	rel, err := shell(readout.ShellRelative, vars)
	if err != nil {
		t.Fatalf("shell relative: %v", err)
	}
	if rel != "zsh" {
		t.Errorf("relative shell = %q, want zsh", rel)
	}

	abs, err := shell(readout.ShellAbsolute, vars)
	if err != nil {
		t.Fatalf("shell absolute: %v", err)
	}
	if abs != "/usr/bin/zsh" {
		t.Errorf("absolute shell = %q, want /usr/bin/zsh", abs)
	}
}

func TestShellUnset(t *testing.T) {
	_, err := shell(readout.ShellRelative, env(nil))
	if !errors.Is(err, readout.ErrMetricNotAvailable) {
		t.Fatalf("error = %v, want ErrMetricNotAvailable", err)
	}
}
