//go:build linux && !openwrt

package battery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

func fakeSupply(t *testing.T, values map[string]string) *Readout {
	t.Helper()
	dir := t.TempDir()

	bat := filepath.Join(dir, "BAT0")
	if err := os.MkdirAll(bat, 0o755); err != nil {
		t.Fatal(err)
	}
	// An adapter entry that must be skipped.
	if err := os.MkdirAll(filepath.Join(dir, "ADP1"), 0o755); err != nil {
		t.Fatal(err)
	}

	for name, value := range values {
		if err := os.WriteFile(filepath.Join(bat, name), []byte(value+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return &Readout{supplyDir: dir}
}

func TestPercentage(t *testing.T) {
	r := fakeSupply(t, map[string]string{"capacity": "87"})

	pct, err := r.Percentage()
	if err != nil {
		t.Fatal(err)
	}
	if pct != 87 {
		t.Fatalf("Percentage() = %d, want 87", pct)
	}
}

func TestPercentage_Garbage(t *testing.T) {
	r := fakeSupply(t, map[string]string{"capacity": "unknown"})

	if _, err := r.Percentage(); err == nil {
		t.Fatal("expected an error for a non-numeric capacity")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want readout.BatteryState
	}{
		{"Charging", readout.Charging},
		{"Discharging", readout.Discharging},
		{"Full", readout.Discharging},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := fakeSupply(t, map[string]string{"status": tt.raw})
			got, err := r.Status()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	r := fakeSupply(t, map[string]string{
		"energy_full":        "45000000",
		"energy_full_design": "57500000",
	})

	health, err := r.Health()
	if err != nil {
		t.Fatal(err)
	}
	if health != 78 {
		t.Fatalf("Health() = %d, want 78", health)
	}
}

func TestHealth_ClampsAboveDesign(t *testing.T) {
	r := fakeSupply(t, map[string]string{
		"energy_full":        "60000000",
		"energy_full_design": "57500000",
	})

	health, err := r.Health()
	if err != nil {
		t.Fatal(err)
	}
	if health != 100 {
		t.Fatalf("Health() = %d, want 100", health)
	}
}

func TestNoBattery(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "ADP1"), 0o755); err != nil {
		t.Fatal(err)
	}
	r := &Readout{supplyDir: dir}

	if _, err := r.Percentage(); err == nil {
		t.Fatal("expected an error on a host without batteries")
	}
}
