// sysfacts_test.go
package sysfacts

import "testing"

func TestNew(t *testing.T) {
	facts := New()

	if facts.Battery == nil || facts.Kernel == nil || facts.Memory == nil ||
		facts.General == nil || facts.Product == nil || facts.Processor == nil ||
		facts.Network == nil || facts.Graphical == nil || facts.Packages == nil {
		t.Fatal("New left a readout unset")
	}
}

func TestCountPkgs(t *testing.T) {
	facts := New()

	// Must not panic or fail regardless of what the host has installed.
	counts := facts.Packages.CountPkgs()
	for _, c := range counts {
		if c.Count < 0 {
			t.Errorf("negative count for %s: %d", c.Manager, c.Count)
		}
		if c.Manager == "" {
			t.Error("empty manager name in counts")
		}
	}
}
