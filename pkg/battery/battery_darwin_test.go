//go:build darwin

package battery

import (
	"testing"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

func TestParsePmset(t *testing.T) {
	tests := []struct {
		name      string
		out       string
		wantPct   uint8
		wantState readout.BatteryState
		wantErr   bool
	}{
		{
			name:      "discharging",
			out:       "Now drawing from 'Battery Power'\n -InternalBattery-0 (id=1234)\t87%; discharging; 4:32 remaining present: true\n",
			wantPct:   87,
			wantState: readout.Discharging,
		},
		{
			name:      "charging",
			out:       "Now drawing from 'AC Power'\n -InternalBattery-0 (id=1234)\t42%; charging; 1:10 remaining present: true\n",
			wantPct:   42,
			wantState: readout.Charging,
		},
		{
			name:    "desktop",
			out:     "Now drawing from 'AC Power'\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, state, err := parsePmset(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if pct != tt.wantPct || state != tt.wantState {
				t.Fatalf("parsePmset() = (%d, %q), want (%d, %q)", pct, state, tt.wantPct, tt.wantState)
			}
		})
	}
}
