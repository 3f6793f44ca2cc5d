// pkg/general/general_windows.go
//go:build windows

package general

import (
	"golang.org/x/sys/windows/registry"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

func (r *Readout) Distribution() (string, error) {
	return "", readout.ErrNotImplemented
}

func (r *Readout) OSName() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return "", readout.Otherf("general", "open CurrentVersion: %v", err)
	}
	defer key.Close()

	name, _, err := key.GetStringValue("ProductName")
	if err != nil {
		return "", readout.Otherf("general", "read ProductName: %v", err)
	}
	return name, nil
}

func (r *Readout) WindowManager() (string, error) {
	return "Desktop Window Manager", nil
}
