// pkg/kernel/kernel_windows.go
//go:build windows

package kernel

import (
	"strconv"

	"golang.org/x/sys/windows/registry"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// Readout reads kernel information from the Windows registry.
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func openCurrentVersion() (registry.Key, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return 0, readout.Otherf("kernel", "open CurrentVersion: %v", err)
	}
	return key, nil
}

func (r *Readout) OSType() (string, error) {
	return "Windows_NT", nil
}

func (r *Readout) OSRelease() (string, error) {
	key, err := openCurrentVersion()
	if err != nil {
		return "", err
	}
	defer key.Close()

	// CurrentMajorVersionNumber is a DWORD on Windows 10 and later.
	major, _, err := key.GetIntegerValue("CurrentMajorVersionNumber")
	if err != nil {
		version, _, verr := key.GetStringValue("CurrentVersion")
		if verr != nil {
			return "", readout.Otherf("kernel", "read CurrentVersion: %v", verr)
		}
		return version, nil
	}

	release := strconv.FormatUint(major, 10)
	if build, _, err := key.GetStringValue("CurrentBuildNumber"); err == nil {
		release += " (" + build + ")"
	}
	return release, nil
}

func (r *Readout) PrettyKernel() (string, error) {
	osType, _ := r.OSType()
	osRelease, err := r.OSRelease()
	if err != nil {
		osRelease = ""
	}
	return prettyKernel(osType, osRelease)
}
