// pkg/kernel/kernel_unix.go
//go:build linux || darwin || netbsd || freebsd

package kernel

import (
	"golang.org/x/sys/unix"

	"github.com/sysfacts/sysfacts/pkg/readout"
)

// Readout reads kernel information through uname(2).
type Readout struct{}

func New() *Readout {
	return &Readout{}
}

func uname() (*unix.Utsname, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, readout.Otherf("kernel", "uname: %v", err)
	}
	return &uts, nil
}

func (r *Readout) OSType() (string, error) {
	uts, err := uname()
	if err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Sysname[:]), nil
}

func (r *Readout) OSRelease() (string, error) {
	uts, err := uname()
	if err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}

func (r *Readout) PrettyKernel() (string, error) {
	uts, err := uname()
	if err != nil {
		return "", err
	}
	return prettyKernel(
		unix.ByteSliceToString(uts.Sysname[:]),
		unix.ByteSliceToString(uts.Release[:]),
	)
}
