// pkg/memory/memory_linux.go
//go:build linux

package memory

import "github.com/shirou/gopsutil/v3/mem"

// usedKiB subtracts everything the kernel can hand back under pressure,
// matching what free(1) reports as "used".
func usedKiB(vm *mem.VirtualMemoryStat) uint64 {
	reclaimable := vm.Free + vm.Cached + vm.Sreclaimable + vm.Buffers
	if reclaimable > vm.Total {
		return 0
	}
	return kib(vm.Total - reclaimable)
}

func (r *Readout) Buffers() (uint64, error) {
	vm, err := virtualMemory()
	if err != nil {
		return 0, err
	}
	return kib(vm.Buffers), nil
}

func (r *Readout) Cached() (uint64, error) {
	vm, err := virtualMemory()
	if err != nil {
		return 0, err
	}
	return kib(vm.Cached), nil
}

func (r *Readout) Reclaimable() (uint64, error) {
	vm, err := virtualMemory()
	if err != nil {
		return 0, err
	}
	return kib(vm.Sreclaimable), nil
}
