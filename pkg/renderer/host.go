package renderer

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// DefaultWorkers returns the number of physical cores, or the number of
// logical CPUs when the core count is unavailable
func DefaultWorkers() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// HostSummary describes the machine a render runs on
func HostSummary() string {
	model := "unknown cpu"
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		model = info[0].ModelName
	}

	memory := "unknown memory"
	if vm, err := mem.VirtualMemory(); err == nil {
		memory = fmt.Sprintf("%.1f GiB", float64(vm.Total)/(1<<30))
	}

	return fmt.Sprintf("%s, %d workers, %s", model, DefaultWorkers(), memory)
}
