package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ResolverWorkers picks how many asset resolutions to run in parallel:
// one per physical core, capped so a question never waits on more workers
// than there are questions.
func ResolverWorkers(questionCount int) int {
	workers, err := cpu.Counts(false)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > questionCount && questionCount > 0 {
		workers = questionCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// AvailableMemoryMB reports free memory, for the startup banner. Returns
// zero when the probe fails.
func AvailableMemoryMB() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return vm.Available / (1024 * 1024)
}
