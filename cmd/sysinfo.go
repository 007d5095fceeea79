package cmd

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// hostInfo summarizes the machine a render ran on
type hostInfo struct {
	CPU    string
	Cores  int
	Memory string
}

// readHostInfo collects CPU and memory details, leaving "unknown" where the platform refuses
func readHostInfo() hostInfo {
	info := hostInfo{CPU: "unknown", Memory: "unknown"}

	if cores, err := cpu.Info(); err != nil {
		logger.Debugf("cpu info unavailable: %v", err)
	} else if len(cores) > 0 {
		info.CPU = cores[0].ModelName
		info.Cores = len(cores)
	}

	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		info.Cores = counts
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		logger.Debugf("memory info unavailable: %v", err)
	} else {
		info.Memory = fmt.Sprintf("%.1f GB (%.0f%% used)", float64(vm.Total)/(1<<30), vm.UsedPercent)
	}

	return info
}
