package services

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"promptstudio/internal/logging"
	"promptstudio/internal/models"
)

const statusGB = 1024 * 1024 * 1024

// GetHostStatus returns the health snapshot for the dashboard footer card
func GetHostStatus() (*models.HostStatus, error) {
	percentages, err := cpu.Percent(0, false)
	if err != nil {
		return nil, err
	}
	cpuPercent := 0.0
	if len(percentages) > 0 {
		cpuPercent = percentages[0]
	}

	virtualMemory, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	info, err := host.Info()
	if err != nil {
		logging.S().Warnf("could not read host info: %v", err)
		info = &host.InfoStat{}
	}

	return &models.HostStatus{
		Hostname:      info.Hostname,
		UptimeSeconds: info.Uptime,
		CPUPercent:    cpuPercent,
		MemUsedGB:     float64(virtualMemory.Used) / statusGB,
		MemTotalGB:    float64(virtualMemory.Total) / statusGB,
		MemPercent:    virtualMemory.UsedPercent,
		Goroutines:    runtime.NumGoroutine(),
		Timestamp:     time.Now(),
	}, nil
}
