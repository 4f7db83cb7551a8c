package models

import "time"

// HostStatus is the health snapshot shown on the dashboard footer card.
type HostStatus struct {
	Hostname      string    `json:"hostname"`
	UptimeSeconds uint64    `json:"uptime_seconds"`
	CPUPercent    float64   `json:"cpu_percent"`
	MemUsedGB     float64   `json:"mem_used_gb"`
	MemTotalGB    float64   `json:"mem_total_gb"`
	MemPercent    float64   `json:"mem_percent"`
	Goroutines    int       `json:"goroutines"`
	Timestamp     time.Time `json:"timestamp"`
}
