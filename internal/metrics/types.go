package metrics

import "time"

// Snapshot is a point-in-time reading of all tracked metrics.
// Immutable once captured; produced only by a Provider.
type Snapshot struct {
	// CPU
	CPUPercent float64
	Load1      float64
	Load5      float64
	Load15     float64

	// Memory
	MemoryUsed  uint64
	MemoryTotal uint64
	SwapUsed    uint64
	SwapTotal   uint64

	// Network: cumulative byte counters per tracked interface.
	Interfaces []InterfaceCounters

	// Timestamp for rate calculations
	Timestamp time.Time
}

// InterfaceCounters holds the cumulative I/O counters for one interface.
type InterfaceCounters struct {
	Name    string
	RxBytes uint64
	TxBytes uint64
}

// HostInfo describes the machine being monitored. Collected once at
// startup; shown on the info line.
type HostInfo struct {
	OS     string
	Kernel string
	Uptime time.Duration
}
