// Package metrics reads host resource usage through gopsutil. It is the
// boundary between the monitor and the operating system: everything above
// it consumes immutable Snapshot values through the Provider interface.
package metrics

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"

	"panetop/internal/errors"
)

// Provider interface mahdollistaa mockauksen testeissä
type Provider interface {
	// Refresh collects a new snapshot. A failure is fatal to the caller's
	// sampling loop; there is no retry.
	Refresh() (*Snapshot, error)
	// Host returns static host information.
	Host() (HostInfo, error)
}

// SystemProvider reads metrics from the local OS.
type SystemProvider struct {
	// interfaces is the configured whitelist; empty means all non-loopback.
	interfaces []string
}

// Varmista että SystemProvider toteuttaa interfacen
var _ Provider = (*SystemProvider)(nil)

// NewSystemProvider creates a provider tracking the given interfaces.
// An empty whitelist tracks every non-loopback interface.
func NewSystemProvider(interfaces []string) *SystemProvider {
	return &SystemProvider{interfaces: interfaces}
}

// Refresh collects CPU, memory, swap, load, and network counters.
// CPU usage is the delta since the previous Refresh call, so the first
// snapshot reports 0%.
func (p *SystemProvider) Refresh() (*Snapshot, error) {
	cpuPcts, err := cpu.Percent(0, false)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read CPU usage", "")
	}

	vmem, err := mem.VirtualMemory()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read memory usage", "")
	}

	counters, err := net.IOCounters(true)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read network counters", "")
	}

	snap := &Snapshot{
		MemoryUsed:  vmem.Used,
		MemoryTotal: vmem.Total,
		Interfaces:  filterCounters(counters, p.interfaces),
		Timestamp:   time.Now(),
	}
	if len(cpuPcts) > 0 {
		snap.CPUPercent = cpuPcts[0]
	}

	// Swap and load averages are decoration; missing platform support
	// leaves them at zero instead of ending the session.
	if swap, err := mem.SwapMemory(); err == nil && swap != nil {
		snap.SwapUsed = swap.Used
		snap.SwapTotal = swap.Total
	}
	if avg, err := load.Avg(); err == nil && avg != nil {
		snap.Load1 = avg.Load1
		snap.Load5 = avg.Load5
		snap.Load15 = avg.Load15
	}

	return snap, nil
}

// Host returns OS name, kernel version, and uptime.
func (p *SystemProvider) Host() (HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		return HostInfo{}, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read host information", "")
	}
	return HostInfo{
		OS:     info.Platform,
		Kernel: info.KernelVersion,
		Uptime: time.Duration(info.Uptime) * time.Second,
	}, nil
}

// filterCounters converts gopsutil counters into InterfaceCounters,
// applying the whitelist and skipping loopback interfaces.
func filterCounters(counters []net.IOCountersStat, whitelist []string) []InterfaceCounters {
	allowed := make(map[string]bool, len(whitelist))
	for _, name := range whitelist {
		allowed[name] = true
	}

	var result []InterfaceCounters
	for _, c := range counters {
		if isLoopback(c.Name) {
			continue
		}
		if len(allowed) > 0 && !allowed[c.Name] {
			continue
		}
		result = append(result, InterfaceCounters{
			Name:    c.Name,
			RxBytes: c.BytesRecv,
			TxBytes: c.BytesSent,
		})
	}
	return result
}

// isLoopback reports whether the interface name is a loopback device.
func isLoopback(name string) bool {
	return name == "lo" || name == "lo0"
}
