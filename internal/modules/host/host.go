package host

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// Summary содержит базовые сведения об узле.
type Summary struct {
	Hostname        string    `json:"hostname"`
	Platform        string    `json:"platform"`
	PlatformVersion string    `json:"platformVer"`
	Kernel          string    `json:"kernel"`
	UptimeSec       uint64    `json:"uptime_sec"`
	BootTime        time.Time `json:"boot_time"`
	MemTotal        uint64    `json:"mem_total"`
	MemUsed         uint64    `json:"mem_used"`
	MemUsedPct      float64   `json:"mem_used_pct"`
	Load1           float64   `json:"load1"`
	Load5           float64   `json:"load5"`
	Load15          float64   `json:"load15"`
}

// Collector собирает Summary через gopsutil.
type Collector struct {
	hostInfo func(ctx context.Context) (*host.InfoStat, error)
	memInfo  func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	loadInfo func(ctx context.Context) (*load.AvgStat, error)
}

// NewCollector создает сборщик поверх gopsutil.
func NewCollector() *Collector {
	return &Collector{
		hostInfo: host.InfoWithContext,
		memInfo:  mem.VirtualMemoryWithContext,
		loadInfo: load.AvgWithContext,
	}
}

// Summary собирает сведения; нагрузка на Windows может быть недоступна и тогда остается нулевой.
func (c *Collector) Summary(ctx context.Context) (Summary, error) {
	hInfo, err := c.hostInfo(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("host info: %w", err)
	}
	vm, err := c.memInfo(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("memory info: %w", err)
	}
	s := Summary{
		Hostname:        hInfo.Hostname,
		Platform:        hInfo.Platform,
		PlatformVersion: hInfo.PlatformVersion,
		Kernel:          hInfo.KernelVersion,
		UptimeSec:       hInfo.Uptime,
		BootTime:        time.Unix(int64(hInfo.BootTime), 0).UTC(),
		MemTotal:        vm.Total,
		MemUsed:         vm.Used,
		MemUsedPct:      vm.UsedPercent,
	}
	if ld, err := c.loadInfo(ctx); err == nil {
		s.Load1, s.Load5, s.Load15 = ld.Load1, ld.Load5, ld.Load15
	}
	return s, nil
}

// Lines форматирует Summary для вывода оператору.
func (s Summary) Lines() []string {
	const mib = 1024 * 1024
	return []string{
		fmt.Sprintf("Host:     %s", s.Hostname),
		fmt.Sprintf("Platform: %s %s", s.Platform, s.PlatformVersion),
		fmt.Sprintf("Kernel:   %s", s.Kernel),
		fmt.Sprintf("Uptime:   %s (boot %s)", time.Duration(s.UptimeSec)*time.Second, s.BootTime.Format(time.RFC3339)),
		fmt.Sprintf("Memory:   %d/%d MiB (%.1f%%)", s.MemUsed/mib, s.MemTotal/mib, s.MemUsedPct),
		fmt.Sprintf("Load:     %.2f %.2f %.2f", s.Load1, s.Load5, s.Load15),
	}
}
