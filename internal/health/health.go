package health

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/cache"
)

// Pinger is the connectivity probe the checker runs against the
// database. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	db Pinger
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

// SystemStats is the extended payload for the detailed health endpoint.
type SystemStats struct {
	CPUPercent  float64 `json:"cpu_percent"`
	MemUsedMB   uint64  `json:"mem_used_mb"`
	MemTotalMB  uint64  `json:"mem_total_mb"`
	MemPercent  float64 `json:"mem_percent"`
	DiskUsedGB  float64 `json:"disk_used_gb"`
	DiskTotalGB float64 `json:"disk_total_gb"`
	DiskPercent float64 `json:"disk_percent"`
}

type DetailedHealth struct {
	HealthStatus
	Cache  string      `json:"cache"`
	System SystemStats `json:"system"`
}

func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	dbHealth := h.checkDatabase()

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
	}
}

// CheckDetailed adds cache status and host resource usage on top of the
// basic check. A missing cache does not fail the check; the server runs
// without one. Stat collection failures leave zeroes.
func (h *HealthChecker) CheckDetailed() DetailedHealth {
	result := DetailedHealth{HealthStatus: h.CheckBasic()}

	result.Cache = "unavailable"
	if cache.Available() {
		result.Cache = "connected"
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		result.System.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		result.System.MemUsedMB = vm.Used / 1024 / 1024
		result.System.MemTotalMB = vm.Total / 1024 / 1024
		result.System.MemPercent = vm.UsedPercent
	}
	if du, err := disk.Usage("/"); err == nil {
		result.System.DiskUsedGB = float64(du.Used) / 1024 / 1024 / 1024
		result.System.DiskTotalGB = float64(du.Total) / 1024 / 1024 / 1024
		result.System.DiskPercent = du.UsedPercent
	}

	return result
}

func (h *HealthChecker) checkDatabase() DatabaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return DatabaseHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
