package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const systemNamespace = "marketplace"

var (
	hostCPUPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: systemNamespace,
		Name:      "host_cpu_usage_percent",
		Help:      "Host CPU utilisation sampled over one second",
	})

	hostMemoryUsed = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: systemNamespace,
		Name:      "host_memory_used_bytes",
		Help:      "Host memory in use",
	})

	processRSS = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: systemNamespace,
		Name:      "process_rss_bytes",
		Help:      "Resident set size of the service process",
	})

	heapAlloc = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: systemNamespace,
		Name:      "go_heap_alloc_bytes",
		Help:      "Bytes of allocated heap objects",
	})

	goroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: systemNamespace,
		Name:      "goroutines",
		Help:      "Number of live goroutines, SSE streams included",
	})
)

// StartSystemMetricsCollector снимает метрики хоста и процесса каждые interval до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid())) //nolint:gosec // pid влезает в int32
	if err != nil {
		self = nil
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			collectSystemMetrics(ctx, self)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, self *process.Process) {
	if usage, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(usage) > 0 {
		hostCPUPercent.Set(usage[0])
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		hostMemoryUsed.Set(float64(vm.Used))
	}

	if self != nil {
		if info, err := self.MemoryInfoWithContext(ctx); err == nil {
			processRSS.Set(float64(info.RSS))
		}
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	heapAlloc.Set(float64(ms.HeapAlloc))
	goroutines.Set(float64(runtime.NumGoroutine()))
}
