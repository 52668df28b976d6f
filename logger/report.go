package logger

import (
	"context"
	"strings"
	"sync/atomic"
	"time"
)

var (
	errorsNasa       int64
	errorsUsgs       int64
	warnsNasa        int64
	warnsUsgs        int64
	nasaFallbacks    int64
	usgsFallbacks    int64
	simulationsCount int64
)

func recordWarn(component string) {
	if strings.Contains(component, "nasa") {
		atomic.AddInt64(&warnsNasa, 1)
	} else if strings.Contains(component, "usgs") {
		atomic.AddInt64(&warnsUsgs, 1)
	}
}

func recordError(component string) {
	if strings.Contains(component, "nasa") {
		atomic.AddInt64(&errorsNasa, 1)
	} else if strings.Contains(component, "usgs") {
		atomic.AddInt64(&errorsUsgs, 1)
	}
}

// IncrementNasaFallback records one substitution of the builtin catalog for
// a failed or degraded NASA lookup.
func IncrementNasaFallback() {
	atomic.AddInt64(&nasaFallbacks, 1)
}

// IncrementUsgsFallback records one substitution of the bounding-box
// heuristic for a failed or degraded USGS lookup.
func IncrementUsgsFallback() {
	atomic.AddInt64(&usgsFallbacks, 1)
}

// IncrementSimulation records one completed simulation request.
func IncrementSimulation() {
	atomic.AddInt64(&simulationsCount, 1)
}

func startReport(ctx context.Context, log *Log, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				logReport(log)
			}
		}
	}()
}

// StartReport begins periodic logging of source-failure and simulation
// statistics.
func StartReport(ctx context.Context, log *Log, interval time.Duration) {
	startReport(ctx, log, interval)
}

func logReport(log *Log) {
	entry := log.WithComponent("report")
	entry.WithFields(Fields{
		"errors_nasa":    atomic.LoadInt64(&errorsNasa),
		"errors_usgs":    atomic.LoadInt64(&errorsUsgs),
		"warns_nasa":     atomic.LoadInt64(&warnsNasa),
		"warns_usgs":     atomic.LoadInt64(&warnsUsgs),
		"nasa_fallbacks": atomic.LoadInt64(&nasaFallbacks),
		"usgs_fallbacks": atomic.LoadInt64(&usgsFallbacks),
		"simulations":    atomic.LoadInt64(&simulationsCount),
	}).Info("periodic report")

	entry.LogMetric("SimulationsServed", atomic.LoadInt64(&simulationsCount), "counter", nil)
	entry.LogMetric("NasaFallbacks", atomic.LoadInt64(&nasaFallbacks), "counter", nil)
	entry.LogMetric("UsgsFallbacks", atomic.LoadInt64(&usgsFallbacks), "counter", nil)
}
