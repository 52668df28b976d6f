package logger

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
)

func TestWithComponent(t *testing.T) {
	log := Logger()
	entry := log.WithComponent("test")
	if v, ok := entry.Entry.Data["component"]; !ok || v != "test" {
		t.Fatalf("component field missing: %v", entry.Entry.Data)
	}
}

func TestConfigureInvalidLevel(t *testing.T) {
	// Ensure environment variables do not override the provided level
	t.Setenv("LOG_LEVEL", "")

	log := Logger()
	if err := log.Configure("invalid", "json", "stdout", 0); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestConfigureInvalidFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	log := Logger()
	if err := log.Configure("info", "xml", "stdout", 0); err == nil {
		t.Fatalf("expected error for invalid format")
	}
}

func TestWarnRecordsSourceCounter(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	log := Logger()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	before := atomic.LoadInt64(&warnsNasa)
	log.WithComponent("nasa_reader").Warn("lookup degraded")
	if got := atomic.LoadInt64(&warnsNasa); got != before+1 {
		t.Errorf("nasa warn counter = %d, want %d", got, before+1)
	}
	if !strings.Contains(buf.String(), "lookup degraded") {
		t.Errorf("warn not written: %s", buf.String())
	}
}

func TestErrorRecordsSourceCounter(t *testing.T) {
	log := Logger()
	log.SetOutput(&bytes.Buffer{})

	before := atomic.LoadInt64(&errorsUsgs)
	log.WithComponent("usgs_reader").Error("geoserve unreachable")
	if got := atomic.LoadInt64(&errorsUsgs); got != before+1 {
		t.Errorf("usgs error counter = %d, want %d", got, before+1)
	}
}

func TestLogMetricEmitsStructuredEntry(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	log := Logger()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.WithComponent("report").LogMetric("SimulationsServed", int64(3), "", nil)

	out := buf.String()
	for _, want := range []string{
		`"metric":"SimulationsServed"`,
		`"metric_type":"counter"`,
		`"value":3`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metric entry missing %s: %s", want, out)
		}
	}
}

func TestLogReportPublishesCounters(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	log := Logger()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	IncrementSimulation()
	logReport(log)

	out := buf.String()
	if !strings.Contains(out, "periodic report") {
		t.Errorf("summary line missing: %s", out)
	}
	for _, want := range []string{"SimulationsServed", "NasaFallbacks", "UsgsFallbacks"} {
		if !strings.Contains(out, `"metric":"`+want+`"`) {
			t.Errorf("counter metric %s missing: %s", want, out)
		}
	}
}
