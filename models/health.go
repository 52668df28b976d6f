package models

// Per-service health statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusError    = "error"
	StatusDisabled = "disabled"
	StatusUnknown  = "unknown"
)

// ServiceStatus is the probe outcome for one external source.
type ServiceStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// HealthSnapshot maps service names to probe outcomes with one aggregated
// overall status.
type HealthSnapshot struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
}
