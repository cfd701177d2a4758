package service

// Outcomes recorded next to AppError codes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// MetricsRecorder counts ledger operations by outcome.
type MetricsRecorder interface {
	ObserveOperation(operation, outcome string)
}

type noopMetrics struct{}

func (noopMetrics) ObserveOperation(string, string) {}

// NoopMetrics discards every observation.
var NoopMetrics MetricsRecorder = noopMetrics{}
