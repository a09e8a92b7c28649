package telemetry

const EnvTelemetry = "MB_TELEMETRY"
const EnvOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

// constants for telemetry config flag
const (
	TelemetryNone = "none"
	TelemetryInfo = "info"
)

var TelemetryLevels = []string{TelemetryNone, TelemetryInfo}
