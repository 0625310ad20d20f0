package observability

import "log/slog"

// Diagnostics records classified provider failures for offline research. It
// never affects control flow: recording happens after classification and the
// caller proceeds with the classified result either way.
type Diagnostics struct {
	logger *slog.Logger
}

// NewDiagnostics creates a diagnostic sink writing through the given logger.
func NewDiagnostics(logger *slog.Logger) *Diagnostics {
	return &Diagnostics{logger: logger}
}

// Record logs one classified provider failure with its raw diagnostic detail.
func (d *Diagnostics) Record(failureCode, command string, status int, message string) {
	d.logger.Warn("provider failure recorded for research",
		"failure_code", failureCode,
		"command", command,
		"status", status,
		"message", message,
	)
}
