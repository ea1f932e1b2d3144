package types

import "context"

// ProcessOutcome is the result of one transform engine invocation
type ProcessOutcome struct {
	// Launched is false when the process could not be started at all
	Launched bool
	// Succeeded is true only for a zero exit status
	Succeeded bool
	// DiagnosticText holds the captured error stream, or the launch error
	DiagnosticText string
}

// Engine performs the actual encode or decode of a save file
type Engine interface {
	Transform(ctx context.Context, job ConversionJob) ProcessOutcome
}
