// Package types defines the core types and interfaces used throughout savecrypt.
// This includes the collaborator interfaces (Notifier, Engine) as well as
// data structures like ConversionJob, ProcessOutcome and ConflictDecision.
package types
