package engine

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/arthur-debert/savecrypt/pkg/logging"
	"github.com/arthur-debert/savecrypt/pkg/types"
)

// ProcessEngine runs the transform script through an interpreter
type ProcessEngine struct {
	command string
	script  string
}

var _ types.Engine = (*ProcessEngine)(nil)

// New creates a ProcessEngine running script with command, e.g.
// New("python3", "/opt/savecrypt/blcrypt.py")
func New(command, script string) *ProcessEngine {
	return &ProcessEngine{command: command, script: script}
}

// Transform runs the tool for job and blocks until it exits. Failing to
// start the tool is reported through the outcome, never as a panic.
func (e *ProcessEngine) Transform(ctx context.Context, job types.ConversionJob) types.ProcessOutcome {
	logger := logging.GetLogger("engine")

	if _, err := os.Stat(e.script); err != nil {
		return types.ProcessOutcome{
			DiagnosticText: filepath.Base(e.script) + " not found in script directory",
		}
	}

	args, err := BuildArgs(e.script, job)
	if err != nil {
		return types.ProcessOutcome{DiagnosticText: err.Error()}
	}

	logger.Debug().
		Str("command", e.command).
		Str("direction", string(job.Direction())).
		Str("input", job.InputPath).
		Str("output", job.OutputPath).
		Msg("Executing command")
	done := logging.LogOperationStart(logger, "transform")
	defer done()

	cmd := exec.CommandContext(ctx, e.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if stdout.Len() > 0 {
		logger.Debug().Str("stdout", stdout.String()).Msg("Transform output")
	}

	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			logger.Warn().Int("exitCode", exitErr.ExitCode()).Str("stderr", stderr.String()).Msg("Transform failed")
			return types.ProcessOutcome{Launched: true, DiagnosticText: stderr.String()}
		}
		logger.Error().Err(err).Msg("Transform could not be started")
		return types.ProcessOutcome{DiagnosticText: err.Error()}
	}

	return types.ProcessOutcome{Launched: true, Succeeded: true, DiagnosticText: stderr.String()}
}
