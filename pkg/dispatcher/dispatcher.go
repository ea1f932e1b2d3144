// Package dispatcher drives a single conversion run: it classifies the
// input, resolves the identity and output path, runs the transform engine
// and reports the outcome.
package dispatcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/savecrypt/pkg/errors"
	"github.com/arthur-debert/savecrypt/pkg/logging"
	"github.com/arthur-debert/savecrypt/pkg/types"
)

// User-facing titles and messages
const (
	TitleSuccess   = "Success"
	TitleError     = "Error"
	TitleCancelled = "Cancelled"

	MsgUsage          = "Please drag and drop a .yaml or .sav file onto this program"
	MsgFileNotFound   = "File not found: %s"
	MsgInvalidType    = "Invalid file type. Only .yaml and .sav files are supported."
	MsgSavingAs       = "Saving as: %s"
	MsgWritten        = "Successfully written to %s"
	MsgCommandFailed  = "Command failed: %s"
	MsgLaunchFailed   = "Failed to run command: %s"
	MsgUnknownFailure = "Unknown error occurred"
)

// IdentityResolver supplies the identity token for the engine
type IdentityResolver interface {
	ResolveIdentity() (string, error)
}

// OutputResolver finalizes an output path that may already exist
type OutputResolver interface {
	ResolveOutputPath(proposed string) (string, error)
}

// Options contains the collaborators a Dispatcher needs
type Options struct {
	Notifier    types.Notifier
	Engine      types.Engine
	Credentials IdentityResolver
	Conflicts   OutputResolver
}

// Dispatcher runs conversions. It holds no state between runs.
type Dispatcher struct {
	notifier    types.Notifier
	engine      types.Engine
	credentials IdentityResolver
	conflicts   OutputResolver
}

// New creates a Dispatcher from opts
func New(opts Options) *Dispatcher {
	return &Dispatcher{
		notifier:    opts.Notifier,
		engine:      opts.Engine,
		credentials: opts.Credentials,
		conflicts:   opts.Conflicts,
	}
}

// Run converts the file named by args[0] and returns the process exit
// status. Every outcome is reported through the Notifier before returning.
func (d *Dispatcher) Run(ctx context.Context, args []string) int {
	job, err := d.Convert(ctx, args)
	d.report(job, err)
	return errors.ExitCode(err)
}

// Convert performs the conversion without reporting it. A cancelled
// conflict is returned as an ErrConflictCancelled error.
func (d *Dispatcher) Convert(ctx context.Context, args []string) (types.ConversionJob, error) {
	logger := logging.GetLogger("dispatcher")

	if len(args) == 0 {
		return types.ConversionJob{}, errors.New(errors.ErrUsage, MsgUsage)
	}
	if len(args) > 1 {
		logger.Warn().Strs("ignored", args[1:]).Msg("Only the first file is converted")
	}

	inputPath := args[0]
	if _, err := os.Stat(inputPath); err != nil {
		return types.ConversionJob{}, errors.Newf(errors.ErrInputNotFound, MsgFileNotFound, inputPath).
			WithDetail("path", inputPath)
	}

	job, ok := types.NewConversionJob(inputPath)
	if !ok {
		return types.ConversionJob{}, errors.New(errors.ErrUnsupported, MsgInvalidType).
			WithDetail("extension", filepath.Ext(inputPath))
	}

	identity, err := d.credentials.ResolveIdentity()
	if err != nil {
		return job, err
	}
	job.Identity = identity

	// Only the encrypt direction checks for an existing output; decrypt
	// always writes straight to the swapped path.
	if job.Direction() == types.DirectionEncrypt {
		final, err := d.conflicts.ResolveOutputPath(job.OutputPath)
		if err != nil {
			return job, err
		}
		if final != job.OutputPath {
			d.notifier.Progress(fmt.Sprintf(MsgSavingAs, final))
		}
		job.OutputPath = final
	}

	logger.Info().
		Str("direction", string(job.Direction())).
		Str("input", job.InputPath).
		Str("output", job.OutputPath).
		Strs("flags", job.ExtraFlags).
		Msg("Starting conversion")

	d.notifier.Progress(job.Direction().ProgressVerb())
	outcome := d.engine.Transform(ctx, job)

	switch {
	case outcome.Succeeded:
		return job, nil
	case !outcome.Launched:
		return job, errors.Newf(errors.ErrProcessLaunch, MsgLaunchFailed, strings.TrimRight(outcome.DiagnosticText, "\r\n"))
	default:
		diagnostic := strings.TrimRight(outcome.DiagnosticText, "\r\n")
		if diagnostic == "" {
			diagnostic = MsgUnknownFailure
		}
		return job, errors.Newf(errors.ErrProcessFailure, MsgCommandFailed, diagnostic)
	}
}

// report turns the result of Convert into exactly one notification
func (d *Dispatcher) report(job types.ConversionJob, err error) {
	logger := logging.GetLogger("dispatcher")

	var notifyErr error
	switch {
	case err == nil:
		logger.Info().Str("output", job.OutputPath).Msg("Conversion succeeded")
		notifyErr = d.notifier.Info(TitleSuccess, fmt.Sprintf(MsgWritten, filepath.Base(job.OutputPath)))
	case errors.IsErrorCode(err, errors.ErrConflictCancelled):
		logger.Info().Msg("Conversion cancelled by user")
		notifyErr = d.notifier.Info(TitleCancelled, errors.UserMessage(err))
	default:
		logger.Error().Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Conversion failed")
		notifyErr = d.notifier.Error(TitleError, errors.UserMessage(err))
	}

	if notifyErr != nil {
		logger.Error().Err(notifyErr).Msg("Failed to notify user")
	}
}
