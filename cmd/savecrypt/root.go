package savecrypt

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/savecrypt/internal/version"
	"github.com/arthur-debert/savecrypt/pkg/config"
	"github.com/arthur-debert/savecrypt/pkg/conflict"
	"github.com/arthur-debert/savecrypt/pkg/credential"
	"github.com/arthur-debert/savecrypt/pkg/dispatcher"
	"github.com/arthur-debert/savecrypt/pkg/engine"
	"github.com/arthur-debert/savecrypt/pkg/errors"
	"github.com/arthur-debert/savecrypt/pkg/logging"
	"github.com/arthur-debert/savecrypt/pkg/paths"
	"github.com/arthur-debert/savecrypt/pkg/types"
	"github.com/arthur-debert/savecrypt/pkg/ui"
	"github.com/arthur-debert/savecrypt/pkg/ui/confirmations"
	"github.com/arthur-debert/savecrypt/pkg/ui/output/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ExitError carries a non-zero exit status for a run that has already been
// reported to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity     int
		format        string
		defaultConfig bool

		p        paths.Paths
		pathsErr error
	)

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Info(),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			p, pathsErr = paths.New("")
			logPath := ""
			if pathsErr == nil {
				logPath = p.LogFilePath()
			}
			logging.SetupLogger(verbosity, logPath)
			runID := logging.WithRunID()
			log.Debug().Str("command", cmd.Name()).Str("run", runID).Msg("Command started")
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaultConfig {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return err
			}

			fallback := confirmations.NewConsoleNotifier(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

			if pathsErr != nil {
				return reportSetupError(fallback, MsgErrPaths, pathsErr)
			}

			cfg, err := config.LoadConfiguration(p)
			if err != nil {
				return reportSetupError(fallback, MsgErrConfig, err)
			}

			if cmd.Flags().Changed("format") {
				cfg.UI.Format = format
			}
			notifier, err := newNotifier(cmd, cfg.UI.Format)
			if err != nil {
				return reportSetupError(fallback, MsgErrFormat, err)
			}

			d := dispatcher.New(dispatcher.Options{
				Notifier:    notifier,
				Engine:      engine.New(cfg.Engine.Command, p.ProgramFile(cfg.Engine.Script)),
				Credentials: credential.NewResolver(p.ProgramFile(cfg.Credential.File)),
				Conflicts: conflict.NewResolver(notifier,
					conflict.WithMaxRandomAttempts(cfg.Conflict.MaxRandomAttempts)),
			})

			done := logging.LogOperationStart(logging.GetLogger("cmd.root"), "convert")
			code := d.Run(cmd.Context(), args)
			done()

			if code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	rootCmd.Flags().BoolVar(&defaultConfig, "default-config", false, MsgFlagDefaultConfig)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	return rootCmd
}

// Execute runs the root command and returns the process exit status
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Flag parsing errors never reach the dispatcher
	fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
	fmt.Fprintln(os.Stderr)
	_ = rootCmd.Usage()
	return 1
}

// newNotifier resolves the configured format against the command's streams.
// Streams that are not files (as in tests) always get plain text prompts.
func newNotifier(cmd *cobra.Command, configured string) (types.Notifier, error) {
	f, err := ui.ParseFormat(configured)
	if err != nil {
		return nil, err
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if f == ui.FormatAuto {
		f = ui.FormatText
		inFile, inOK := in.(*os.File)
		outFile, outOK := out.(*os.File)
		if inOK && outOK {
			f = ui.Resolve(ui.FormatAuto, inFile, outFile)
		}
	}

	logger := logging.GetLogger("cmd.root")
	logger.Debug().Str("format", f.String()).Msg("Notifier selected")
	return ui.NewNotifier(f, in, out, cmd.ErrOrStderr()), nil
}

// reportSetupError tells the user why the run could not start
func reportSetupError(n types.Notifier, msg string, err error) error {
	log.Error().Err(err).Msg("Setup failed")
	detail := errors.UserMessage(err)
	if cause := stderrors.Unwrap(err); cause != nil {
		detail += ": " + cause.Error()
	}
	if notifyErr := n.Error(dispatcher.TitleError, fmt.Sprintf(msg, detail)); notifyErr != nil {
		log.Error().Err(notifyErr).Msg("Failed to notify user")
	}
	return &ExitError{Code: 1}
}
