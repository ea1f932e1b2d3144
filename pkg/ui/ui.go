// Package ui chooses how savecrypt talks to the person running it: an
// interactive terminal chooser or plain line-based prompts.
package ui

import (
	"io"

	"github.com/arthur-debert/savecrypt/pkg/types"
	"github.com/arthur-debert/savecrypt/pkg/ui/confirmations"
)

// NewNotifier creates the Notifier for a concrete format. FormatAuto must be
// resolved first; it falls back to plain prompts.
func NewNotifier(format Format, in io.Reader, out, errOut io.Writer) types.Notifier {
	switch format {
	case FormatTerminal:
		return confirmations.NewInteractiveNotifier(out)
	default:
		return confirmations.NewConsoleNotifier(in, out, errOut)
	}
}
