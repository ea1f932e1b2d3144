// Package confirmations provides Notifier implementations that show
// outcomes and ask the user what to do about an existing output file.
package confirmations

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/savecrypt/pkg/types"
	"github.com/arthur-debert/savecrypt/pkg/ui/output/styles"
)

// ConsoleNotifier implements types.Notifier with plain line-based prompts
type ConsoleNotifier struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

var _ types.Notifier = (*ConsoleNotifier)(nil)

// NewConsoleNotifier creates a console notifier reading answers from in
func NewConsoleNotifier(in io.Reader, out, errOut io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// successTitle is the only Info title rendered with the success style
const successTitle = "Success"

// Info prints an informational message
func (d *ConsoleNotifier) Info(title, message string) error {
	style := "Info"
	if title == successTitle {
		style = "Success"
	}
	_, err := fmt.Fprintf(d.out, "%s %s\n", styles.Render(style, title+":"), message)
	return err
}

// Error prints an error message to the error stream
func (d *ConsoleNotifier) Error(title, message string) error {
	_, err := fmt.Fprintf(d.errOut, "%s %s\n", styles.Render("Error", title+":"), message)
	return err
}

// Progress prints a transient status line
func (d *ConsoleNotifier) Progress(message string) {
	_, _ = fmt.Fprintln(d.out, styles.Render("Muted", message))
}

// ChooseConflictDisposition asks for overwrite, rename or cancel. An empty
// answer or a closed input cancels, like dismissing the dialog.
func (d *ConsoleNotifier) ChooseConflictDisposition(fileName string) (types.ConflictDecision, error) {
	_, _ = fmt.Fprintf(d.out, "%s %s already exists!\n",
		styles.Render("Warning", "WARNING:"), styles.Render("FilePath", fileName))

	for {
		_, _ = fmt.Fprint(d.out, styles.Render("Prompt", "[o]verwrite, [r]ename or [c]ancel? [c]: "))

		line, err := d.in.ReadString('\n')
		if err != nil && !stderrors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read user input: %w", err)
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "" {
			if err != nil {
				_, _ = fmt.Fprintln(d.out)
			}
			return types.DecisionCancel, nil
		}

		decision, parseErr := types.ParseConflictDecision(answer)
		if parseErr == nil {
			return decision, nil
		}
		if err != nil {
			// Input closed after an unrecognized answer
			_, _ = fmt.Fprintln(d.out)
			return types.DecisionCancel, nil
		}
		_, _ = fmt.Fprintf(d.out, "Please answer o, r or c.\n")
	}
}
