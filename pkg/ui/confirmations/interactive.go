package confirmations

import (
	"fmt"
	"io"

	"github.com/arthur-debert/savecrypt/pkg/types"
	"github.com/pterm/pterm"
)

// SelectFunc shows options and returns the one picked
type SelectFunc func(prompt string, options []string, defaultOption string) (string, error)

// InteractiveNotifier implements types.Notifier with pterm printers and an
// arrow-key chooser for conflicts
type InteractiveNotifier struct {
	selectFn SelectFunc

	success *pterm.PrefixPrinter
	info    *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	errorP  *pterm.PrefixPrinter
}

var _ types.Notifier = (*InteractiveNotifier)(nil)

// NewInteractiveNotifier creates a notifier whose messages go to w and
// whose chooser is pterm's interactive select
func NewInteractiveNotifier(w io.Writer) *InteractiveNotifier {
	return &InteractiveNotifier{
		selectFn: ptermSelect,
		success:  pterm.Success.WithWriter(w),
		info:     pterm.Info.WithWriter(w),
		warning:  pterm.Warning.WithWriter(w),
		errorP:   pterm.Error.WithWriter(w),
	}
}

// WithSelect replaces the chooser, mainly for tests
func (n *InteractiveNotifier) WithSelect(fn SelectFunc) *InteractiveNotifier {
	n.selectFn = fn
	return n
}

// Info shows message under title. Only the success title gets the success
// style.
func (n *InteractiveNotifier) Info(title, message string) error {
	printer := n.info
	if title == successTitle {
		printer = n.success
	}
	printer.WithPrefix(pterm.Prefix{Text: title, Style: printer.Prefix.Style}).Println(message)
	return nil
}

func (n *InteractiveNotifier) Error(title, message string) error {
	n.errorP.WithPrefix(pterm.Prefix{Text: title, Style: n.errorP.Prefix.Style}).Println(message)
	return nil
}

func (n *InteractiveNotifier) Progress(message string) {
	n.info.Println(message)
}

// ChooseConflictDisposition warns about fileName and lets the user pick.
// Cancel is preselected.
func (n *InteractiveNotifier) ChooseConflictDisposition(fileName string) (types.ConflictDecision, error) {
	n.warning.Printfln("%s already exists!", fileName)

	options := make([]string, 0, len(types.ConflictDecisions))
	for _, d := range types.ConflictDecisions {
		options = append(options, d.Label())
	}

	choice, err := n.selectFn("File Exists", options, types.DecisionCancel.Label())
	if err != nil {
		return "", fmt.Errorf("conflict prompt failed: %w", err)
	}
	return types.ParseConflictDecision(choice)
}

func ptermSelect(prompt string, options []string, defaultOption string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(defaultOption).
		Show(prompt)
}
