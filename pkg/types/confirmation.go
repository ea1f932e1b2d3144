package types

import "fmt"

// ConflictDecision is the user's choice when an output path already exists
type ConflictDecision string

const (
	DecisionOverwrite ConflictDecision = "overwrite"
	DecisionRename    ConflictDecision = "rename"
	DecisionCancel    ConflictDecision = "cancel"
)

// ConflictDecisions lists the choices in the order they are offered
var ConflictDecisions = []ConflictDecision{DecisionOverwrite, DecisionRename, DecisionCancel}

// Label is the button text shown for the decision
func (d ConflictDecision) Label() string {
	switch d {
	case DecisionOverwrite:
		return "Overwrite"
	case DecisionRename:
		return "Rename"
	case DecisionCancel:
		return "Cancel"
	default:
		return string(d)
	}
}

// ParseConflictDecision maps a label or its first letter to a decision
func ParseConflictDecision(s string) (ConflictDecision, error) {
	switch s {
	case "overwrite", "Overwrite", "o", "O":
		return DecisionOverwrite, nil
	case "rename", "Rename", "r", "R":
		return DecisionRename, nil
	case "cancel", "Cancel", "c", "C":
		return DecisionCancel, nil
	default:
		return "", fmt.Errorf("unknown conflict decision: %q", s)
	}
}

// Notifier presents outcomes and choices to the person running the tool.
type Notifier interface {
	// Info shows an informational message that needs one acknowledgment
	Info(title, message string) error
	// Error shows an error message that needs one acknowledgment
	Error(title, message string) error
	// Progress shows a transient status line
	Progress(message string)
	// ChooseConflictDisposition asks what to do about an existing output file
	ChooseConflictDisposition(fileName string) (ConflictDecision, error)
}
