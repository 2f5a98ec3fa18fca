package cli

import (
	"github.com/charmbracelet/huh"
)

// Decision is the outcome of a destructive-action confirmation.
type Decision int

const (
	// Declined aborts the action with state unchanged; a normal path, not
	// an error.
	Declined Decision = iota
	// Proceed runs the action as-is.
	Proceed
	// ExportFirst writes an export file and then runs the action.
	ExportFirst
)

// Confirmer gates destructive actions. requireAck demands the explicit
// "I have exported my data" acknowledgement on the plain Proceed choice;
// choosing ExportFirst satisfies the acknowledgement by doing the export.
type Confirmer interface {
	Confirm(message string, requireAck bool) (Decision, error)
}

// HuhConfirmer renders confirmations as terminal forms.
type HuhConfirmer struct{}

func (HuhConfirmer) Confirm(message string, requireAck bool) (Decision, error) {
	proceedLabel := "Proceed"
	if requireAck {
		proceedLabel = "I have exported my data and want to proceed"
	}

	choice := Declined
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[Decision]().
			Title("⚠️  Are you sure?").
			Description(message+"\n\nThis action cannot be undone. Make sure you have exported your data!").
			Options(
				huh.NewOption("💾 Export Now & Proceed", ExportFirst),
				huh.NewOption(proceedLabel, Proceed),
				huh.NewOption("Cancel", Declined),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return Declined, err
	}
	return choice, nil
}

// AutoConfirmer approves everything without exporting; used by --yes flags
// and tests.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string, bool) (Decision, error) {
	return Proceed, nil
}
