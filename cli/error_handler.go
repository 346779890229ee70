package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/rolodex/errors"
	"github.com/grovetools/rolodex/tui/theme"
)

// ErrorHandler turns errors into user-friendly messages.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a handler that writes to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message chosen by the error's code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	red := theme.DefaultTheme.Error
	muted := theme.DefaultTheme.Muted

	details := map[string]interface{}{}
	if re, ok := err.(*errors.RolodexError); ok && re.Details != nil {
		details = re.Details
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s configuration not found\n", red.Render("Error:"))
		fmt.Fprintln(h.Out, muted.Render("Create a rolodex.yml, or run without --config to use the defaults."))

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "%s invalid configuration: %v\n", red.Render("Error:"), err)
		fmt.Fprintln(h.Out, muted.Render("Run 'rolodex schema' to see the accepted settings."))

	case errors.ErrCodeSnapshotRead:
		fmt.Fprintf(h.Out, "%s cannot read records from %v\n", red.Render("Error:"), details["path"])
		fmt.Fprintln(h.Out, muted.Render("Fix or remove the snapshot file; it is recreated from the seed records."))

	case errors.ErrCodeSnapshotWrite:
		fmt.Fprintf(h.Out, "%s cannot write records to %v\n", red.Render("Error:"), details["path"])
		fmt.Fprintln(h.Out, muted.Render("Check permissions or set store.path in rolodex.yml."))

	default:
		fmt.Fprintf(h.Out, "%s %v\n", red.Render("Error:"), err)
	}

	if h.Verbose {
		if re, ok := err.(*errors.RolodexError); ok {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", re.ToJSON())
		}
	}
	return err
}
