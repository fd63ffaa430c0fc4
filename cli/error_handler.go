package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/homeshell/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a homeshell.yml or run without one for defaults.\n")
		return err

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "❌ Configuration is invalid: %v\n", err)
		return err

	case errors.ErrCodeDeepLinkPayloadMissing:
		fmt.Fprintf(os.Stderr, "❌ Deep link request carries no intent URI.\n")
		fmt.Fprintf(os.Stderr, "Pass an encoded URI, e.g. --deep-link 'intent:#Intent;action=homeshell.action.NETWORK;end'\n")
		return err

	case errors.ErrCodeDeepLinkParse, errors.ErrCodeIntentURISyntax:
		if shellErr, ok := err.(*errors.ShellError); ok {
			fmt.Fprintf(os.Stderr, "❌ Could not parse intent URI %v\n", shellErr.Details["uri"])
		} else {
			fmt.Fprintf(os.Stderr, "❌ Could not parse intent URI: %v\n", err)
		}
		return err

	case errors.ErrCodeDeepLinkUnresolved:
		if shellErr, ok := err.(*errors.ShellError); ok {
			fmt.Fprintf(os.Stderr, "❌ No destination registered for action '%v'\n", shellErr.Details["action"])
		} else {
			fmt.Fprintf(os.Stderr, "❌ No destination registered for the deep link\n")
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if shellErr, ok := err.(*errors.ShellError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", shellErr.ToJSON())
			}
		}
		return err
	}
}
