package intake

import (
	"errors"

	"github.com/heartmarshall/notedefs/internal/domain"
)

// UserMessage returns the transient notice shown for a refused submission.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return "This definition is already being saved."
	case errors.Is(err, domain.ErrMissingValue):
		return "Please fill in a definition value"
	case errors.Is(err, domain.ErrNoFileChosen):
		return "Please choose a definition file. If you do not have any definition files, please create one."
	case errors.Is(err, domain.ErrNoFolderChosen):
		return "Please choose a folder for the atomic definition."
	case errors.Is(err, domain.ErrInvalidStrategy):
		return "Invalid file type selected."
	case errors.Is(err, domain.ErrSessionClosed):
		return "This form has already been closed."
	default:
		return "Unable to add definition."
	}
}
