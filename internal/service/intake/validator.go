package intake

import "github.com/heartmarshall/notedefs/internal/domain"

// SubmissionValidator decides whether a form snapshot may become a record.
type SubmissionValidator struct{}

// NewSubmissionValidator creates a validator.
func NewSubmissionValidator() *SubmissionValidator {
	return &SubmissionValidator{}
}

// Validate runs the submission checks in order and stops at the first one
// that fails. inFlight reports whether the session is already dispatching.
func (v *SubmissionValidator) Validate(snap FormSnapshot, inFlight bool) error {
	if inFlight {
		return domain.ErrSubmissionInFlight
	}

	var missing []domain.FieldError
	if snap.Word == "" {
		missing = append(missing, domain.FieldError{Field: "word", Message: "required"})
	}
	if snap.Definition == "" {
		missing = append(missing, domain.FieldError{Field: "definition", Message: "required"})
	}
	if len(missing) > 0 {
		return domain.NewRefusal(domain.ErrMissingValue, missing...)
	}

	switch snap.Strategy {
	case domain.StorageConsolidated:
		if snap.File == "" {
			return domain.NewRefusal(domain.ErrNoFileChosen,
				domain.FieldError{Field: "file", Message: "required"})
		}
	case domain.StorageAtomic:
		if snap.Folder == "" {
			return domain.NewRefusal(domain.ErrNoFolderChosen,
				domain.FieldError{Field: "folder", Message: "required"})
		}
	default:
		return domain.NewRefusal(domain.ErrInvalidStrategy,
			domain.FieldError{Field: "strategy", Message: "invalid value"})
	}

	return nil
}
