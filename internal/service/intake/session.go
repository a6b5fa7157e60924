package intake

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/heartmarshall/notedefs/internal/domain"
	"github.com/heartmarshall/notedefs/pkg/ctxutil"
)

// State is the lifecycle state of one form session.
type State string

const (
	StateOpen       State = "OPEN"
	StateEditing    State = "EDITING"
	StateSubmitting State = "SUBMITTING"
	StateClosed     State = "CLOSED"
)

func (s State) String() string { return string(s) }

// Session is the view-model of one add-definition form. It owns the context
// snapshot and the current selections; change events update it, and Submit
// hands an immutable snapshot to validation and dispatch.
//
// A Session is driven from a single event loop and is not safe for
// concurrent use.
type Session struct {
	id      uuid.UUID
	log     *slog.Logger
	docPath string

	context       domain.DefinitionContext
	defaults      Defaults
	fileOptions   []string
	folderOptions []string

	form       FormSnapshot
	state      State
	submitting bool

	validator  *SubmissionValidator
	dispatcher *SubmissionDispatcher
	notices    notifier
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Context returns a copy of the definition context captured at open.
func (s *Session) Context() domain.DefinitionContext { return s.context.Snapshot() }

// Defaults returns the destinations resolved at open.
func (s *Session) Defaults() Defaults { return s.defaults }

// FileOptions lists the consolidated files offered by the file picker.
func (s *Session) FileOptions() []string { return slices.Clone(s.fileOptions) }

// FolderOptions lists the folders offered by the folder picker.
func (s *Session) FolderOptions() []string { return slices.Clone(s.folderOptions) }

// Snapshot returns the current raw form values.
func (s *Session) Snapshot() FormSnapshot { return s.form }

// FilePickerVisible reports whether the consolidated file picker is shown.
func (s *Session) FilePickerVisible() bool {
	return s.form.Strategy == domain.StorageConsolidated
}

// FolderPickerVisible reports whether the atomic folder picker is shown.
func (s *Session) FolderPickerVisible() bool {
	return s.form.Strategy == domain.StorageAtomic
}

// SetWord replaces the headword text.
func (s *Session) SetWord(v string) { s.edit(func(f *FormSnapshot) { f.Word = v }) }

// SetAliases replaces the raw comma-separated alias text.
func (s *Session) SetAliases(v string) { s.edit(func(f *FormSnapshot) { f.Aliases = v }) }

// SetDefinition replaces the definition body.
func (s *Session) SetDefinition(v string) { s.edit(func(f *FormSnapshot) { f.Definition = v }) }

// SelectStrategy changes the storage strategy picker value. Unknown values
// are accepted here and refused at submit.
func (s *Session) SelectStrategy(v domain.StorageStrategy) {
	s.edit(func(f *FormSnapshot) { f.Strategy = v })
}

// SelectFile changes the consolidated file picker value.
func (s *Session) SelectFile(path string) { s.edit(func(f *FormSnapshot) { f.File = path }) }

// SelectFolder changes the atomic folder picker value.
func (s *Session) SelectFolder(path string) { s.edit(func(f *FormSnapshot) { f.Folder = path }) }

func (s *Session) edit(apply func(f *FormSnapshot)) {
	switch s.state {
	case StateClosed:
		return
	case StateOpen:
		s.state = StateEditing
	}
	apply(&s.form)
}

// Submit validates the current form and, if it passes, dispatches the record
// and closes the session. Both the submit control and the keyboard
// accelerator call it.
//
// A refused submission surfaces a notice, returns the session to Editing and
// returns the refusal. The guard is raised once validation passes and is
// lowered after dispatch, so a Submit arriving mid-dispatch is refused with
// domain.ErrSubmissionInFlight and leaves the running submission untouched.
func (s *Session) Submit(ctx context.Context) error {
	if s.state == StateClosed {
		return domain.ErrSessionClosed
	}

	snap := s.form
	if err := s.validator.Validate(snap, s.submitting); err != nil {
		s.log.InfoContext(ctx, "submission refused", slog.String("reason", err.Error()))
		s.notices.Notify(UserMessage(err))
		if !errors.Is(err, domain.ErrSubmissionInFlight) {
			s.state = StateEditing
		}
		return err
	}

	s.submitting = true
	s.state = StateSubmitting

	ctx = ctxutil.WithSessionID(ctx, s.id)
	if s.docPath != "" {
		ctx = ctxutil.WithDocumentPath(ctx, s.docPath)
	}
	s.dispatcher.Dispatch(ctx, snap)

	s.submitting = false
	s.state = StateClosed
	return nil
}
