package intake

import (
	"context"
	"testing"

	"github.com/heartmarshall/notedefs/internal/domain"
	"github.com/heartmarshall/notedefs/pkg/ctxutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSession(t *testing.T, deps *testDeps) *Session {
	t.Helper()
	deps.stores.ConsolidatedFilesFunc = func() []string { return []string{"Defs.md"} }
	deps.stores.DefFoldersFunc = func() []string { return []string{"defs"} }
	return deps.service().Open(context.Background(), OpenInput{DocumentPath: "Notes.md"})
}

func TestSession_EditMovesToEditing(t *testing.T) {
	t.Parallel()

	sess := openTestSession(t, newTestDeps())
	require.Equal(t, StateOpen, sess.State())

	sess.SetWord("Entropy")
	assert.Equal(t, StateEditing, sess.State())

	sess.SetAliases("S")
	sess.SetDefinition("disorder")
	sess.SelectStrategy(domain.StorageAtomic)
	sess.SelectFile("Other.md")
	sess.SelectFolder("defs/sub")
	assert.Equal(t, StateEditing, sess.State())

	assert.Equal(t, FormSnapshot{
		Word:       "Entropy",
		Aliases:    "S",
		Definition: "disorder",
		Strategy:   domain.StorageAtomic,
		File:       "Other.md",
		Folder:     "defs/sub",
	}, sess.Snapshot())
}

func TestSession_PickerVisibilityFollowsStrategy(t *testing.T) {
	t.Parallel()

	sess := openTestSession(t, newTestDeps())

	sess.SelectStrategy(domain.StorageConsolidated)
	assert.True(t, sess.FilePickerVisible())
	assert.False(t, sess.FolderPickerVisible())

	sess.SelectStrategy(domain.StorageAtomic)
	assert.False(t, sess.FilePickerVisible())
	assert.True(t, sess.FolderPickerVisible())

	sess.SelectStrategy("zip")
	assert.False(t, sess.FilePickerVisible())
	assert.False(t, sess.FolderPickerVisible())
}

func TestSession_Submit_Success(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	ref := &domain.FileRef{Path: "Defs.md", Name: "Defs.md"}
	deps.files.LookupFileFunc = func(path string) (*domain.FileRef, bool) { return ref, path == "Defs.md" }
	sess := openTestSession(t, deps)

	sess.SetWord("Entropy")
	sess.SetAliases("foo, bar ,baz")
	sess.SetDefinition("disorder")

	require.NoError(t, sess.Submit(context.Background()))
	assert.Equal(t, StateClosed, sess.State())
	assert.Empty(t, deps.notices.Messages)

	require.Len(t, deps.writer.Calls, 1)
	call := deps.writer.Calls[0]
	assert.Equal(t, "Defs.md", call.Destination)
	assert.Equal(t, domain.DefinitionRecord{
		Strategy:   domain.StorageConsolidated,
		Key:        "entropy",
		Word:       "Entropy",
		Aliases:    []string{"foo", "bar", "baz"},
		Definition: "disorder",
		File:       ref,
	}, call.Record)

	id, ok := ctxutil.SessionIDFromCtx(call.Ctx)
	require.True(t, ok)
	assert.Equal(t, sess.ID(), id)
	assert.Equal(t, "Notes.md", ctxutil.DocumentPathFromCtx(call.Ctx))
}

func TestSession_Submit_RefusalReturnsToEditing(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	sess := openTestSession(t, deps)

	sess.SetDefinition("disorder")
	err := sess.Submit(context.Background())

	require.ErrorIs(t, err, domain.ErrMissingValue)
	assert.Equal(t, StateEditing, sess.State())
	assert.Equal(t, []string{"Please fill in a definition value"}, deps.notices.Messages)
	assert.Empty(t, deps.writer.Calls)

	// The form stays usable after a refusal.
	sess.SetWord("Entropy")
	require.NoError(t, sess.Submit(context.Background()))
	assert.Equal(t, StateClosed, sess.State())
	assert.Len(t, deps.writer.Calls, 1)
}

func TestSession_Submit_RefusalFromOpenState(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	sess := openTestSession(t, deps)

	err := sess.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrMissingValue)
	assert.Equal(t, StateEditing, sess.State())
}

func TestSession_Submit_DestinationRefusals(t *testing.T) {
	t.Parallel()

	t.Run("no file", func(t *testing.T) {
		t.Parallel()
		deps := newTestDeps()
		sess := openTestSession(t, deps)
		sess.SetWord("w")
		sess.SetDefinition("d")
		sess.SelectStrategy(domain.StorageConsolidated)
		sess.SelectFile("")

		require.ErrorIs(t, sess.Submit(context.Background()), domain.ErrNoFileChosen)
		assert.Equal(t, []string{UserMessage(domain.NewRefusal(domain.ErrNoFileChosen))}, deps.notices.Messages)
	})

	t.Run("no folder", func(t *testing.T) {
		t.Parallel()
		deps := newTestDeps()
		sess := openTestSession(t, deps)
		sess.SetWord("w")
		sess.SetDefinition("d")
		sess.SelectStrategy(domain.StorageAtomic)
		sess.SelectFolder("")

		require.ErrorIs(t, sess.Submit(context.Background()), domain.ErrNoFolderChosen)
		assert.Empty(t, deps.writer.Calls)
	})

	t.Run("invalid strategy", func(t *testing.T) {
		t.Parallel()
		deps := newTestDeps()
		sess := openTestSession(t, deps)
		sess.SetWord("w")
		sess.SetDefinition("d")
		sess.SelectStrategy("zip")

		require.ErrorIs(t, sess.Submit(context.Background()), domain.ErrInvalidStrategy)
		assert.Equal(t, StateEditing, sess.State())
	})
}

func TestSession_Submit_ReentrantSubmitRefused(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	sess := openTestSession(t, deps)
	sess.SetWord("w")
	sess.SetDefinition("d")

	var reentrantErr error
	var stateDuringDispatch State
	deps.writer.AddDefinitionFunc = func(ctx context.Context, _ domain.DefinitionRecord, _ string) {
		stateDuringDispatch = sess.State()
		// A keyboard accelerator firing while the click is being handled.
		reentrantErr = sess.Submit(ctx)
	}

	require.NoError(t, sess.Submit(context.Background()))

	assert.Equal(t, StateSubmitting, stateDuringDispatch)
	assert.ErrorIs(t, reentrantErr, domain.ErrSubmissionInFlight)
	assert.Len(t, deps.writer.Calls, 1, "only one record may reach the writer")
	assert.Equal(t, StateClosed, sess.State())
	assert.Equal(t, []string{"This definition is already being saved."}, deps.notices.Messages)
}

func TestSession_ClosedIsTerminal(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	sess := openTestSession(t, deps)
	sess.SetWord("w")
	sess.SetDefinition("d")
	require.NoError(t, sess.Submit(context.Background()))

	sess.SetWord("changed")
	assert.Equal(t, "w", sess.Snapshot().Word, "edits after close are ignored")

	require.ErrorIs(t, sess.Submit(context.Background()), domain.ErrSessionClosed)
	assert.Equal(t, StateClosed, sess.State())
	assert.Len(t, deps.writer.Calls, 1)
	assert.Empty(t, deps.notices.Messages)
}

func TestSession_SubmitUsesSnapshotAtSubmitTime(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	sess := openTestSession(t, deps)
	sess.SetWord("first")
	sess.SetDefinition("d")

	deps.writer.AddDefinitionFunc = func(context.Context, domain.DefinitionRecord, string) {
		// An edit landing mid-dispatch must not reach the handed-over record.
		sess.SetWord("second")
	}

	require.NoError(t, sess.Submit(context.Background()))
	require.Len(t, deps.writer.Calls, 1)
	assert.Equal(t, "first", deps.writer.Calls[0].Record.Word)
}
