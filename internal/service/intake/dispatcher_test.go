package intake

import (
	"context"
	"testing"

	"github.com/heartmarshall/notedefs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(files *mockFileLookup, writer *mockWriter) *SubmissionDispatcher {
	return NewSubmissionDispatcher(discardLogger(), files, writer)
}

func TestSubmissionDispatcher_Build_Consolidated(t *testing.T) {
	t.Parallel()

	ref := &domain.FileRef{Path: "Work/Defs.md", Name: "Defs.md"}
	files := &mockFileLookup{
		LookupFileFunc: func(path string) (*domain.FileRef, bool) {
			if path == "Work/Defs.md" {
				return ref, true
			}
			return nil, false
		},
	}
	d := newTestDispatcher(files, &mockWriter{})

	rec := d.Build(FormSnapshot{
		Word:       "Entropy",
		Aliases:    "foo, bar ,baz",
		Definition: "  A measure of disorder.  ",
		Strategy:   domain.StorageConsolidated,
		File:       "Work/Defs.md",
		Folder:     "Work",
	})

	assert.Equal(t, domain.StorageConsolidated, rec.Strategy)
	assert.Equal(t, "entropy", rec.Key)
	assert.Equal(t, "Entropy", rec.Word)
	assert.Equal(t, []string{"foo", "bar", "baz"}, rec.Aliases)
	assert.Equal(t, "  A measure of disorder.  ", rec.Definition, "definition must be verbatim")
	assert.Same(t, ref, rec.File)
	assert.Empty(t, rec.Folder, "consolidated record must not carry a folder")
}

func TestSubmissionDispatcher_Build_ConsolidatedUnresolvedFile(t *testing.T) {
	t.Parallel()

	d := newTestDispatcher(&mockFileLookup{}, &mockWriter{})

	rec := d.Build(FormSnapshot{
		Word:       "Entropy",
		Definition: "x",
		Strategy:   domain.StorageConsolidated,
		File:       "Gone.md",
		Folder:     "Work",
	})

	assert.Nil(t, rec.File, "unresolved file is carried as absent")
	assert.Empty(t, rec.Folder)
}

func TestSubmissionDispatcher_Build_Atomic(t *testing.T) {
	t.Parallel()

	files := &mockFileLookup{
		LookupFileFunc: func(string) (*domain.FileRef, bool) {
			t.Fatal("atomic records must not look up files")
			return nil, false
		},
	}
	d := newTestDispatcher(files, &mockWriter{})

	rec := d.Build(FormSnapshot{
		Word:       "Entropy",
		Aliases:    "",
		Definition: "x",
		Strategy:   domain.StorageAtomic,
		File:       "Work/Defs.md",
		Folder:     "Not/Yet/Created",
	})

	assert.Equal(t, domain.StorageAtomic, rec.Strategy)
	assert.Nil(t, rec.File, "atomic record must not carry a file")
	assert.Equal(t, "Not/Yet/Created", rec.Folder)
	require.NotNil(t, rec.Aliases)
	assert.Empty(t, rec.Aliases)
}

func TestSubmissionDispatcher_Build_KeyIsLowercaseWord(t *testing.T) {
	t.Parallel()

	d := newTestDispatcher(&mockFileLookup{}, &mockWriter{})

	for _, word := range []string{"entropy", "MiXeD CaSe", "C++ 2.0", "Ünïcödé", "42", " spaced "} {
		rec := d.Build(FormSnapshot{Word: word, Definition: "x", Strategy: domain.StorageAtomic, Folder: "f"})
		assert.Equal(t, domain.DefinitionKey(word), rec.Key)
		assert.Equal(t, word, rec.Word)
	}
}

func TestSubmissionDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("consolidated destination is the file path", func(t *testing.T) {
		t.Parallel()

		writer := &mockWriter{}
		d := newTestDispatcher(&mockFileLookup{}, writer)

		d.Dispatch(context.Background(), FormSnapshot{
			Word: "w", Definition: "d", Strategy: domain.StorageConsolidated, File: "Defs.md", Folder: "Work",
		})

		require.Len(t, writer.Calls, 1)
		assert.Equal(t, "Defs.md", writer.Calls[0].Destination)
		assert.Equal(t, domain.StorageConsolidated, writer.Calls[0].Record.Strategy)
	})

	t.Run("atomic destination is the folder path", func(t *testing.T) {
		t.Parallel()

		writer := &mockWriter{}
		d := newTestDispatcher(&mockFileLookup{}, writer)

		d.Dispatch(context.Background(), FormSnapshot{
			Word: "w", Definition: "d", Strategy: domain.StorageAtomic, File: "Defs.md", Folder: "Work",
		})

		require.Len(t, writer.Calls, 1)
		assert.Equal(t, "Work", writer.Calls[0].Destination)
		assert.Equal(t, "Work", writer.Calls[0].Record.Folder)
	})
}
