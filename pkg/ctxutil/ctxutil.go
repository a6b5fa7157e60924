package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionIDKey    ctxKey = "session_id"
	documentPathKey ctxKey = "document_path"
)

// WithSessionID stores the form session ID in the context.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the form session ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithDocumentPath stores the path of the document the session was opened from.
func WithDocumentPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, documentPathKey, path)
}

// DocumentPathFromCtx extracts the source document path from the context.
// Returns an empty string if absent.
func DocumentPathFromCtx(ctx context.Context) string {
	p, _ := ctx.Value(documentPathKey).(string)
	return p
}
