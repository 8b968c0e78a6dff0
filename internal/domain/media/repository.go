package media

import (
	"context"
	"io"
	"time"
)

type Repository interface {
	Insert(ctx context.Context, m Media) (Media, error)
	// Find resolves an attachment only when both the attachment row and its
	// note belong to the user.
	Find(ctx context.Context, userID, mediaID string) (Media, error)
	ListByNote(ctx context.Context, userID, noteID string) ([]Media, error)
	Delete(ctx context.Context, userID, mediaID string) error
	NoteExists(ctx context.Context, userID, noteID string) (bool, error)

	// Compensating-action log for orphaned storage objects.
	AddCleanup(ctx context.Context, objectPath string) error
	PendingCleanups(ctx context.Context, limit int) ([]CleanupEntry, error)
	ResolveCleanup(ctx context.Context, id int64) error
}

// ObjectStore is the object-storage side of the attachment pair.
type ObjectStore interface {
	Put(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, objectPath string) error
	PresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}
