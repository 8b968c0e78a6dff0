package note

import "context"

// Repository is the ownership-scoped persistence contract for notes. Every
// method takes the owning user's id; rows belonging to other users behave as
// if they do not exist.
type Repository interface {
	List(ctx context.Context, userID string) ([]Note, error)
	Create(ctx context.Context, userID, content string) (Note, error)
	Update(ctx context.Context, userID, noteID, content string) (Note, error)
	Delete(ctx context.Context, userID, noteID string) error
	Search(ctx context.Context, userID, query string, prefix bool) ([]Note, error)
}
