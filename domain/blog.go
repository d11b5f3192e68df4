package domain

import (
	"context"
	"time"
)

// Blog is the post a discussion thread hangs off.
// Blog lifecycle is owned elsewhere; comments only reference it by ID.
type Blog struct {
	ID              string    // Opaque identifier
	Title           string    // Blog title
	AuthorID        string    // Owner of the blog
	CommentsEnabled bool      // Whether new comments are accepted
	CreatedAt       time.Time // Creation timestamp
}

// BlogRepository defines the read contract the comment subsystem needs from blog storage.
type BlogRepository interface {
	// GetByID retrieves a single blog by its ID.
	// Returns ErrNotFound if the blog doesn't exist.
	GetByID(ctx context.Context, id string) (Blog, error)

	// FetchIDs returns up to limit blog IDs greater than cursor, ordered ascending.
	// Pass an empty cursor for the first page.
	FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error)
}
