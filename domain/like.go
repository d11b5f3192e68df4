package domain

import (
	"context"
	"time"
)

// CommentLike is representing a like record
type CommentLike struct {
	CommentID string
	UserID    string
	CreatedAt time.Time
}

// LikeResult is the membership state after a toggle.
type LikeResult struct {
	Liked     bool
	LikeCount int64
}

type LikeStateChanges struct {
	ToAdd    []CommentLike
	ToRemove []CommentLike
}

// LikeCache holds per-comment like sets.
type LikeCache interface {
	// ToggleLike flips membership atomically.
	// Returns ErrCacheMiss if the set of commentID is not loaded.
	ToggleLike(ctx context.Context, commentID string, userID string) (LikeResult, error)

	// SeedLikes loads the full like set of a comment, marking it as loaded even when empty.
	SeedLikes(ctx context.Context, commentID string, userIDs []string) error

	// GetLikes returns the sets that are loaded among commentIDs.
	GetLikes(ctx context.Context, commentIDs []string) (map[string][]string, error)

	// EvictLikes drops the sets so the next toggle reloads them from the store.
	EvictLikes(ctx context.Context, commentIDs []string) error
}
