package domain

import "context"

type LikeAction int8

const (
	Like   LikeAction = 1
	Unlike LikeAction = -1
)

func (l LikeAction) String() string {
	switch l {
	case Like:
		return "ADD"
	case Unlike:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

type SyncLikesWorker interface {
	Start(ctx context.Context)

	// Send queues a like record for the store: added if action == Like, removed if action == Unlike.
	// Returns ErrQueueFull if the record was not queued.
	Send(likeRecord CommentLike, action LikeAction) error
}
