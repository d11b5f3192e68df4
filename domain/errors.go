package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exists")
	// ErrInvalidArgument will throw if the given request-body or params is not valid
	ErrInvalidArgument = errors.New("given param is not valid")
	// ErrUnauthorized will throw if the caller has no authenticated identity
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden will throw if the caller is not allowed to touch the item
	ErrForbidden = errors.New("you do not have permission to perform this action")
	// ErrServiceUnavailable will throw if a backing store or provider failed
	ErrServiceUnavailable = errors.New("service temporarily unavailable, please try again")
	// ErrCacheMiss is returned by cache adapters when the key is not loaded
	ErrCacheMiss = errors.New("cache miss")
	// ErrQueueFull is returned by background workers that cannot accept more tasks
	ErrQueueFull = errors.New("queue is full")
)

var (
	ErrEmptyComment     = NewError(ErrInvalidArgument, "comment content or attachment is required")
	ErrBlogNotFound     = NewError(ErrNotFound, "blog not found")
	ErrCommentNotFound  = NewError(ErrNotFound, "comment not found")
	ErrParentNotFound   = NewError(ErrNotFound, "parent comment not found")
	ErrCommentsDisabled = NewError(ErrForbidden, "comments are disabled for this blog")
	ErrMalformedID      = NewError(ErrInvalidArgument, "malformed id")
)

// Error pairs one of the sentinel kinds above with a message meant for the caller.
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}
