package domain

import (
	"context"
	"time"
)

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

const (
	PlaceholderAuthorName   = "Banking Professional"
	PlaceholderAuthorAvatar = "/placeholder.svg?height=40&width=40&text=BP"
)

// User represents a user entity in the system.
// A user can register, login, and comment on blogs.
type User struct {
	ID        string    // Unique identifier
	Name      string    // Display name
	Email     string    // Login email (unique)
	Password  string    // Bcrypt hashed password
	AvatarURL string    // Avatar location
	Role      string    // user, admin or editor
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// AuthorView is the denormalized author data rendered next to a comment.
type AuthorView struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	AvatarURL string `json:"avatar" bson:"avatar"`
}

// NewAuthorView builds the display snapshot of u.
func NewAuthorView(u User) AuthorView {
	return AuthorView{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}

// PlaceholderAuthor is rendered when the author of a comment can no longer be resolved.
func PlaceholderAuthor(id string) AuthorView {
	if id == "" {
		id = "unknown"
	}
	return AuthorView{ID: id, Name: PlaceholderAuthorName, AvatarURL: PlaceholderAuthorAvatar}
}

// AuthorPolicy selects how AuthorView values are obtained for rendering.
type AuthorPolicy string

const (
	// AuthorJoinAtRead resolves the author from the user repository on every read.
	AuthorJoinAtRead AuthorPolicy = "join"
	// AuthorSnapshotAtWrite stores the AuthorView inside the comment when it is written.
	AuthorSnapshotAtWrite AuthorPolicy = "snapshot"
)

// Identity is the authenticated caller of an operation.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByIDs retrieves the users that exist among ids. Missing users are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]User, error)

	// GetByEmail retrieves a user by their email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the email already exists.
	Register(ctx context.Context, name, email, password string) (User, error)

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrUnauthorized if the credentials do not match.
	Login(ctx context.Context, email, password string) (string, error)
}
