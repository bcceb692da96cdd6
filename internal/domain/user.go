package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of application roles. Anything else is rejected at
// the boundary so access checks never see an unknown role string.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleStudent   Role = "student"
)

// ParseRole normalizes and validates a role string. An empty string maps to
// RoleStudent, the default for self-service signup.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(strings.ToLower(s))) {
	case "":
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleOrganizer:
		return RoleOrganizer, nil
	case RoleStudent:
		return RoleStudent, nil
	}
	return "", fmt.Errorf("%w: role must be admin, organizer, or student", ErrInvalidInput)
}

// User represents a registered user. PasswordHash never leaves the service
// layer; responses carry the public projection only.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser returns a new User. ID is set by the repository on create.
func NewUser(email, name string, role Role, passwordHash string, createdAt time.Time) *User {
	return &User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// CanOrganize reports whether the user may create and own events.
func (u *User) CanOrganize() bool { return u.Role == RoleAdmin || u.Role == RoleOrganizer }

// PasswordHasher handles one-way password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed session tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the subject user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateRoleByEmail(ctx context.Context, email string, role Role) error
	CountAll(ctx context.Context) (int, error)
}

// AuthToken bundles a signed token with the authenticated user, the shape
// returned by signup and login.
// swagger:model AuthToken
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

// AuthService defines signup, login, and request authentication.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name, role string) (*AuthToken, error)
	Login(ctx context.Context, email, password string) (*AuthToken, error)
	// CurrentUser resolves a verified token subject to the full user record.
	// Returns ErrUserNotFound if the account no longer exists.
	CurrentUser(ctx context.Context, userID string) (*User, error)
}

// UserService defines user administration operations.
type UserService interface {
	// PromoteToOrganizer sets the target's role to organizer. Admin only.
	PromoteToOrganizer(ctx context.Context, actor *User, targetEmail string) error
}
