// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to sign in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenPair carries a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginOutput returns the generated tokens after a successful sign-in.
type LoginOutput struct {
	Tokens TokenPair
	User   *entity.User
}

// ResolveOutput is the result of resolving a caller's cookies to an identity.
// When Rotated is non-nil the access token was refreshed mid-request and the
// delivery layer must re-set both cookies on the response.
type ResolveOutput struct {
	Identity *entity.SessionIdentity
	Rotated  *TokenPair
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout ends the session identified by the raw refresh token.
	// Unknown tokens are ignored so logout never fails visibly.
	Logout(ctx context.Context, refreshToken string) error

	// ResolveSession turns the caller's cookie tokens into an identity.
	// A valid access token resolves directly; an expired or absent one falls
	// back to the refresh token, which rotates the session. Any failure
	// returns an error and no identity.
	ResolveSession(ctx context.Context, accessToken, refreshToken string) (*ResolveOutput, error)
}
