package auth

import "context"

// AuthService defines authentication business logic
type AuthService interface {
	// Signup registers a new account. The very first account becomes Admin
	// regardless of the requested role.
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)

	// Login authenticates with email + password. Inactive accounts are
	// rejected.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle authenticates a verified Google email against an
	// existing account; unknown emails are rejected rather than provisioned.
	LoginWithGoogle(ctx context.Context, googleEmail string) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair and
	// revokes the old refresh token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
