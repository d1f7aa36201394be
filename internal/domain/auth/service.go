package auth

import (
	"context"
)

// Service authenticates users against the employee directory.
type Service interface {
	// Login matches the credentials and issues an access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
