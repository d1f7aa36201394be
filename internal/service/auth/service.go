package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartattend/attendance-backend-go/internal/domain/auth"
	"github.com/smartattend/attendance-backend-go/internal/domain/user"
	"github.com/smartattend/attendance-backend-go/internal/pkg/jwt"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

type AuthServiceImpl struct {
	store *state.Store
	jwt.Service
}

func NewAuthService(store *state.Store, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		store:   store,
		Service: jwtService,
	}
}

// Login implements auth.Service. Username matching is case-insensitive;
// a wrong username and a wrong password are indistinguishable to the
// caller.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	snap := a.store.Snapshot()

	var account user.User
	var ok bool
	for _, u := range snap.Users {
		if strings.EqualFold(u.Username, req.Username) {
			account, ok = u, true
			break
		}
	}
	if !ok || account.PasswordHash == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user.ToResponse(account),
	}, nil
}
