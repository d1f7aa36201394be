package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/smartattend/attendance-backend-go/internal/domain/auth"
)

// currentUserID extracts the authenticated user's id from the verified
// token claims.
func currentUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", auth.ErrInvalidToken
	}
	return id, nil
}
