package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
	"github.com/smartattend/attendance-backend-go/internal/domain/user"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

type UserServiceImpl struct {
	store *state.Store
}

func NewUserService(store *state.Store) user.Service {
	return &UserServiceImpl{store: store}
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	snap := s.store.Snapshot()

	out := make([]user.UserResponse, 0, len(snap.Users))
	for _, u := range snap.Users {
		out = append(out, user.ToResponse(u))
	}
	return out, nil
}

// Me implements user.Service. Balances reflect the current snapshot, so
// a ledger approval shows up on the next read.
func (s *UserServiceImpl) Me(ctx context.Context, id string) (user.UserResponse, error) {
	u, ok := user.FindByID(s.store.Snapshot().Users, id)
	if !ok {
		return user.UserResponse{}, user.ErrUserNotFound
	}
	return user.ToResponse(u), nil
}

// Create implements user.Service. New accounts start with the standard
// leave balance.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	created := user.User{
		ID:            uuid.NewString(),
		Username:      strings.ToLower(req.Username),
		PasswordHash:  string(hash),
		Role:          user.Role(req.Role),
		Name:          req.Name,
		Department:    req.Department,
		AssignedShift: shift.Type(req.AssignedShift),
		LeaveBalance:  user.LeaveBalance{Casual: 5, Sick: 4},
	}

	err = s.store.Update(ctx, func(next *state.Snapshot) error {
		for _, u := range next.Users {
			if strings.EqualFold(u.Username, created.Username) {
				return user.ErrUsernameExists
			}
		}
		next.Users = append(next.Users, created)
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(created), nil
}

// Remove implements user.Service.
func (s *UserServiceImpl) Remove(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(next *state.Snapshot) error {
		out := next.Users[:0:0]
		found := false
		for _, u := range next.Users {
			if u.ID == id {
				found = true
				continue
			}
			out = append(out, u)
		}
		if !found {
			return user.ErrUserNotFound
		}
		next.Users = out
		return nil
	})
}
