package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

const minPasswordLength = 5

// Registration is the untrusted sign-up input
type Registration struct {
	Email    string
	Password string
	Name     string
	LastName *string
}

// UserService handles sign-up, sign-in and profile lookups
type UserService struct {
	users repository.UserDB
}

// NewUserService creates a new UserService instance
func NewUserService(users repository.UserDB) *UserService {
	return &UserService{users: users}
}

// Register validates r and stores a new user with a hashed password
func (s *UserService) Register(ctx context.Context, r *Registration) (model.User, error) {
	if r == nil {
		return model.User{}, auctionerrors.ErrInvalidRequest
	}

	email := strings.TrimSpace(r.Email)
	if err := checkEmail(email); err != nil {
		return model.User{}, err
	}
	if r.Password == "" {
		return model.User{}, auctionerrors.ErrPasswordBlank
	}
	if len(r.Password) < minPasswordLength {
		return model.User{}, auctionerrors.ErrPasswordLength
	}
	if strings.TrimSpace(r.Name) == "" {
		return model.User{}, auctionerrors.ErrNameBlank
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return model.User{}, auctionerrors.ErrEmailTaken
	case !errors.Is(err, repository.ErrNotFound):
		utils.Error("Register: failed to check email", map[string]any{"email": email, "error": err.Error()})
		return model.User{}, fmt.Errorf("service: failed to check email: %w", err)
	}

	hash, err := utils.HashPassword(r.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	created, err := s.users.Create(ctx, model.User{
		Email:    email,
		Password: hash,
		Name:     r.Name,
		LastName: r.LastName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.User{}, auctionerrors.ErrEmailTaken
		}
		utils.Error("Register: failed to create user", map[string]any{"email": email, "error": err.Error()})
		return model.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}

	return created, nil
}

// Authenticate returns the user whose credentials match
func (s *UserService) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	email = strings.TrimSpace(email)
	if err := checkEmail(email); err != nil {
		return model.User{}, err
	}
	if password == "" {
		return model.User{}, auctionerrors.ErrPasswordBlank
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, auctionerrors.ErrEmailNotFound
		}
		utils.Error("Authenticate: failed to get user", map[string]any{"email": email, "error": err.Error()})
		return model.User{}, fmt.Errorf("service: failed to get user: %w", err)
	}

	if !utils.CheckPassword(u.Password, password) {
		return model.User{}, auctionerrors.ErrPasswordInvalid
	}
	return u, nil
}

// GetUser returns the profile of an authenticated user
func (s *UserService) GetUser(ctx context.Context, userID uint) (model.User, error) {
	if userID == model.NoUser {
		return model.User{}, auctionerrors.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, fmt.Errorf("service: user %d: %w", userID, auctionerrors.ErrUserNotExist)
		}
		return model.User{}, fmt.Errorf("service: failed to get user %d: %w", userID, err)
	}
	return u, nil
}

func checkEmail(email string) error {
	if email == "" {
		return auctionerrors.ErrEmailBlank
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return auctionerrors.ErrEmailInvalid
	}
	return nil
}
