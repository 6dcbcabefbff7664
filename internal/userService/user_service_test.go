package user

import (
	"context"
	"errors"
	"testing"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	valid := func() *Registration {
		return &Registration{Email: "ana@example.com", Password: "secret", Name: "Ana"}
	}
	with := func(mut func(r *Registration)) *Registration {
		r := valid()
		mut(r)
		return r
	}

	tests := []struct {
		name          string
		input         *Registration
		mockSetup     func(users *repository.MockUserDB)
		expectedError error
	}{
		{
			name:  "valid",
			input: valid(),
			mockSetup: func(users *repository.MockUserDB) {
				users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(model.User{}, repository.ErrNotFound)
				users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u model.User) (model.User, error) {
						u.ID = 1
						return u, nil
					})
			},
		},
		{name: "nil_input", mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrInvalidRequest},
		{name: "blank_email", input: with(func(r *Registration) { r.Email = " " }), mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrEmailBlank},
		{name: "invalid_email", input: with(func(r *Registration) { r.Email = "ana.example.com" }), mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrEmailInvalid},
		{name: "display_name_email", input: with(func(r *Registration) { r.Email = "Ana <ana@example.com>" }), mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrEmailInvalid},
		{name: "blank_password", input: with(func(r *Registration) { r.Password = "" }), mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrPasswordBlank},
		{name: "short_password", input: with(func(r *Registration) { r.Password = "abcd" }), mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrPasswordLength},
		{name: "blank_name", input: with(func(r *Registration) { r.Name = "" }), mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrNameBlank},
		{name: "email_before_password", input: &Registration{Email: "bad"}, mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrEmailInvalid},
		{
			name:  "email_taken",
			input: valid(),
			mockSetup: func(users *repository.MockUserDB) {
				users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(model.User{ID: 4}, nil)
			},
			expectedError: auctionerrors.ErrEmailTaken,
		},
		{
			name:  "email_taken_race",
			input: valid(),
			mockSetup: func(users *repository.MockUserDB) {
				users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(model.User{}, repository.ErrNotFound)
				users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.User{}, repository.ErrDuplicate)
			},
			expectedError: auctionerrors.ErrEmailTaken,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			users := repository.NewMockUserDB(ctrl)
			tc.mockSetup(users)

			u, err := NewUserService(users).Register(context.Background(), tc.input)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}

			require.NoError(t, err)
			require.NotZero(t, u.ID)
			require.Equal(t, tc.input.Email, u.Email)
			require.NotEqual(t, tc.input.Password, u.Password)
			require.True(t, utils.CheckPassword(u.Password, tc.input.Password))
			require.True(t, u.Credit.IsZero())
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	stored := model.User{ID: 7, Email: "ana@example.com", Password: hash, Name: "Ana"}

	tests := []struct {
		name          string
		email         string
		password      string
		mockSetup     func(users *repository.MockUserDB)
		expectedError error
	}{
		{
			name: "valid", email: "ana@example.com", password: "secret",
			mockSetup: func(users *repository.MockUserDB) {
				users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)
			},
		},
		{name: "blank_email", password: "secret", mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrEmailBlank},
		{name: "invalid_email", email: "ana", password: "secret", mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrEmailInvalid},
		{name: "blank_password", email: "ana@example.com", mockSetup: func(*repository.MockUserDB) {}, expectedError: auctionerrors.ErrPasswordBlank},
		{
			name: "unknown_email", email: "bob@example.com", password: "secret",
			mockSetup: func(users *repository.MockUserDB) {
				users.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(model.User{}, repository.ErrNotFound)
			},
			expectedError: auctionerrors.ErrEmailNotFound,
		},
		{
			name: "wrong_password", email: "ana@example.com", password: "secreT",
			mockSetup: func(users *repository.MockUserDB) {
				users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)
			},
			expectedError: auctionerrors.ErrPasswordInvalid,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			users := repository.NewMockUserDB(ctrl)
			tc.mockSetup(users)

			u, err := NewUserService(users).Authenticate(context.Background(), tc.email, tc.password)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, stored.ID, u.ID)
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := repository.NewMockUserDB(ctrl)
	service := NewUserService(users)

	_, err := service.GetUser(context.Background(), model.NoUser)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthorized)

	users.EXPECT().GetByID(gomock.Any(), uint(3)).Return(model.User{}, repository.ErrNotFound)
	_, err = service.GetUser(context.Background(), 3)
	require.ErrorIs(t, err, auctionerrors.ErrUserNotExist)

	users.EXPECT().GetByID(gomock.Any(), uint(4)).Return(model.User{ID: 4, Name: "Bo"}, nil)
	u, err := service.GetUser(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "Bo", u.Name)
}
