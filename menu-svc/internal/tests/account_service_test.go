package tests

import (
	"context"
	"testing"

	"qrmenu-platform/menu-svc/internal/domain"
	"qrmenu-platform/menu-svc/internal/mocks"
	"qrmenu-platform/menu-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountDeps struct {
	auth  *mocks.AuthProvider
	users *mocks.RestaurantUserRepository
	repo  *mocks.RestaurantRepository
}

func newAccountService(t *testing.T) (*service.AccountService, accountDeps) {
	d := accountDeps{
		auth:  mocks.NewAuthProvider(t),
		users: mocks.NewRestaurantUserRepository(t),
		repo:  mocks.NewRestaurantRepository(t),
	}
	return service.NewAccountService(d.auth, d.users, d.repo), d
}

func TestAccountService_CreateLogin(t *testing.T) {
	input := domain.CreateLoginInput{RestaurantID: restaurantID, Email: "Owner@SpiceVilla.in", Password: "secret1"}
	authUser := &domain.AuthUser{ID: "auth-1", Email: "owner@spicevilla.in"}

	tests := []struct {
		name    string
		input   domain.CreateLoginInput
		setup   func(d accountDeps)
		wantErr error
	}{
		{
			name:  "creates and links",
			input: input,
			setup: func(d accountDeps) {
				d.repo.On("GetRestaurant", mock.Anything, restaurantID).Return(newRestaurant(), nil).Once()
				d.auth.On("CreateUser", mock.Anything, "owner@spicevilla.in", "secret1").Return(authUser, nil).Once()
				d.users.On("CreateRestaurantUser", mock.Anything, &domain.RestaurantUser{Email: "owner@spicevilla.in", RestaurantID: restaurantID}).Return(nil).Once()
			},
		},
		{
			name:  "link failure rolls back auth user",
			input: input,
			setup: func(d accountDeps) {
				d.repo.On("GetRestaurant", mock.Anything, restaurantID).Return(newRestaurant(), nil).Once()
				d.auth.On("CreateUser", mock.Anything, "owner@spicevilla.in", "secret1").Return(authUser, nil).Once()
				d.users.On("CreateRestaurantUser", mock.Anything, mock.Anything).Return(service.ErrConflict).Once()
				d.auth.On("DeleteUser", mock.Anything, "auth-1").Return(nil).Once()
			},
			wantErr: service.ErrConflict,
		},
		{
			name:  "auth provider rejects",
			input: input,
			setup: func(d accountDeps) {
				d.repo.On("GetRestaurant", mock.Anything, restaurantID).Return(newRestaurant(), nil).Once()
				d.auth.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrConflict).Once()
			},
			wantErr: service.ErrConflict,
		},
		{
			name:    "short password",
			input:   domain.CreateLoginInput{RestaurantID: restaurantID, Email: "a@b.co", Password: "12345"},
			setup:   func(d accountDeps) {},
			wantErr: service.ErrValidation,
		},
		{
			name:  "unknown restaurant",
			input: input,
			setup: func(d accountDeps) {
				d.repo.On("GetRestaurant", mock.Anything, restaurantID).Return(nil, service.ErrNotFound).Once()
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newAccountService(t)
			testCase.setup(deps)

			result, err := svc.CreateLogin(context.Background(), testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, "auth-1", result.UserID)
		})
	}
}

func TestAccountService_ResetPassword(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(d accountDeps)
		wantErr  error
	}{
		{
			name:     "updates password",
			email:    "owner@spicevilla.in",
			password: "N3w!Password",
			setup: func(d accountDeps) {
				d.users.On("RestaurantUserExists", mock.Anything, "owner@spicevilla.in").Return(true, nil).Once()
				d.auth.On("FindUserByEmail", mock.Anything, "owner@spicevilla.in").Return(&domain.AuthUser{ID: "auth-1"}, nil).Once()
				d.auth.On("UpdatePassword", mock.Anything, "auth-1", "N3w!Password").Return(&domain.AuthUser{ID: "auth-1", Email: "owner@spicevilla.in"}, nil).Once()
			},
		},
		{
			name:     "weak password",
			email:    "owner@spicevilla.in",
			password: "password",
			setup:    func(d accountDeps) {},
			wantErr:  service.ErrValidation,
		},
		{
			name:     "missing email",
			password: "N3w!Password",
			setup:    func(d accountDeps) {},
			wantErr:  service.ErrValidation,
		},
		{
			name:     "not a restaurant user",
			email:    "stranger@example.com",
			password: "N3w!Password",
			setup: func(d accountDeps) {
				d.users.On("RestaurantUserExists", mock.Anything, "stranger@example.com").Return(false, nil).Once()
			},
			wantErr: service.ErrNotFound,
		},
		{
			name:     "missing in auth provider",
			email:    "owner@spicevilla.in",
			password: "N3w!Password",
			setup: func(d accountDeps) {
				d.users.On("RestaurantUserExists", mock.Anything, "owner@spicevilla.in").Return(true, nil).Once()
				d.auth.On("FindUserByEmail", mock.Anything, "owner@spicevilla.in").Return(nil, service.ErrNotFound).Once()
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newAccountService(t)
			testCase.setup(deps)

			user, err := svc.ResetPassword(context.Background(), testCase.email, testCase.password)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "auth-1", user.ID)
		})
	}
}

func TestAccountService_NoAuthProvider(t *testing.T) {
	svc := service.NewAccountService(nil, mocks.NewRestaurantUserRepository(t), mocks.NewRestaurantRepository(t))

	_, err := svc.CreateLogin(context.Background(), domain.CreateLoginInput{RestaurantID: restaurantID, Email: "a@b.co", Password: "secret1"})

	assert.ErrorIs(t, err, service.ErrUnavailable)
}
