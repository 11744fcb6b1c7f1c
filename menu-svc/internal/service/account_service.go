package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"qrmenu-platform/menu-svc/internal/domain"
)

// AccountService manages restaurant staff logins in the auth provider and
// keeps the restaurant_users link table in step with it.
type AccountService struct {
	auth        AuthProvider
	users       RestaurantUserRepository
	restaurants RestaurantRepository
}

func NewAccountService(auth AuthProvider, users RestaurantUserRepository, restaurants RestaurantRepository) *AccountService {
	return &AccountService{auth: auth, users: users, restaurants: restaurants}
}

func (s *AccountService) CreateLogin(ctx context.Context, input domain.CreateLoginInput) (*domain.LoginResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if s.auth == nil {
		return nil, fmt.Errorf("%w: auth provider is not configured", ErrUnavailable)
	}
	if _, err := s.restaurants.GetRestaurant(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	user, err := s.auth.CreateUser(ctx, input.Email, input.Password)
	if err != nil {
		return nil, fmt.Errorf("create auth user: %w", err)
	}

	link := &domain.RestaurantUser{Email: input.Email, RestaurantID: input.RestaurantID}
	if err := s.users.CreateRestaurantUser(ctx, link); err != nil {
		if delErr := s.auth.DeleteUser(ctx, user.ID); delErr != nil {
			log.Printf("ERROR: failed to roll back auth user %s after link failure: %v", user.ID, delErr)
		}
		return nil, fmt.Errorf("link %s to restaurant %s: %w", input.Email, input.RestaurantID, err)
	}

	log.Printf("[menu-svc] created login %s for restaurant %s", input.Email, input.RestaurantID)
	return &domain.LoginResult{Success: true, Email: input.Email, UserID: user.ID}, nil
}

func (s *AccountService) ResetPassword(ctx context.Context, email, newPassword string) (*domain.AuthUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || newPassword == "" {
		return nil, fmt.Errorf("%w: email and new_password are required", ErrValidation)
	}
	if problems := PasswordProblems(newPassword); len(problems) > 0 {
		return nil, fmt.Errorf("%w: password must contain %s", ErrValidation, strings.Join(problems, ", "))
	}
	if s.auth == nil {
		return nil, fmt.Errorf("%w: auth provider is not configured", ErrUnavailable)
	}

	exists, err := s.users.RestaurantUserExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up restaurant user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("restaurant user %s: %w", email, ErrNotFound)
	}

	user, err := s.auth.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	updated, err := s.auth.UpdatePassword(ctx, user.ID, newPassword)
	if err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}

	log.Printf("[menu-svc] password reset for %s", email)
	return updated, nil
}
