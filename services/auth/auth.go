package auth

import (
	"context"
	"fmt"

	"roastline/models"

	"roastline/gateway"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and user snapshot.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*models.AuthData, error) {
	env, err := s.Gateway.PostJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		if gateway.IsCode(err, 403) {
			return nil, ErrAccountBlocked
		}
		return nil, err
	}
	var data models.AuthData
	if err := env.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}
	return &data, nil
}

// Register creates an account and signs the customer in.
func (s *DefaultAuthService) Register(ctx context.Context, input models.Registration) (*models.AuthData, error) {
	env, err := s.Gateway.PostJSON(ctx, "/auth/register", input)
	if err != nil {
		if gateway.IsCode(err, 403) {
			return nil, ErrAccountBlocked
		}
		return nil, err
	}
	var data models.AuthData
	if err := env.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}
	return &data, nil
}

// Profile fetches the authenticated customer's profile.
func (s *DefaultAuthService) Profile(ctx context.Context) (*models.UserProfile, error) {
	env, err := s.Gateway.GetJSON(ctx, "/user/profile")
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := env.Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile saves edited personal info via the store API's form endpoint.
func (s *DefaultAuthService) UpdateProfile(ctx context.Context, info models.PersonalInfo) (*models.UserProfile, error) {
	env, err := s.Gateway.PostForm(ctx, "/user/edit", map[string]string{
		"first_name":   info.FirstName,
		"last_name":    info.LastName,
		"email":        info.Email,
		"phone_number": info.Phone,
	})
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := env.Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	// The store API may answer with an empty payload; fall back to the
	// submitted fields so callers always get the new snapshot.
	if profile.Email == "" {
		profile.FirstName = info.FirstName
		profile.LastName = info.LastName
		profile.Email = info.Email
		profile.Phone = info.Phone
	}
	return &profile, nil
}
