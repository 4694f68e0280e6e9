package auth

import (
	"context"

	"roastline/gateway"
	"roastline/models"
)

// Service wraps the store API's authentication and profile endpoints.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.AuthData, error)
	Register(ctx context.Context, input models.Registration) (*models.AuthData, error)
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, info models.PersonalInfo) (*models.UserProfile, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Gateway *gateway.Client
}
