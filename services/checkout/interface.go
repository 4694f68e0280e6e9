package checkout

import (
	"context"
	"errors"
	"time"

	"roastline/models"
	"roastline/services/auth"
	"roastline/services/order"
	"roastline/services/shipping"

	"go.uber.org/zap"
)

// ErrSessionNotFound is returned when a checkout session is missing or expired.
var ErrSessionNotFound = errors.New("checkout session not found or expired")

// SessionStore persists the wizard draft between requests with a TTL.
type SessionStore interface {
	Save(ctx context.Context, state *models.CheckoutState, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.CheckoutState, error)
	Delete(ctx context.Context, id string) error
}

// InitiateInput seeds a new wizard from the browser session.
type InitiateInput struct {
	User      *models.UserProfile
	Selection *models.OrderSelection
}

// Service sequences the checkout wizard: identity, shipping address,
// shipping method, then order placement. Next advances only when the current
// step validates clean; Back is always permitted except from the first step;
// Confirm is the single submission path and is terminal on success.
type Service interface {
	Initiate(ctx context.Context, input InitiateInput) (*models.CheckoutState, error)
	Get(ctx context.Context, id string) (*models.CheckoutState, error)
	Apply(ctx context.Context, id string, patch models.CheckoutPatch) (*models.CheckoutState, error)
	Next(ctx context.Context, id string) (*models.CheckoutState, error)
	Back(ctx context.Context, id string) (*models.CheckoutState, error)
	SaveAddress(ctx context.Context, id string) (*models.CheckoutState, error)
	RemoveAddress(ctx context.Context, id string, addressID int) (*models.CheckoutState, error)
	SavePersonalInfo(ctx context.Context, id string, info models.PersonalInfo) (*models.CheckoutState, error)
	Confirm(ctx context.Context, id string) (*models.CheckoutState, error)
	Cancel(ctx context.Context, id string) error
}

// DefaultCheckoutService is the production implementation.
type DefaultCheckoutService struct {
	Store        SessionStore
	Auth         auth.Service
	Shipping     shipping.Service
	Orders       order.Service
	TTL          time.Duration
	MaxAddresses int
	Logger       *zap.Logger
}
