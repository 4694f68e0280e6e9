// Package payment wraps the store API's payment history endpoints.
package payment

import (
	"context"
	"fmt"

	"roastline/gateway"
	"roastline/models"
)

// Service wraps the payment endpoints.
type Service interface {
	History(ctx context.Context) ([]models.Payment, error)
	Status(ctx context.Context, id string) (*models.PaymentStatus, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Gateway *gateway.Client
}

// History fetches the customer's payments.
func (s *DefaultPaymentService) History(ctx context.Context) ([]models.Payment, error) {
	env, err := s.Gateway.GetJSON(ctx, "/payments/get")
	if err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := env.Decode(&payments); err != nil {
		return nil, fmt.Errorf("failed to parse payments: %w", err)
	}
	return payments, nil
}

// Status fetches the state of one payment.
func (s *DefaultPaymentService) Status(ctx context.Context, id string) (*models.PaymentStatus, error) {
	env, err := s.Gateway.GetJSON(ctx, "/payment/status/"+id)
	if err != nil {
		return nil, err
	}
	var status models.PaymentStatus
	if err := env.Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to parse payment status: %w", err)
	}
	return &status, nil
}
