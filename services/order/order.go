// Package order wraps the store API's product and order endpoints.
package order

import (
	"context"
	"fmt"
	"strconv"

	"roastline/gateway"
	"roastline/models"
)

// Service wraps the order endpoints.
type Service interface {
	Create(ctx context.Context, input models.OrderInput) (*models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	Product(ctx context.Context, id string) (*models.Product, error)
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Gateway *gateway.Client
}

// Create places the order. A single attempt, no idempotency key: the wizard's
// in-flight guard is the only protection against double submission.
func (s *DefaultOrderService) Create(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	env, err := s.Gateway.PostForm(ctx, "/freshorder/create", map[string]string{
		"productID":        input.ProductID,
		"quantity":         strconv.Itoa(input.Quantity),
		"size_index":       strconv.Itoa(input.SizeIndex),
		"shipping_address": strconv.Itoa(input.ShippingAddress),
		"shipping_method":  strconv.Itoa(input.ShippingMethod),
	})
	if err != nil {
		return nil, err
	}
	var created models.Order
	if err := env.Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to parse created order: %w", err)
	}
	return &created, nil
}

// Get fetches one order.
func (s *DefaultOrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	env, err := s.Gateway.GetJSON(ctx, "/orders/"+id)
	if err != nil {
		return nil, err
	}
	var ord models.Order
	if err := env.Decode(&ord); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}
	return &ord, nil
}

// Product fetches one product with its sizes and stock.
func (s *DefaultOrderService) Product(ctx context.Context, id string) (*models.Product, error) {
	env, err := s.Gateway.GetJSON(ctx, "/product/"+id)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := env.Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}
	return &product, nil
}
