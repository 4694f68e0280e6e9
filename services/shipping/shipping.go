// Package shipping wraps the store API's shipping address and method
// endpoints. The address list is backend-owned; callers treat what they get
// here as a refreshable cache.
package shipping

import (
	"context"
	"fmt"
	"strconv"

	"roastline/gateway"
	"roastline/models"
)

// Service wraps the shipping endpoints.
type Service interface {
	Addresses(ctx context.Context) ([]models.ShippingAddress, error)
	AddAddress(ctx context.Context, input models.AddressInput) error
	EditAddress(ctx context.Context, id int, input models.AddressInput) error
	DeleteAddress(ctx context.Context, id int) error
	Methods(ctx context.Context) ([]models.ShippingMethod, error)
}

// DefaultShippingService is the production implementation.
type DefaultShippingService struct {
	Gateway *gateway.Client
}

// Addresses fetches the customer's saved addresses.
func (s *DefaultShippingService) Addresses(ctx context.Context) ([]models.ShippingAddress, error) {
	env, err := s.Gateway.GetJSON(ctx, "/shipping/get")
	if err != nil {
		return nil, err
	}
	var addresses []models.ShippingAddress
	if err := env.Decode(&addresses); err != nil {
		return nil, fmt.Errorf("failed to parse addresses: %w", err)
	}
	return addresses, nil
}

func addressFields(input models.AddressInput) map[string]string {
	return map[string]string{
		"address":         input.Address,
		"city":            input.City,
		"zipcode":         input.Zipcode,
		"country":         input.Country,
		"shipping_method": strconv.Itoa(input.ShippingMethod),
	}
}

// AddAddress creates a saved address.
func (s *DefaultShippingService) AddAddress(ctx context.Context, input models.AddressInput) error {
	_, err := s.Gateway.PostForm(ctx, "/shipping/add", addressFields(input))
	return err
}

// EditAddress updates a saved address.
func (s *DefaultShippingService) EditAddress(ctx context.Context, id int, input models.AddressInput) error {
	_, err := s.Gateway.PostForm(ctx, "/shipping/edit/"+strconv.Itoa(id), addressFields(input))
	return err
}

// DeleteAddress removes a saved address. The store API exposes this as a GET.
func (s *DefaultShippingService) DeleteAddress(ctx context.Context, id int) error {
	_, err := s.Gateway.GetJSON(ctx, "/shipping/delete/"+strconv.Itoa(id))
	return err
}

// Methods fetches the shipping method reference list.
func (s *DefaultShippingService) Methods(ctx context.Context) ([]models.ShippingMethod, error) {
	env, err := s.Gateway.GetJSON(ctx, "/shipping/methods")
	if err != nil {
		return nil, err
	}
	var methods []models.ShippingMethod
	if err := env.Decode(&methods); err != nil {
		return nil, fmt.Errorf("failed to parse shipping methods: %w", err)
	}
	return methods, nil
}
