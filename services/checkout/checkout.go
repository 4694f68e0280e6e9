// Package checkout implements the multi-step checkout wizard: a stateful
// form controller sequencing identity, shipping address, and shipping method
// before placing the order. The draft lives in a SessionStore under a unique
// session id; every operation loads it, mutates it, and saves it back.
package checkout

import (
	"context"

	"roastline/gateway"
	"roastline/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Initiate creates a new wizard draft seeded from the browser session.
func (s *DefaultCheckoutService) Initiate(ctx context.Context, input InitiateInput) (*models.CheckoutState, error) {
	state := &models.CheckoutState{
		SessionID: uuid.New().String(),
		Step:      models.StepIdentity,
		Selection: input.Selection,
	}
	if input.User != nil {
		state.PersonalInfo = models.PersonalInfo{
			FirstName: input.User.FirstName,
			LastName:  input.User.LastName,
			Email:     input.User.Email,
			Phone:     input.User.Phone,
		}
	}
	if state.Selection != nil {
		// Restore the draft invariant in case the cookie was stale.
		state.Selection.Recalculate()
	}
	if err := s.Store.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	return state, nil
}

// Get returns the current draft.
func (s *DefaultCheckoutService) Get(ctx context.Context, id string) (*models.CheckoutState, error) {
	return s.Store.Get(ctx, id)
}

// Apply merges a partial form update into the draft without validating it.
// Validation happens on Next, SaveAddress, and Confirm.
func (s *DefaultCheckoutService) Apply(ctx context.Context, id string, patch models.CheckoutPatch) (*models.CheckoutState, error) {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.PersonalInfo != nil {
		state.PersonalInfo = *patch.PersonalInfo
	}
	if patch.AddressForm != nil {
		state.AddressForm = *patch.AddressForm
	}
	if patch.SelectedAddress != nil {
		state.SelectedAddress = *patch.SelectedAddress
	}
	if patch.SelectedMethod != nil {
		state.SelectedMethod = *patch.SelectedMethod
	}
	if patch.EditingAddress != nil {
		state.EditingAddress = *patch.EditingAddress
		if !state.EditingAddress {
			state.EditedAddressID = 0
			state.AddressForm = models.AddressInput{}
		}
	}
	if patch.EditedAddressID != nil {
		state.EditedAddressID = *patch.EditedAddressID
		for _, addr := range state.Addresses {
			if addr.ID == state.EditedAddressID {
				state.AddressForm = models.AddressInput{
					Address:        addr.Address,
					City:           addr.City,
					Zipcode:        addr.Zipcode,
					Country:        addr.Country,
					ShippingMethod: addr.ShippingMethod,
				}
				state.EditingAddress = true
			}
		}
	}
	if err := s.Store.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	return state, nil
}

// Next validates the current step and advances when it comes back clean.
// Field errors are recorded on the draft and block the transition.
func (s *DefaultCheckoutService) Next(ctx context.Context, id string) (*models.CheckoutState, error) {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.Complete {
		return state, nil
	}

	switch state.Step {
	case models.StepIdentity:
		if errs := ValidatePersonalInfo(state.PersonalInfo); len(errs) > 0 {
			state.Errors = errs
			break
		}
		state.Errors = nil
		if err := s.loadAddresses(ctx, state); err != nil {
			break
		}
		state.Step = models.StepAddress

	case models.StepAddress:
		if state.SelectedAddress == 0 {
			// No saved address picked: the filled-in form stands in for one.
			if errs := ValidateAddress(state.AddressForm); len(errs) > 0 {
				state.Errors = errs
				break
			}
			if saved := s.saveNewAddress(ctx, state); !saved {
				break
			}
		}
		state.Errors = nil
		if err := s.loadMethods(ctx, state); err != nil {
			break
		}
		state.Step = models.StepMethod

	case models.StepMethod:
		if state.SelectedMethod == 0 {
			state.Errors = map[string]string{"shippingMethod": "Please select a shipping method"}
			break
		}
		// Step 3 is the last form step; Confirm performs the terminal
		// transition.
		state.Errors = nil
	}

	if err := s.Store.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	return state, nil
}

// Back moves one step up. Always permitted except from the first step.
func (s *DefaultCheckoutService) Back(ctx context.Context, id string) (*models.CheckoutState, error) {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !state.Complete && state.Step > models.StepIdentity {
		state.Step--
		state.Errors = nil
		if err := s.Store.Save(ctx, state, s.TTL); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// SaveAddress persists the address form: an edit when EditedAddressID is set,
// otherwise a create bounded by the saved-address limit. The cached list is
// refetched after every write.
func (s *DefaultCheckoutService) SaveAddress(ctx context.Context, id string) (*models.CheckoutState, error) {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := ValidateAddress(state.AddressForm); len(errs) > 0 {
		state.Errors = errs
		if err := s.Store.Save(ctx, state, s.TTL); err != nil {
			return nil, err
		}
		return state, nil
	}

	if state.EditedAddressID != 0 {
		if err := s.Shipping.EditAddress(ctx, state.EditedAddressID, state.AddressForm); err != nil {
			state.Errors = map[string]string{"address": gateway.AsAPIError(err).Message}
		}
	} else if len(state.Addresses) >= s.MaxAddresses {
		// Soft limit only; the store API stays authoritative.
		state.Errors = map[string]string{"address": "Address limit reached. Remove one to add another."}
	} else if err := s.Shipping.AddAddress(ctx, state.AddressForm); err != nil {
		state.Errors = map[string]string{"address": gateway.AsAPIError(err).Message}
	}

	if len(state.Errors) == 0 {
		state.Errors = nil
		state.EditingAddress = false
		state.EditedAddressID = 0
		state.AddressForm = models.AddressInput{}
		if err := s.loadAddresses(ctx, state); err == nil && state.SelectedAddress == 0 {
			if last := latestAddressID(state.Addresses); last != 0 {
				state.SelectedAddress = last
			}
		}
	}
	if err := s.Store.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	return state, nil
}

// RemoveAddress deletes a saved address and refetches the list.
func (s *DefaultCheckoutService) RemoveAddress(ctx context.Context, id string, addressID int) (*models.CheckoutState, error) {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Shipping.DeleteAddress(ctx, addressID); err != nil {
		state.Errors = map[string]string{"address": gateway.AsAPIError(err).Message}
	} else {
		state.Errors = nil
		if state.SelectedAddress == addressID {
			state.SelectedAddress = 0
		}
		_ = s.loadAddresses(ctx, state)
	}
	if err := s.Store.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	return state, nil
}

// SavePersonalInfo validates and saves the personal-info edit through the
// store API, independent of step gating.
func (s *DefaultCheckoutService) SavePersonalInfo(ctx context.Context, id string, info models.PersonalInfo) (*models.CheckoutState, error) {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := ValidatePersonalInfo(info); len(errs) > 0 {
		state.Errors = errs
	} else if updated, err := s.Auth.UpdateProfile(ctx, info); err != nil {
		state.Errors = map[string]string{"personalInfo": gateway.AsAPIError(err).Message}
	} else {
		state.Errors = nil
		state.PersonalInfo = models.PersonalInfo{
			FirstName: updated.FirstName,
			LastName:  updated.LastName,
			Email:     updated.Email,
			Phone:     updated.Phone,
		}
	}
	if err := s.Store.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	return state, nil
}

// Confirm is the single submission path. It requires a product selection, a
// saved address, and a shipping method; on success the wizard becomes
// Complete exactly once, on failure it stays on the method step with the
// store API's message (or the generic fallback) under "submit".
func (s *DefaultCheckoutService) Confirm(ctx context.Context, id string) (*models.CheckoutState, error) {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.Complete {
		// Terminal state; a repeated confirm must not place a second order.
		return state, nil
	}

	errs := map[string]string{}
	if state.Selection == nil || state.Selection.ProductID == "" || state.Selection.Quantity < 1 {
		errs["submit"] = "No product selected"
	}
	if state.SelectedAddress == 0 {
		errs["shippingAddress"] = "Please select a shipping address"
	}
	if state.SelectedMethod == 0 {
		errs["shippingMethod"] = "Please select a shipping method"
	}
	if len(errs) > 0 {
		state.Errors = errs
		if err := s.Store.Save(ctx, state, s.TTL); err != nil {
			return nil, err
		}
		return state, nil
	}

	_, err = s.Orders.Create(ctx, models.OrderInput{
		ProductID:       state.Selection.ProductID,
		Quantity:        state.Selection.Quantity,
		SizeIndex:       state.Selection.SizeIndex,
		ShippingAddress: state.SelectedAddress,
		ShippingMethod:  state.SelectedMethod,
	})
	if err != nil {
		apiErr := gateway.AsAPIError(err)
		s.Logger.Warn("order submission failed",
			zap.String("sessionId", state.SessionID), zap.Int("code", apiErr.Code))
		state.Errors = map[string]string{"submit": apiErr.Message}
		state.Step = models.StepMethod
	} else {
		state.Errors = nil
		state.Complete = true
	}
	if err := s.Store.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	return state, nil
}

// Cancel discards the wizard draft.
func (s *DefaultCheckoutService) Cancel(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

func (s *DefaultCheckoutService) loadAddresses(ctx context.Context, state *models.CheckoutState) error {
	addresses, err := s.Shipping.Addresses(ctx)
	if err != nil {
		state.Errors = map[string]string{"form": gateway.AsAPIError(err).Message}
		return err
	}
	state.Addresses = addresses
	return nil
}

func (s *DefaultCheckoutService) loadMethods(ctx context.Context, state *models.CheckoutState) error {
	if len(state.Methods) > 0 {
		// Reference data; fetched once per checkout session.
		return nil
	}
	methods, err := s.Shipping.Methods(ctx)
	if err != nil {
		state.Errors = map[string]string{"form": gateway.AsAPIError(err).Message}
		return err
	}
	state.Methods = methods
	return nil
}

// saveNewAddress creates the address in the form while advancing from the
// address step. Reports whether the draft may proceed.
func (s *DefaultCheckoutService) saveNewAddress(ctx context.Context, state *models.CheckoutState) bool {
	if len(state.Addresses) >= s.MaxAddresses {
		state.Errors = map[string]string{"address": "Address limit reached. Remove one to add another."}
		return false
	}
	if err := s.Shipping.AddAddress(ctx, state.AddressForm); err != nil {
		state.Errors = map[string]string{"address": gateway.AsAPIError(err).Message}
		return false
	}
	state.AddressForm = models.AddressInput{}
	if err := s.loadAddresses(ctx, state); err != nil {
		return false
	}
	if last := latestAddressID(state.Addresses); last != 0 {
		state.SelectedAddress = last
	}
	return true
}

func latestAddressID(addresses []models.ShippingAddress) int {
	last := 0
	for _, addr := range addresses {
		if addr.ID > last {
			last = addr.ID
		}
	}
	return last
}
