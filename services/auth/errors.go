package auth

import "roastline/gateway"

// ErrAccountBlocked is returned when the store API answers 403 on an auth
// attempt; the storefront renders it with a distinct message.
var ErrAccountBlocked = &gateway.APIError{
	Code:    403,
	Message: "Your account has been blocked. Please contact support.",
}
