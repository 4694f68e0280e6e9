package models

// UserProfile is the snapshot of the signed-in customer kept client-side.
type UserProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Session pairs the bearer token with the cached profile. Either half may be
// missing independently; callers must tolerate partial state.
type Session struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// AuthData is the payload returned by the store API on login or signup.
type AuthData struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// Registration carries the signup form.
type Registration struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// PersonalInfo is the editable subset of the profile used during checkout.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
