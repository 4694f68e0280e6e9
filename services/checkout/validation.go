package checkout

import "roastline/models"

// Step and form validators. Each returns a field-name -> message map; an
// empty map means the input passes. Messages are rendered verbatim.

// ValidateLogin checks the sign-in form.
func ValidateLogin(email, password string) map[string]string {
	errs := map[string]string{}
	if email == "" {
		errs["email"] = "Email is required"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// ValidateSignup checks the signup form: the login fields plus names, phone,
// and an exact password confirmation match.
func ValidateSignup(input models.Registration) map[string]string {
	errs := ValidateLogin(input.Email, input.Password)
	if input.FirstName == "" {
		errs["firstName"] = "First name is required"
	}
	if input.LastName == "" {
		errs["lastName"] = "Last name is required"
	}
	if input.Phone == "" {
		errs["phone"] = "Phone number is required"
	}
	if input.ConfirmPassword != input.Password {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}

// ValidatePersonalInfo checks the personal-info form (step 1 when signed in,
// and the explicit save action).
func ValidatePersonalInfo(info models.PersonalInfo) map[string]string {
	errs := map[string]string{}
	if info.FirstName == "" {
		errs["firstName"] = "First name is required"
	}
	if info.LastName == "" {
		errs["lastName"] = "Last name is required"
	}
	if info.Email == "" {
		errs["email"] = "Email is required"
	}
	if info.Phone == "" {
		errs["phone"] = "Phone number is required"
	}
	return errs
}

// ValidateAddress checks the address form. Country is optional.
func ValidateAddress(input models.AddressInput) map[string]string {
	errs := map[string]string{}
	if input.Address == "" {
		errs["address"] = "Address is required"
	}
	if input.City == "" {
		errs["city"] = "City is required"
	}
	if input.Zipcode == "" {
		errs["postcode"] = "Postcode is required"
	}
	return errs
}
