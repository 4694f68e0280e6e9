package models

// Checkout wizard steps.
const (
	StepIdentity = 1
	StepAddress  = 2
	StepMethod   = 3
)

// CheckoutState holds the wizard's working draft between matching and final
// order placement. It lives in the checkout session store under SessionID.
type CheckoutState struct {
	SessionID string `json:"sessionId"`
	Step      int    `json:"step"`
	Complete  bool   `json:"complete"`

	PersonalInfo PersonalInfo `json:"personalInfo"`

	// Address sub-flow. Addresses is a read-through cache of the store API's
	// list, refetched after every create/update/delete.
	AddressForm     AddressInput      `json:"addressForm"`
	Addresses       []ShippingAddress `json:"addresses"`
	EditingAddress  bool              `json:"editingAddress"`
	EditedAddressID int               `json:"editedAddressId,omitempty"`
	SelectedAddress int               `json:"selectedAddressId"`

	Methods        []ShippingMethod `json:"methods"`
	SelectedMethod int              `json:"selectedMethodId"`

	Selection *OrderSelection `json:"selection,omitempty"`

	// Field name -> message. Cleared on every successful transition.
	Errors map[string]string `json:"errors,omitempty"`
}

// CheckoutPatch is a partial update of the wizard draft; nil fields are
// left untouched.
type CheckoutPatch struct {
	PersonalInfo    *PersonalInfo `json:"personalInfo,omitempty"`
	AddressForm     *AddressInput `json:"addressForm,omitempty"`
	SelectedAddress *int          `json:"selectedAddressId,omitempty"`
	SelectedMethod  *int          `json:"selectedMethodId,omitempty"`
	EditingAddress  *bool         `json:"editingAddress,omitempty"`
	EditedAddressID *int          `json:"editedAddressId,omitempty"`
}
