package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roastline/models"
	"roastline/services/checkout"
	"roastline/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the checkout wizard endpoints.
type CheckoutHandler struct {
	Checkout checkout.Service
}

func NewCheckoutHandler(svc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Checkout: svc}
}

func (h *CheckoutHandler) renderState(c *gin.Context, state *models.CheckoutState) {
	if len(state.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *CheckoutHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, checkout.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	getLogger(c).Error("checkout session failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout is unavailable right now. Please try again."})
}

// InitiateHandler starts a wizard seeded from the session cookies.
func (h *CheckoutHandler) InitiateHandler(c *gin.Context) {
	state, err := h.Checkout.Initiate(c.Request.Context(), checkout.InitiateInput{
		User:      session.UserData(c),
		Selection: session.OrderSelection(c),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetHandler returns the current wizard draft.
func (h *CheckoutHandler) GetHandler(c *gin.Context) {
	state, err := h.Checkout.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateHandler merges a partial form update into the draft.
func (h *CheckoutHandler) UpdateHandler(c *gin.Context) {
	var patch models.CheckoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.Checkout.Apply(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// NextHandler validates the current step and advances when clean.
func (h *CheckoutHandler) NextHandler(c *gin.Context) {
	state, err := h.Checkout.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderState(c, state)
}

// BackHandler moves one step up.
func (h *CheckoutHandler) BackHandler(c *gin.Context) {
	state, err := h.Checkout.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SaveAddressHandler persists the address form (create or edit).
func (h *CheckoutHandler) SaveAddressHandler(c *gin.Context) {
	state, err := h.Checkout.SaveAddress(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderState(c, state)
}

// RemoveAddressHandler deletes a saved address.
func (h *CheckoutHandler) RemoveAddressHandler(c *gin.Context) {
	addressID, err := strconv.Atoi(c.Param("addressID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return
	}
	state, err := h.Checkout.RemoveAddress(c.Request.Context(), c.Param("sessionID"), addressID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderState(c, state)
}

// SavePersonalInfoHandler saves edited personal info through the wizard and
// refreshes the cached user snapshot.
func (h *CheckoutHandler) SavePersonalInfoHandler(c *gin.Context) {
	var info models.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.Checkout.SavePersonalInfo(c.Request.Context(), c.Param("sessionID"), info)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(state.Errors) == 0 {
		session.UpdateUser(c, &models.UserProfile{
			FirstName: state.PersonalInfo.FirstName,
			LastName:  state.PersonalInfo.LastName,
			Email:     state.PersonalInfo.Email,
			Phone:     state.PersonalInfo.Phone,
		})
	}
	h.renderState(c, state)
}

// ConfirmHandler places the order. On completion the persisted order
// selection is cleared; the wizard state itself stays terminal.
func (h *CheckoutHandler) ConfirmHandler(c *gin.Context) {
	state, err := h.Checkout.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if state.Complete {
		session.ClearOrderSelection(c)
	}
	h.renderState(c, state)
}

// CancelHandler discards the wizard draft.
func (h *CheckoutHandler) CancelHandler(c *gin.Context) {
	if err := h.Checkout.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checkout cancelled"})
}
