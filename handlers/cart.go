package handlers

import (
	"fmt"
	"net/http"

	"roastline/cart"
	"roastline/models"
	"roastline/session"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the cart endpoints. Two quantity paths exist on
// purpose: the drawer input accepts up to DrawerMaxQty and rejects anything
// outside its range, while the stepper path clamps at the store's own limit.
type CartHandler struct {
	Cart         *cart.Store
	DrawerMaxQty int
}

func NewCartHandler(store *cart.Store, drawerMaxQty int) *CartHandler {
	return &CartHandler{Cart: store, DrawerMaxQty: drawerMaxQty}
}

func (h *CartHandler) cartView(c *gin.Context, drawerOpen bool) gin.H {
	sid := session.SID(c)
	return gin.H{
		"items":      h.Cart.Items(sid),
		"cartTotal":  h.Cart.Total(sid),
		"cartCount":  h.Cart.Count(sid),
		"drawerOpen": drawerOpen,
	}
}

// GetCartHandler returns the session's cart with derived totals.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartView(c, false))
}

type addToCartInput struct {
	Item     models.CartItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// AddToCartHandler merges the item into the cart and opens the drawer.
func (h *CartHandler) AddToCartHandler(c *gin.Context) {
	var input addToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Item.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id is required"})
		return
	}
	h.Cart.Add(session.SID(c), input.Item, input.Quantity)
	c.JSON(http.StatusOK, h.cartView(c, true))
}

type quantityInput struct {
	ID       string `json:"id"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// SetQuantityHandler is the drawer input path: values outside [1, DrawerMaxQty]
// leave the line unchanged and surface a field-level message.
func (h *CartHandler) SetQuantityHandler(c *gin.Context) {
	var input quantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Quantity < 1 || input.Quantity > h.DrawerMaxQty {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{
			"quantity": fmt.Sprintf("Quantity must be between 1 and %d", h.DrawerMaxQty),
		}})
		return
	}
	h.Cart.SetQuantity(session.SID(c), input.ID, input.Size, input.Quantity)
	c.JSON(http.StatusOK, h.cartView(c, true))
}

// AdjustQuantityHandler is the stepper path: the store clamps the value and
// removes the line when it drops below 1.
func (h *CartHandler) AdjustQuantityHandler(c *gin.Context) {
	var input quantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.Cart.UpdateQuantity(session.SID(c), input.ID, input.Size, input.Quantity)
	c.JSON(http.StatusOK, h.cartView(c, false))
}

type removeInput struct {
	ID   string `json:"id"`
	Size string `json:"size"`
}

// RemoveFromCartHandler deletes one cart line.
func (h *CartHandler) RemoveFromCartHandler(c *gin.Context) {
	var input removeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.Cart.Remove(session.SID(c), input.ID, input.Size)
	c.JSON(http.StatusOK, h.cartView(c, false))
}

// ClearCartHandler empties the cart.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	h.Cart.Clear(session.SID(c))
	c.JSON(http.StatusOK, h.cartView(c, false))
}
