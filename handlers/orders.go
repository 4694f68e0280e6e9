package handlers

import (
	"net/http"

	"roastline/models"
	"roastline/services/order"
	"roastline/services/payment"
	"roastline/session"
	"roastline/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves product, order, and payment history endpoints.
type OrderHandler struct {
	Orders   order.Service
	Payments payment.Service
}

func NewOrderHandler(orders order.Service, payments payment.Service) *OrderHandler {
	return &OrderHandler{Orders: orders, Payments: payments}
}

// GetProductHandler fetches one product.
func (h *OrderHandler) GetProductHandler(c *gin.Context) {
	product, err := h.Orders.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

type selectProductInput struct {
	SizeIndex int `json:"sizeIndex"`
	Quantity  int `json:"quantity"`
}

// SelectProductHandler writes the draft order selection cookie when a size is
// chosen on the product page. Quantity is clamped to [1, stock] here, and the
// total is recomputed from its inputs.
func (h *OrderHandler) SelectProductHandler(c *gin.Context) {
	var input selectProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	product, err := h.Orders.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderAPIError(c, err)
		return
	}
	if input.SizeIndex < 0 || input.SizeIndex >= len(product.Sizes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size selection"})
		return
	}

	qty := input.Quantity
	if qty < 1 {
		qty = 1
	}
	if product.Stock > 0 && qty > product.Stock {
		qty = product.Stock
	}

	sel := &models.OrderSelection{
		ProductID:   product.ID,
		ProductName: product.Name,
		Size:        product.Sizes[input.SizeIndex],
		SizeIndex:   input.SizeIndex,
		Quantity:    qty,
	}
	sel.Recalculate()
	session.SaveOrderSelection(c, sel)
	c.JSON(http.StatusOK, sel)
}

// ClearSelectionHandler drops the draft order selection (explicit cancel).
func (h *OrderHandler) ClearSelectionHandler(c *gin.Context) {
	session.ClearOrderSelection(c)
	c.JSON(http.StatusOK, gin.H{"message": "Selection cleared"})
}

// GetOrderHandler fetches one placed order.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	ord, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

// PaymentsHandler returns the payment history.
func (h *OrderHandler) PaymentsHandler(c *gin.Context) {
	payments, err := h.Payments.History(c.Request.Context())
	if err != nil {
		renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// PaymentStatusHandler returns the state of one payment.
func (h *OrderHandler) PaymentStatusHandler(c *gin.Context) {
	status, err := h.Payments.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// FormatPreviewHandler reshapes checkout input fields for display (phone,
// card number, expiry). Presentation-only: nothing is validated.
func (h *OrderHandler) FormatPreviewHandler(c *gin.Context) {
	var input struct {
		Phone      string `json:"phone"`
		CardNumber string `json:"cardNumber"`
		Expiry     string `json:"expiry"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"phone":      utils.FormatPhone(input.Phone),
		"cardNumber": utils.FormatCardNumber(input.CardNumber),
		"expiry":     utils.FormatExpiry(input.Expiry),
	})
}
