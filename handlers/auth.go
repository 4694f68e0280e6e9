package handlers

import (
	"net/http"

	"roastline/models"
	"roastline/services/auth"
	"roastline/services/checkout"
	"roastline/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves login, signup, logout, and profile endpoints.
type AuthHandler struct {
	Auth auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{Auth: svc}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler signs the customer in and writes the session cookies.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if errs := checkout.ValidateLogin(input.Email, input.Password); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	data, err := h.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		logger.Warn("login failed", zap.String("email", input.Email), zap.Error(err))
		renderAPIError(c, err)
		return
	}

	session.SetAuth(c, data.Token, &data.User)
	c.JSON(http.StatusOK, data.User)
}

// RegisterHandler creates an account and signs the customer in.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.Registration
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if errs := checkout.ValidateSignup(input); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	data, err := h.Auth.Register(c.Request.Context(), input)
	if err != nil {
		logger.Warn("signup failed", zap.String("email", input.Email), zap.Error(err))
		renderAPIError(c, err)
		return
	}

	session.SetAuth(c, data.Token, &data.User)
	c.JSON(http.StatusOK, data.User)
}

// LogoutHandler clears the session and the cached order selection.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	session.ClearAuth(c)
	session.ClearOrderSelection(c)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// SessionHandler reports the session as the client sees it: cookie snapshots
// only, no upstream round trip.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.Session{
		Token: session.Token(c),
		User:  session.UserData(c),
	})
}

// ProfileHandler fetches the live profile from the store API.
func (h *AuthHandler) ProfileHandler(c *gin.Context) {
	profile, err := h.Auth.Profile(c.Request.Context())
	if err != nil {
		renderAPIError(c, err)
		return
	}
	session.UpdateUser(c, profile)
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler saves edited personal info and refreshes the snapshot.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var info models.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if errs := checkout.ValidatePersonalInfo(info); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	profile, err := h.Auth.UpdateProfile(c.Request.Context(), info)
	if err != nil {
		logger.Warn("profile update failed", zap.Error(err))
		renderAPIError(c, err)
		return
	}

	session.UpdateUser(c, profile)
	c.JSON(http.StatusOK, profile)
}
