// Package session is the cookie-backed session store: the auth token, the
// user-profile snapshot, and the in-progress order selection. All operations
// are synchronous reads/writes of browser-managed, expiring cookies; absence
// of data is a zero value, never an error.
package session

import (
	"encoding/json"
	"net/http"

	"roastline/config"
	"roastline/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// SIDCookie identifies the browser session; it keys the in-memory cart
	// and exists for authenticated and anonymous visitors alike.
	SIDCookie            = "sid"
	tokenCookie          = "auth_token"
	userCookie           = "user_data"
	orderSelectionCookie = "order_selection"
)

func setCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, config.CookieMaxAge(), "/", "", config.IsProduction(), true)
}

func clearCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, "", -1, "/", "", config.IsProduction(), true)
}

// SID returns the browser session id, minting one if the cookie is absent.
func SID(c *gin.Context) string {
	if sid, ok := c.Get(SIDCookie); ok {
		return sid.(string)
	}
	sid, err := c.Cookie(SIDCookie)
	if err != nil || sid == "" {
		sid = uuid.New().String()
		setCookie(c, SIDCookie, sid)
	}
	c.Set(SIDCookie, sid)
	return sid
}

// SetAuth writes the token and user snapshot after a successful login/signup.
func SetAuth(c *gin.Context, token string, user *models.UserProfile) {
	setCookie(c, tokenCookie, token)
	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			zap.L().Warn("failed to marshal user snapshot", zap.Error(err))
		} else {
			setCookie(c, userCookie, string(data))
		}
	}
	Events.Publish(Event{Type: AuthSet, SID: SID(c)})
}

// Token returns the bearer token, or "" when signed out. Presence is the only
// check performed; validity is the store API's concern.
func Token(c *gin.Context) string {
	token, err := c.Cookie(tokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// UserData returns the cached profile snapshot, or nil when absent. Token and
// profile presence are independent: a partial session is legal.
func UserData(c *gin.Context) *models.UserProfile {
	raw, err := c.Cookie(userCookie)
	if err != nil || raw == "" {
		return nil
	}
	var user models.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		zap.L().Warn("discarding unreadable user snapshot", zap.Error(err))
		return nil
	}
	return &user
}

// UpdateUser refreshes the cached profile snapshot without touching the token.
func UpdateUser(c *gin.Context, user *models.UserProfile) {
	if user == nil {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		zap.L().Warn("failed to marshal user snapshot", zap.Error(err))
		return
	}
	setCookie(c, userCookie, string(data))
}

// ClearAuth removes the token and user snapshot and announces the logout.
func ClearAuth(c *gin.Context) {
	clearCookie(c, tokenCookie)
	clearCookie(c, userCookie)
	Events.Publish(Event{Type: AuthCleared, SID: SID(c)})
}

// SaveOrderSelection overwrites the persisted draft order selection.
func SaveOrderSelection(c *gin.Context, sel *models.OrderSelection) {
	data, err := json.Marshal(sel)
	if err != nil {
		zap.L().Warn("failed to marshal order selection", zap.Error(err))
		return
	}
	setCookie(c, orderSelectionCookie, string(data))
}

// OrderSelection returns the persisted draft, or nil when absent.
func OrderSelection(c *gin.Context) *models.OrderSelection {
	raw, err := c.Cookie(orderSelectionCookie)
	if err != nil || raw == "" {
		return nil
	}
	var sel models.OrderSelection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		zap.L().Warn("discarding unreadable order selection", zap.Error(err))
		return nil
	}
	return &sel
}

// ClearOrderSelection drops the draft after order completion or cancellation.
func ClearOrderSelection(c *gin.Context) {
	clearCookie(c, orderSelectionCookie)
}
