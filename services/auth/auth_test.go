package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roastline/gateway"
	"roastline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serviceFor(t *testing.T, handler http.HandlerFunc) *DefaultAuthService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &DefaultAuthService{Gateway: gateway.NewClient(srv.URL, 2*time.Second, zap.NewNop())}
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ada@example.com", creds["email"])
		json.NewEncoder(w).Encode(map[string]any{
			"code": 200,
			"data": map[string]any{
				"token": "tok-123",
				"user":  map[string]any{"id": "u1", "firstName": "Ada"},
			},
		})
	})

	data, err := svc.Login(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", data.Token)
	assert.Equal(t, "Ada", data.User.FirstName)
}

func TestLoginBlockedAccount(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 403, "message": "blocked"})
	})

	_, err := svc.Login(context.Background(), "ada@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrAccountBlocked)
	assert.Equal(t, "Your account has been blocked. Please contact support.",
		gateway.AsAPIError(err).Message)
}

func TestLoginBadCredentialsKeepsUpstreamMessage(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 400, "message": "Invalid email or password"})
	})

	_, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountBlocked)
	assert.Equal(t, "Invalid email or password", gateway.AsAPIError(err).Message)
}

func TestRegisterBlockedAccount(t *testing.T) {
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 403})
	})

	_, err := svc.Register(context.Background(), models.Registration{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestUpdateProfileSendsFormFields(t *testing.T) {
	var got map[string]string
	svc := serviceFor(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		got = map[string]string{
			"first_name":   r.FormValue("first_name"),
			"last_name":    r.FormValue("last_name"),
			"email":        r.FormValue("email"),
			"phone_number": r.FormValue("phone_number"),
		}
		json.NewEncoder(w).Encode(map[string]any{"code": 200})
	})

	profile, err := svc.UpdateProfile(context.Background(), models.PersonalInfo{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Phone: "2345550111",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"first_name":   "Grace",
		"last_name":    "Hopper",
		"email":        "grace@example.com",
		"phone_number": "2345550111",
	}, got)
	// Empty upstream payload: the snapshot falls back to the submitted fields.
	assert.Equal(t, "grace@example.com", profile.Email)
	assert.Equal(t, "Grace", profile.FirstName)
}
