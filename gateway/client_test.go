package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(url string) *Client {
	return NewClient(url, 2*time.Second, zap.NewNop())
}

func TestGetJSONInjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"code":200,"message":"ok","data":{"id":"p1"}}`))
	}))
	defer srv.Close()

	ctx := WithToken(context.Background(), "tok-123")
	env, err := newTestClient(srv.URL).GetJSON(ctx, "/product/p1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, env.Decode(&out))
	assert.Equal(t, "p1", out.ID)
}

func TestNoTokenMeansNoAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"code":200}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetJSON(context.Background(), "/health")
	require.NoError(t, err)
}

func TestUnauthorizedInvokesHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	hookCalled := false
	ctx := WithUnauthorizedHook(WithToken(context.Background(), "stale"), func() {
		hookCalled = true
	})

	_, err := newTestClient(srv.URL).GetJSON(ctx, "/user/profile")
	require.Error(t, err)
	assert.True(t, hookCalled, "401 must trigger the logout hook")
	assert.True(t, IsCode(err, 401))
}

func TestUnauthorizedWithoutHookStillErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetJSON(context.Background(), "/user/profile")
	assert.True(t, IsCode(err, 401))
}

func TestBusinessFailureEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 carrying a business failure, the store API's usual shape.
		w.Write([]byte(`{"code":400,"message":"Out of stock","errors":["size 1kg unavailable"]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetJSON(context.Background(), "/freshorder/create")
	require.Error(t, err)

	apiErr := AsAPIError(err)
	assert.Equal(t, 400, apiErr.Code)
	assert.Equal(t, "Out of stock", apiErr.Message)
	assert.Equal(t, []string{"size 1kg unavailable"}, apiErr.Errors)
}

func TestEmptyMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":400}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetJSON(context.Background(), "/shipping/add")
	apiErr := AsAPIError(err)
	assert.Equal(t, FallbackMessage, apiErr.Message)
}

func TestNetworkErrorNormalizesTo500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := newTestClient(srv.URL).GetJSON(context.Background(), "/product/p1")
	require.Error(t, err)

	apiErr := AsAPIError(err)
	assert.Equal(t, 500, apiErr.Code)
	assert.Equal(t, FallbackMessage, apiErr.Message)
	assert.NotEmpty(t, apiErr.Errors)
}

func TestNonJSONErrorStatusUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetJSON(context.Background(), "/orders/1")
	apiErr := AsAPIError(err)
	assert.Equal(t, http.StatusBadGateway, apiErr.Code)
}

func TestPostFormSendsMultipartFields(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		got = map[string]string{
			"address": r.FormValue("address"),
			"city":    r.FormValue("city"),
		}
		w.Write([]byte(`{"code":200}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PostForm(context.Background(), "/shipping/add", map[string]string{
		"address": "12 Bean St",
		"city":    "Portland",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"address": "12 Bean St", "city": "Portland"}, got)
}

func TestPostJSONSendsBody(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"code":200}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PostJSON(context.Background(), "/auth/login", map[string]string{
		"email": "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got["email"])
}

func TestRequestCanceledMidFlight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := newTestClient(srv.URL).GetJSON(ctx, "/orders/1")
	require.Error(t, err)
	assert.Equal(t, 500, AsAPIError(err).Code)
}
