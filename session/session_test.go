package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roastline/config"
	"roastline/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	m.Run()
}

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

// responseCookies replays what the browser would store.
func responseCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	return w.Result().Cookies()
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestSIDMintedOnceAndReused(t *testing.T) {
	c, w := newContext()

	first := SID(c)
	require.NotEmpty(t, first)
	assert.Equal(t, first, SID(c), "same request, same id")

	minted := cookieByName(responseCookies(w), SIDCookie)
	require.NotNil(t, minted)
	assert.Equal(t, first, minted.Value)

	// A later request carrying the cookie keeps its id.
	c2, w2 := newContext(&http.Cookie{Name: SIDCookie, Value: first})
	assert.Equal(t, first, SID(c2))
	assert.Nil(t, cookieByName(responseCookies(w2), SIDCookie), "no re-mint")
}

func TestSetAuthRoundTrip(t *testing.T) {
	c, w := newContext()
	user := &models.UserProfile{ID: "u1", FirstName: "Ada", Email: "ada@example.com"}

	SetAuth(c, "tok-123", user)
	cookies := responseCookies(w)

	token := cookieByName(cookies, "auth_token")
	require.NotNil(t, token)
	assert.Equal(t, "tok-123", token.Value)
	assert.True(t, token.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, token.SameSite)
	assert.Equal(t, config.CookieMaxAge(), token.MaxAge)

	snapshot := cookieByName(cookies, "user_data")
	require.NotNil(t, snapshot)

	c2, _ := newContext(token, snapshot)
	assert.Equal(t, "tok-123", Token(c2))
	got := UserData(c2)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.FirstName)
}

func TestPartialSessionIsLegal(t *testing.T) {
	// Token without a profile snapshot: both reads stay independent.
	c, _ := newContext(&http.Cookie{Name: "auth_token", Value: "tok-123"})
	assert.Equal(t, "tok-123", Token(c))
	assert.Nil(t, UserData(c))
}

func TestCorruptUserSnapshotDiscarded(t *testing.T) {
	c, _ := newContext(&http.Cookie{Name: "user_data", Value: "not json"})
	assert.Nil(t, UserData(c))
}

func TestClearAuthExpiresCookiesAndPublishes(t *testing.T) {
	bus := &Bus{}
	orig := Events
	Events = bus
	defer func() { Events = orig }()

	var events []Event
	bus.Subscribe(func(ev Event) { events = append(events, ev) })

	c, w := newContext(&http.Cookie{Name: SIDCookie, Value: "sid-1"})
	ClearAuth(c)

	cookies := responseCookies(w)
	for _, name := range []string{"auth_token", "user_data"} {
		ck := cookieByName(cookies, name)
		require.NotNil(t, ck, name)
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge, "%s must expire", name)
	}

	require.Len(t, events, 1)
	assert.Equal(t, AuthCleared, events[0].Type)
	assert.Equal(t, "sid-1", events[0].SID)
}

func TestSetAuthPublishesAuthSet(t *testing.T) {
	bus := &Bus{}
	orig := Events
	Events = bus
	defer func() { Events = orig }()

	var got []Event
	bus.Subscribe(func(ev Event) { got = append(got, ev) })

	c, _ := newContext(&http.Cookie{Name: SIDCookie, Value: "sid-2"})
	SetAuth(c, "tok", nil)

	require.Len(t, got, 1)
	assert.Equal(t, AuthSet, got[0].Type)
	assert.Equal(t, "sid-2", got[0].SID)
}

func TestOrderSelectionRoundTrip(t *testing.T) {
	c, w := newContext()
	SaveOrderSelection(c, &models.OrderSelection{
		ProductID: "beans-1",
		Size:      models.Size{ID: 2, Price: 22},
		Quantity:  2,
	})

	saved := cookieByName(responseCookies(w), "order_selection")
	require.NotNil(t, saved)

	c2, _ := newContext(saved)
	sel := OrderSelection(c2)
	require.NotNil(t, sel)
	assert.Equal(t, "beans-1", sel.ProductID)
	assert.Equal(t, 2, sel.Quantity)

	c3, w3 := newContext(saved)
	ClearOrderSelection(c3)
	cleared := cookieByName(responseCookies(w3), "order_selection")
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestUpdateUserLeavesTokenAlone(t *testing.T) {
	c, w := newContext()
	UpdateUser(c, &models.UserProfile{ID: "u1", FirstName: "Grace"})

	cookies := responseCookies(w)
	assert.Nil(t, cookieByName(cookies, "auth_token"))
	require.NotNil(t, cookieByName(cookies, "user_data"))
}
