package cart

import (
	"testing"

	"roastline/models"
	"roastline/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beans(price float64) models.CartItem {
	return models.CartItem{ID: "beans-1", Name: "House Blend", Size: "250g", Price: price}
}

func TestAddMergesBySizeAndID(t *testing.T) {
	s := NewStore(3, nil)

	s.Add("sid", beans(12.5), 1)
	s.Add("sid", beans(12.5), 1)
	other := beans(22.0)
	other.Size = "1kg"
	s.Add("sid", other, 1)

	items := s.Items("sid")
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "1kg", items[1].Size)
}

func TestUpdateQuantityClampsToStoreLimit(t *testing.T) {
	s := NewStore(3, nil)
	s.Add("sid", beans(12.5), 1)

	s.UpdateQuantity("sid", "beans-1", "250g", 10)
	require.Len(t, s.Items("sid"), 1)
	assert.Equal(t, 3, s.Items("sid")[0].Quantity)

	s.UpdateQuantity("sid", "beans-1", "250g", 2)
	assert.Equal(t, 2, s.Items("sid")[0].Quantity)
}

func TestUpdateQuantityBelowOneRemoves(t *testing.T) {
	s := NewStore(3, nil)
	s.Add("sid", beans(12.5), 2)

	s.UpdateQuantity("sid", "beans-1", "250g", 0)
	assert.Empty(t, s.Items("sid"))
}

func TestTotalAndCountDeriveFromItems(t *testing.T) {
	s := NewStore(3, nil)
	s.Add("sid", beans(12.5), 2)
	big := beans(22.0)
	big.Size = "1kg"
	s.Add("sid", big, 1)

	assert.InDelta(t, 2*12.5+22.0, s.Total("sid"), 1e-9)
	assert.Equal(t, 3, s.Count("sid"))

	s.UpdateQuantity("sid", "beans-1", "250g", 1)
	s.Remove("sid", "beans-1", "1kg")
	assert.InDelta(t, 12.5, s.Total("sid"), 1e-9)
	assert.Equal(t, 1, s.Count("sid"))

	s.Clear("sid")
	assert.Zero(t, s.Total("sid"))
	assert.Zero(t, s.Count("sid"))
}

func TestSetQuantityDoesNotClamp(t *testing.T) {
	// The drawer path range-checks before calling; the store takes the value
	// as given.
	s := NewStore(3, nil)
	s.Add("sid", beans(12.5), 1)

	s.SetQuantity("sid", "beans-1", "250g", 42)
	assert.Equal(t, 42, s.Items("sid")[0].Quantity)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	s := NewStore(3, nil)
	s.Add("a", beans(12.5), 1)

	assert.Len(t, s.Items("a"), 1)
	assert.Empty(t, s.Items("b"))
}

func TestLogoutDropsSessionCart(t *testing.T) {
	bus := &session.Bus{}
	s := NewStore(3, bus)
	s.Add("sid", beans(12.5), 2)
	s.Add("other", beans(12.5), 1)

	bus.Publish(session.Event{Type: session.AuthCleared, SID: "sid"})

	assert.Empty(t, s.Items("sid"))
	assert.Len(t, s.Items("other"), 1)
}
