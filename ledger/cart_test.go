package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioviking-backend/ledger"
	"studioviking-backend/models"
)

func TestCartAddRefusesOutOfStock(t *testing.T) {
	var cart ledger.Cart

	assert.False(t, cart.Add(models.Product{ID: "p0", Name: "Esgotado", Price: 10, Stock: 0}))
	assert.Equal(t, 0, cart.Len())
}

func TestCartAddBumpsExistingLine(t *testing.T) {
	var cart ledger.Cart
	beer := models.Product{ID: "p1", Name: "Cerveja Heineken", Price: 12, Stock: 24}

	require.True(t, cart.Add(beer))
	require.True(t, cart.Add(beer))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 24.0, cart.Total())
}

func TestCartQuantityClampedToStock(t *testing.T) {
	var cart ledger.Cart
	beer := models.Product{ID: "p1", Name: "Cerveja Heineken", Price: 12, Stock: 24}

	require.True(t, cart.Add(beer))
	cart.UpdateQuantity("p1", 30)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 24, lines[0].Quantity)

	cart.UpdateQuantity("p1", -100)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCartRemoveAndClear(t *testing.T) {
	var cart ledger.Cart
	cart.Add(models.Product{ID: "p1", Name: "Cerveja Heineken", Price: 12, Stock: 24})
	cart.Add(models.Product{ID: "p2", Name: "Água s/ Gás", Price: 5, Stock: 50})

	cart.Remove("p1")
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, "p2", cart.Lines()[0].Product.ID)

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartCheckoutSellsWholeStock(t *testing.T) {
	led, _ := newTestLedger(t)

	var cart ledger.Cart
	products := led.Products()
	require.True(t, cart.Add(products[0]))
	cart.UpdateQuantity(products[0].ID, 30)

	sale, err := led.RegisterSale(cart.Items(), models.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, 288.0, sale.Total)

	assert.Equal(t, 0, led.Products()[0].Stock)
}

func TestCartItemsSnapshotPrices(t *testing.T) {
	var cart ledger.Cart
	cart.Add(models.Product{ID: "p4", Name: "Hidromel Viking", Price: 25, Stock: 10})
	cart.UpdateQuantity("p4", 2)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Hidromel Viking", items[0].Name)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 25.0, items[0].Price)
}
