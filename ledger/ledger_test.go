package ledger_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioviking-backend/ledger"
	"studioviking-backend/models"
)

// fixedNow pins the clock so today-relative behavior is deterministic.
// 2025-03-12 is a Wednesday.
var fixedNow = time.Date(2025, time.March, 12, 13, 30, 0, 0, time.UTC)

const fixedToday = "2025-03-12"

type memPort struct {
	data map[string][]byte
}

func newMemPort() *memPort {
	return &memPort{data: map[string][]byte{}}
}

func (p *memPort) Read(collection string) ([]byte, bool, error) {
	data, ok := p.data[collection]
	return data, ok, nil
}

func (p *memPort) Write(collection string, data []byte) error {
	p.data[collection] = data
	return nil
}

func newTestLedger(t *testing.T) (*ledger.Ledger, *memPort) {
	t.Helper()
	port := newMemPort()
	led := ledger.New(port, zerolog.Nop())
	led.Now = func() time.Time { return fixedNow }
	return led, port
}

func TestFreshStoreYieldsSeedData(t *testing.T) {
	led, _ := newTestLedger(t)

	clients := led.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, "Alice Silva", clients[0].Name)

	services := led.Services()
	require.Len(t, services, 4)
	assert.Equal(t, 300.0, services[0].BasePrice)

	products := led.Products()
	require.Len(t, products, 4)
	assert.Equal(t, 24, products[0].Stock)

	appointments := led.Appointments()
	require.Len(t, appointments, 2)
	for _, apt := range appointments {
		assert.Equal(t, fixedToday, apt.Date)
	}
	assert.Equal(t, "14:00", appointments[0].Time)
	assert.Equal(t, "16:00", appointments[1].Time)

	assert.Empty(t, led.Sales())
}

func TestMalformedCollectionFallsBackToSeed(t *testing.T) {
	led, port := newTestLedger(t)
	port.data["viking_clients"] = []byte(`{"not":"a list`)

	clients := led.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, "Alice Silva", clients[0].Name)
}

func TestAddClientPersists(t *testing.T) {
	led, port := newTestLedger(t)

	client, err := led.AddClient(ledger.NewClient{Name: "Carla Mendes", Phone: "11977776666"})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.NotNil(t, client.SignedTerms)

	reopened := ledger.New(port, zerolog.Nop())
	reopened.Now = func() time.Time { return fixedNow }
	clients := reopened.Clients()
	require.Len(t, clients, 3)
	assert.Equal(t, "Carla Mendes", clients[2].Name)
}

func TestAddClientRequiresNameAndPhone(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.AddClient(ledger.NewClient{Name: "Carla Mendes"})
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)

	_, err = led.AddClient(ledger.NewClient{Phone: "11977776666"})
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestUpdateClientUnknownID(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.UpdateClient(models.Client{ID: "missing", Name: "Nobody", Phone: "0"})
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestUpdateClientLeavesAppointmentNamesAlone(t *testing.T) {
	led, _ := newTestLedger(t)

	clients := led.Clients()
	updated := clients[0]
	updated.Name = "Alice Oliveira"
	_, err := led.UpdateClient(updated)
	require.NoError(t, err)

	appointments := led.Appointments()
	assert.Equal(t, "Alice Silva", appointments[0].ClientName)
}

func TestAddServiceValidation(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.AddService(ledger.NewService{Name: "Flash Runa", BasePrice: -1, DurationMin: 60, Professional: models.ProfessionalDavid})
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)

	_, err = led.AddService(ledger.NewService{Name: "Flash Runa", BasePrice: 200, DurationMin: 60, Professional: models.ProfessionalAdmin})
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)

	service, err := led.AddService(ledger.NewService{Name: "Flash Runa", BasePrice: 200, DurationMin: 60, Professional: models.ProfessionalDavid})
	require.NoError(t, err)
	assert.NotEmpty(t, service.ID)
	assert.Len(t, led.Services(), 5)
}

func TestCreateAppointmentDenormalizesNamesAndPrice(t *testing.T) {
	led, _ := newTestLedger(t)

	apt, err := led.CreateAppointment(ledger.NewAppointment{
		ClientID:     "1",
		ServiceID:    "s2",
		Date:         "2025-03-20",
		Time:         "10:00",
		Professional: models.ProfessionalDavid,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Silva", apt.ClientName)
	assert.Equal(t, "Tatuagem Fechamento Braço", apt.ServiceName)
	assert.Equal(t, 1500.0, apt.Price)
	assert.Equal(t, models.StatusScheduled, apt.Status)
	assert.Len(t, led.Appointments(), 3)
}

func TestCreateAppointmentPriceOverride(t *testing.T) {
	led, _ := newTestLedger(t)

	override := 1200.0
	apt, err := led.CreateAppointment(ledger.NewAppointment{
		ClientID:      "1",
		ServiceID:     "s2",
		Date:          "2025-03-20",
		Time:          "10:00",
		Professional:  models.ProfessionalDavid,
		PriceOverride: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, apt.Price)
}

func TestCreateAppointmentUnknownReferences(t *testing.T) {
	led, _ := newTestLedger(t)

	apt, err := led.CreateAppointment(ledger.NewAppointment{
		ClientID:     "ghost",
		ServiceID:    "gone",
		Date:         "2025-03-20",
		Time:         "11:00",
		Professional: models.ProfessionalJey,
	})
	require.NoError(t, err)
	assert.Equal(t, ledger.UnknownName, apt.ClientName)
	assert.Equal(t, ledger.UnknownName, apt.ServiceName)
	assert.Equal(t, 0.0, apt.Price)
	assert.Len(t, led.Appointments(), 3)
}

func TestCreateAppointmentValidation(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.CreateAppointment(ledger.NewAppointment{ClientID: "1", ServiceID: "s1", Time: "10:00", Professional: models.ProfessionalDavid})
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)

	_, err = led.CreateAppointment(ledger.NewAppointment{ClientID: "1", ServiceID: "s1", Date: "2025-03-20", Time: "10:00", Professional: models.ProfessionalAdmin})
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestCreateAppointmentAllowsOverlap(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.CreateAppointment(ledger.NewAppointment{
		ClientID: "2", ServiceID: "s1", Date: fixedToday, Time: "14:00",
		Professional: models.ProfessionalDavid,
	})
	require.NoError(t, err)
	assert.Len(t, led.Appointments(), 3)
}

func TestTransitionStatusLifecycle(t *testing.T) {
	led, _ := newTestLedger(t)

	apt, err := led.TransitionStatus("a1", models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, apt.Status)

	apt, err = led.TransitionStatus("a1", models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, apt.Status)

	_, err = led.TransitionStatus("a1", models.StatusCancelled)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)
}

func TestTransitionStatusRejectsSkippingConfirmation(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.TransitionStatus("a1", models.StatusCompleted)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransition)

	appointments := led.Appointments()
	assert.Equal(t, models.StatusScheduled, appointments[0].Status)
}

func TestTransitionStatusUnknownAppointment(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.TransitionStatus("missing", models.StatusConfirmed)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestCancelledAppointmentsAreKept(t *testing.T) {
	led, _ := newTestLedger(t)

	before := len(led.Appointments())
	_, err := led.TransitionStatus("a1", models.StatusCancelled)
	require.NoError(t, err)

	appointments := led.Appointments()
	assert.Len(t, appointments, before)
	assert.Equal(t, models.StatusCancelled, appointments[0].Status)
}

func TestAdjustProductStock(t *testing.T) {
	led, _ := newTestLedger(t)

	product, err := led.AdjustProductStock("p1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, product.Stock)

	// Last write wins, so a repeat is a no-op.
	product, err = led.AdjustProductStock("p1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, product.Stock)

	_, err = led.AdjustProductStock("nope", 3)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestRegisterSaleTotalsAndDecrementsStock(t *testing.T) {
	led, _ := newTestLedger(t)

	sale, err := led.RegisterSale([]models.SaleItem{
		{ProductID: "p1", Name: "Cerveja Heineken", Quantity: 2, Price: 12},
		{ProductID: "p2", Name: "Água s/ Gás", Quantity: 1, Price: 5},
	}, models.PaymentPix)
	require.NoError(t, err)
	assert.Equal(t, 29.0, sale.Total)
	assert.Equal(t, fixedToday, sale.Date)

	products := led.Products()
	assert.Equal(t, 22, products[0].Stock)
	assert.Equal(t, 49, products[1].Stock)

	sales := led.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)
}

func TestRegisterSaleSkipsDecrementBelowZero(t *testing.T) {
	led, _ := newTestLedger(t)

	sale, err := led.RegisterSale([]models.SaleItem{
		{ProductID: "p4", Name: "Hidromel Viking", Quantity: 12, Price: 25},
	}, models.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, 300.0, sale.Total)

	products := led.Products()
	assert.Equal(t, 10, products[3].Stock)
}

func TestRegisterSaleValidation(t *testing.T) {
	led, _ := newTestLedger(t)

	_, err := led.RegisterSale(nil, models.PaymentPix)
	assert.ErrorIs(t, err, ledger.ErrEmptySale)

	_, err = led.RegisterSale([]models.SaleItem{{ProductID: "p1", Quantity: 1, Price: 12}}, models.PaymentMethod("Cheque"))
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)

	_, err = led.RegisterSale([]models.SaleItem{{ProductID: "p1", Quantity: 0, Price: 12}}, models.PaymentPix)
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)

	assert.Empty(t, led.Sales())
}
