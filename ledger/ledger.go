package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studioviking-backend/models"
	"studioviking-backend/store"
	"studioviking-backend/utils"
)

// Collection keys in the backing store. The viking_ prefix is the
// studio's historical namespace and must not change, or existing
// installs lose their data.
const (
	colClients      = "viking_clients"
	colServices     = "viking_services"
	colAppointments = "viking_appointments"
	colProducts     = "viking_products"
	colSales        = "viking_sales"
)

// UnknownName is the denormalized display name recorded when a
// referenced client or service no longer resolves.
const UnknownName = "Unknown"

// Ledger is the authoritative view of clients, services, appointments,
// bar products and sales. Every read loads the collection fresh from
// the store; every mutation writes the whole collection back. The
// process has a single actor, so no locking is needed.
type Ledger struct {
	port store.Port
	log  zerolog.Logger

	// Now is the clock used to date sales and seed appointments.
	// Replaceable in tests.
	Now func() time.Time
}

func New(port store.Port, log zerolog.Logger) *Ledger {
	return &Ledger{port: port, log: log, Now: time.Now}
}

func (l *Ledger) today() string {
	return utils.DateOf(l.Now())
}

// seedOrRecover is the single fallback policy: a collection that is
// absent, unreadable or malformed yields the seed dataset. This is the
// design contract for first runs, not a failure path.
func seedOrRecover[T any](l *Ledger, collection string, seed []T) []T {
	data, ok, err := l.port.Read(collection)
	if err != nil {
		l.log.Warn().Err(err).Str("collection", collection).Msg("store read failed, falling back to seed data")
		return seed
	}
	if !ok {
		return seed
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		l.log.Warn().Err(err).Str("collection", collection).Msg("stored data malformed, falling back to seed data")
		return seed
	}
	return records
}

func persist[T any](l *Ledger, collection string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	return l.port.Write(collection, data)
}

// Clients returns the client directory.
func (l *Ledger) Clients() []models.Client {
	return seedOrRecover(l, colClients, seedClients())
}

// Services returns the service catalog.
func (l *Ledger) Services() []models.ServiceItem {
	return seedOrRecover(l, colServices, seedServices())
}

// Appointments returns every appointment ever created.
func (l *Ledger) Appointments() []models.Appointment {
	return seedOrRecover(l, colAppointments, seedAppointments(l.today()))
}

// Products returns the bar inventory.
func (l *Ledger) Products() []models.Product {
	return seedOrRecover(l, colProducts, seedProducts())
}

// Sales returns the append-only sales history.
func (l *Ledger) Sales() []models.Sale {
	return seedOrRecover(l, colSales, seedSales())
}

// NewClient carries the fields of a client being registered.
type NewClient struct {
	Name      string
	Phone     string
	Instagram string
	BirthDate string
	Notes     string
}

// AddClient registers a client and persists the directory.
func (l *Ledger) AddClient(input NewClient) (models.Client, error) {
	if input.Name == "" || input.Phone == "" {
		return models.Client{}, fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}
	client := models.Client{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Phone:       input.Phone,
		Instagram:   input.Instagram,
		BirthDate:   input.BirthDate,
		Notes:       input.Notes,
		SignedTerms: []string{},
	}
	clients := append(l.Clients(), client)
	if err := persist(l, colClients, clients); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// UpdateClient replaces a client record by identifier. Past
// appointments keep the name they were created with.
func (l *Ledger) UpdateClient(client models.Client) (models.Client, error) {
	clients := l.Clients()
	for i := range clients {
		if clients[i].ID != client.ID {
			continue
		}
		clients[i] = client
		if err := persist(l, colClients, clients); err != nil {
			return models.Client{}, err
		}
		return client, nil
	}
	return models.Client{}, fmt.Errorf("%w: client %s", ErrNotFound, client.ID)
}

// NewService carries the fields of a catalog entry being created.
type NewService struct {
	Name         string
	BasePrice    float64
	DurationMin  int
	Professional models.Professional
}

// AddService appends a catalog entry. The catalog is read-mostly;
// this is an administrative action.
func (l *Ledger) AddService(input NewService) (models.ServiceItem, error) {
	if input.Name == "" {
		return models.ServiceItem{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.BasePrice < 0 {
		return models.ServiceItem{}, fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	if input.DurationMin <= 0 {
		return models.ServiceItem{}, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if !input.Professional.IsPractitioner() {
		return models.ServiceItem{}, fmt.Errorf("%w: service must belong to a practitioner", ErrInvalidInput)
	}
	service := models.ServiceItem{
		ID:           uuid.NewString(),
		Name:         input.Name,
		BasePrice:    input.BasePrice,
		DurationMin:  input.DurationMin,
		Professional: input.Professional,
	}
	services := append(l.Services(), service)
	if err := persist(l, colServices, services); err != nil {
		return models.ServiceItem{}, err
	}
	return service, nil
}

// NewAppointment carries the fields of a booking request.
type NewAppointment struct {
	ClientID      string
	ServiceID     string
	Date          string // ISO YYYY-MM-DD
	Time          string // HH:mm
	Professional  models.Professional
	PriceOverride *float64
}

// CreateAppointment books a session. Client and service references
// resolve softly: an unknown identifier falls back to the Unknown
// placeholder (and a zero base price) rather than failing, so a
// booking is never lost over a deleted record. Overlapping bookings
// for the same practitioner are allowed; walk-ins get squeezed in at
// the studio's discretion.
func (l *Ledger) CreateAppointment(input NewAppointment) (models.Appointment, error) {
	if input.Date == "" || input.Time == "" {
		return models.Appointment{}, fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}
	if !input.Professional.IsPractitioner() {
		return models.Appointment{}, fmt.Errorf("%w: appointments belong to a practitioner, not %q", ErrInvalidInput, input.Professional)
	}

	clientName := UnknownName
	for _, client := range l.Clients() {
		if client.ID == input.ClientID {
			clientName = client.Name
			break
		}
	}

	serviceName := UnknownName
	var basePrice float64
	for _, service := range l.Services() {
		if service.ID == input.ServiceID {
			serviceName = service.Name
			basePrice = service.BasePrice
			break
		}
	}

	price := basePrice
	if input.PriceOverride != nil {
		price = *input.PriceOverride
	}

	appointment := models.Appointment{
		ID:           uuid.NewString(),
		ClientID:     input.ClientID,
		ClientName:   clientName,
		ServiceID:    input.ServiceID,
		ServiceName:  serviceName,
		Date:         input.Date,
		Time:         input.Time,
		Price:        price,
		Professional: input.Professional,
		Status:       models.StatusScheduled,
	}

	appointments := append(l.Appointments(), appointment)
	if err := persist(l, colAppointments, appointments); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// TransitionStatus moves an appointment along its lifecycle. Only
// edges of the documented state machine are accepted; everything else
// is ErrInvalidTransition. Only the status field changes.
func (l *Ledger) TransitionStatus(id string, next models.AppointmentStatus) (models.Appointment, error) {
	if !next.IsValid() {
		return models.Appointment{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, next)
	}
	appointments := l.Appointments()
	for i := range appointments {
		if appointments[i].ID != id {
			continue
		}
		if !appointments[i].Status.CanTransitionTo(next) {
			return models.Appointment{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointments[i].Status, next)
		}
		appointments[i].Status = next
		if err := persist(l, colAppointments, appointments); err != nil {
			return models.Appointment{}, err
		}
		return appointments[i], nil
	}
	return models.Appointment{}, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
}

// AdjustProductStock overwrites a product's stock count. Last write
// wins; no lower bound is enforced here — quantity capping happens at
// cart time.
func (l *Ledger) AdjustProductStock(productID string, newStock int) (models.Product, error) {
	products := l.Products()
	for i := range products {
		if products[i].ID != productID {
			continue
		}
		products[i].Stock = newStock
		if err := persist(l, colProducts, products); err != nil {
			return models.Product{}, err
		}
		return products[i], nil
	}
	return models.Product{}, fmt.Errorf("%w: product %s", ErrNotFound, productID)
}

// RegisterSale records a checkout dated today and decrements stock for
// each line. The sale itself is immutable once written. Decrements are
// separate writes, one per line, not a transaction: the cart already
// capped quantities at stock, so a line that would still push stock
// negative is skipped rather than applied.
func (l *Ledger) RegisterSale(items []models.SaleItem, method models.PaymentMethod) (models.Sale, error) {
	if len(items) == 0 {
		return models.Sale{}, ErrEmptySale
	}
	if !method.IsValid() {
		return models.Sale{}, fmt.Errorf("%w: payment method %q", ErrInvalidInput, method)
	}
	var total float64
	for _, item := range items {
		if item.Quantity < 1 {
			return models.Sale{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
		}
		total += item.Price * float64(item.Quantity)
	}

	sale := models.Sale{
		ID:            uuid.NewString(),
		Date:          l.today(),
		Items:         items,
		Total:         total,
		PaymentMethod: method,
	}
	sales := append(l.Sales(), sale)
	if err := persist(l, colSales, sales); err != nil {
		return models.Sale{}, err
	}

	for _, item := range items {
		for _, product := range l.Products() {
			if product.ID != item.ProductID {
				continue
			}
			remaining := product.Stock - item.Quantity
			if remaining < 0 {
				l.log.Warn().
					Str("product", product.ID).
					Int("stock", product.Stock).
					Int("quantity", item.Quantity).
					Msg("skipping stock decrement that would go negative")
				break
			}
			if _, err := l.AdjustProductStock(product.ID, remaining); err != nil {
				l.log.Warn().Err(err).Str("product", product.ID).Msg("stock decrement failed")
			}
			break
		}
	}
	return sale, nil
}
