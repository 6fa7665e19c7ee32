package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
// Money and measurement fields accept JSON numbers or numeric strings.
type CreateOrderRequest struct {
	Recipient  RecipientPayload `json:"recipient"`
	Address    AddressPayload   `json:"address"`
	Cargo      CargoPayload     `json:"cargo"`
	Tier       string           `json:"tier"`
	PickupDate string           `json:"pickupDate"`
	Notes      string           `json:"notes"`
}

type RecipientPayload struct {
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type AddressPayload struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
}

type CargoPayload struct {
	Description   string          `json:"description"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	HeightCm      decimal.Decimal `json:"heightCm"`
	WidthCm       decimal.Decimal `json:"widthCm"`
	DepthCm       decimal.Decimal `json:"depthCm"`
	DeclaredValue decimal.Decimal `json:"declaredValue"`
}

// UpdateTransitRequest is the payload for POST /api/v1/orders/:orderID/transit.
type UpdateTransitRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the order summary returned by the lifecycle endpoints.
type OrderResponse struct {
	ID               uuid.UUID  `json:"id"`
	Number           string     `json:"number"`
	Status           string     `json:"status"`
	Freight          string     `json:"freight"`
	Total            string     `json:"total"`
	CourierPayout    string     `json:"courierPayout"`
	PickupDate       time.Time  `json:"pickupDate"`
	ExpectedDelivery time.Time  `json:"expectedDelivery"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
}

// OfferResponse is one claimable offer in GET /api/v1/offers.
type OfferResponse struct {
	OfferID     uuid.UUID `json:"offerId"`
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	OriginCity  string    `json:"originCity"`
	OriginState string    `json:"originState"`
	DestCity    string    `json:"destCity"`
	DestState   string    `json:"destState"`
	DistanceKm  string    `json:"distanceKm"`
	Payout      string    `json:"payout"`
	PickupDate  time.Time `json:"pickupDate"`
	Deadline    time.Time `json:"deadline"`
	PublishedAt time.Time `json:"publishedAt"`
}

// SupplierOrderResponse is one entry in GET /api/v1/orders.
type SupplierOrderResponse struct {
	ID               uuid.UUID  `json:"id"`
	Number           string     `json:"number"`
	Status           string     `json:"status"`
	RecipientName    string     `json:"recipientName"`
	DestCity         string     `json:"destCity"`
	DestState        string     `json:"destState"`
	Tier             string     `json:"tier"`
	Freight          string     `json:"freight"`
	Total            string     `json:"total"`
	PickupDate       time.Time  `json:"pickupDate"`
	ExpectedDelivery time.Time  `json:"expectedDelivery"`
	CreatedAt        time.Time  `json:"createdAt"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
}

// TrackingResponse is the order history for GET /api/v1/orders/:orderID/tracking.
type TrackingResponse struct {
	OrderID uuid.UUID       `json:"orderId"`
	Number  string          `json:"number"`
	Status  string          `json:"status"`
	Events  []TrackingEvent `json:"events"`
}

type TrackingEvent struct {
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// EarningsResponse is the courier earnings report.
type EarningsResponse struct {
	Today   string           `json:"today"`
	Week    string           `json:"week"`
	Total   string           `json:"total"`
	Records []EarningsRecord `json:"records"`
}

type EarningsRecord struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Value       string    `json:"value"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CourierStatisticsResponse is the materialized courier dashboard row.
type CourierStatisticsResponse struct {
	CourierID       uuid.UUID `json:"courierId"`
	DeliveriesTotal int       `json:"deliveriesTotal"`
	EarningsToday   string    `json:"earningsToday"`
	EarningsWeek    string    `json:"earningsWeek"`
	EarningsTotal   string    `json:"earningsTotal"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SupplierStatisticsResponse is the materialized supplier dashboard row.
type SupplierStatisticsResponse struct {
	SupplierID       uuid.UUID `json:"supplierId"`
	OrdersTotal      int       `json:"ordersTotal"`
	OrdersInProgress int       `json:"ordersInProgress"`
	OrdersDelivered  int       `json:"ordersDelivered"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
