package queries

import (
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/guard"
)

var (
	ErrGetSupplierOrdersQueryIsNotConstructed = errors.New(
		"GetSupplierOrdersQuery must be created via NewGetSupplierOrdersQuery constructor",
	)
)

// GetSupplierOrdersQuery retrieves every order created by one supplier, for
// the supplier-facing order listing.
type GetSupplierOrdersQuery struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSupplierOrdersQuery creates a query for the supplier's own orders.
func NewGetSupplierOrdersQuery(supplierID kernel.UUID) (GetSupplierOrdersQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierOrdersQuery{}, err
	}

	return GetSupplierOrdersQuery{
		supplierID: supplierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierOrdersQueryIsNotConstructed)
}

// SupplierID returns the supplier whose orders are listed.
func (q GetSupplierOrdersQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

// GetSupplierOrdersQueryResponse is one order row in the supplier listing.
type GetSupplierOrdersQueryResponse struct {
	ID               kernel.UUID
	Number           string
	Status           string
	RecipientName    string
	DestCity         string
	DestState        string
	Tier             string
	Freight          kernel.Money
	Total            kernel.Money
	PickupDate       time.Time
	ExpectedDelivery time.Time
	CreatedAt        time.Time
	DeliveredAt      *time.Time
}
