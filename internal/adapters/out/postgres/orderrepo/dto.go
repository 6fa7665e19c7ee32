// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by supplier and courier for the listing queries.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number     string     `gorm:"uniqueIndex"`
	SupplierID uuid.UUID  `gorm:"type:uuid;index"`
	CourierID  *uuid.UUID `gorm:"type:uuid;index"`

	Recipient RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Address   AddressDTO   `gorm:"embedded;embeddedPrefix:addr_"`
	Cargo     CargoDTO     `gorm:"embedded;embeddedPrefix:cargo_"`

	Tier             int
	Freight          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2)"`
	PickupDate       time.Time
	ExpectedDelivery time.Time
	Notes            string
	Status           int `gorm:"index"`
	CreatedAt        time.Time
	DeliveredAt      *time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO is the embedded recipient contact block.
type RecipientDTO struct {
	Name  string
	TaxID string
	Phone string
	Email string
}

// AddressDTO is the embedded destination address block.
type AddressDTO struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
}

// CargoDTO is the embedded cargo block.
type CargoDTO struct {
	Description   string
	WeightKg      decimal.Decimal `gorm:"type:numeric(10,3)"`
	HeightCm      decimal.Decimal `gorm:"type:numeric(10,2)"`
	WidthCm       decimal.Decimal `gorm:"type:numeric(10,2)"`
	DepthCm       decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeclaredValue decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	recipient := aggregate.Recipient()
	address := aggregate.Address()
	cargo := aggregate.Cargo()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Number:     aggregate.Number(),
		SupplierID: aggregate.Supplier().Bytes(),
		CourierID:  courierID,
		Recipient: RecipientDTO{
			Name:  recipient.Name(),
			TaxID: recipient.TaxID(),
			Phone: recipient.Phone(),
			Email: recipient.Email(),
		},
		Address: AddressDTO{
			Street:       address.Street(),
			Number:       address.Number(),
			Complement:   address.Complement(),
			Neighborhood: address.Neighborhood(),
			City:         address.City(),
			State:        address.State(),
			PostalCode:   address.PostalCode(),
		},
		Cargo: CargoDTO{
			Description:   cargo.Description(),
			WeightKg:      cargo.WeightKg(),
			HeightCm:      cargo.HeightCm(),
			WidthCm:       cargo.WidthCm(),
			DepthCm:       cargo.DepthCm(),
			DeclaredValue: cargo.DeclaredValue().Amount(),
		},
		Tier:             int(aggregate.Tier()),
		Freight:          aggregate.Freight().Amount(),
		Total:            aggregate.Total().Amount(),
		PickupDate:       aggregate.PickupDate(),
		ExpectedDelivery: aggregate.ExpectedDelivery(),
		Notes:            aggregate.Notes(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO back into an order aggregate through
// RestoreOrder, so a corrupted row fails the consistency checks loudly.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	recipient, err := order.NewRecipient(
		dto.Recipient.Name,
		dto.Recipient.TaxID,
		dto.Recipient.Phone,
		dto.Recipient.Email,
	)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.Number,
		dto.Address.Complement,
		dto.Address.Neighborhood,
		dto.Address.City,
		dto.Address.State,
		dto.Address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	declaredValue, err := kernel.NewMoney(dto.Cargo.DeclaredValue)
	if err != nil {
		return nil, err
	}

	cargo, err := order.NewCargo(
		dto.Cargo.Description,
		dto.Cargo.WeightKg,
		dto.Cargo.HeightCm,
		dto.Cargo.WidthCm,
		dto.Cargo.DepthCm,
		declaredValue,
	)
	if err != nil {
		return nil, err
	}

	freight, err := kernel.NewMoney(dto.Freight)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		supplierID,
		courierID,
		recipient,
		address,
		cargo,
		order.ServiceTier(dto.Tier),
		freight,
		total,
		dto.PickupDate,
		dto.ExpectedDelivery,
		dto.Notes,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}
