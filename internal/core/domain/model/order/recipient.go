package order

import (
	"mainbridge/internal/pkg/errs"
)

// Recipient identifies who receives the shipment.
// Name, tax id, and phone are required; email is optional.
type Recipient struct {
	name  string
	taxID string
	phone string
	email string
}

// NewRecipient creates a validated Recipient.
func NewRecipient(name, taxID, phone, email string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientName")
	}
	if taxID == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientTaxID")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientPhone")
	}

	return Recipient{
		name:  name,
		taxID: taxID,
		phone: phone,
		email: email,
	}, nil
}

// Name returns the recipient name.
func (r Recipient) Name() string {
	return r.name
}

// TaxID returns the recipient tax id (CPF/CNPJ).
func (r Recipient) TaxID() string {
	return r.taxID
}

// Phone returns the recipient phone number.
func (r Recipient) Phone() string {
	return r.phone
}

// Email returns the optional recipient email.
func (r Recipient) Email() string {
	return r.email
}

// Validate checks that the recipient was built through NewRecipient.
func (r Recipient) Validate() error {
	if r.name == "" || r.taxID == "" || r.phone == "" {
		return errs.NewValueIsRequiredError("recipient must be created via NewRecipient")
	}
	return nil
}
