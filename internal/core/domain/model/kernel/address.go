package kernel

import (
	"mainbridge/internal/pkg/errs"
)

// Address is a value object holding the destination of a shipment.
// Street, number, neighborhood, city, state, and postal code are required;
// complement is optional. Validation of postal-code format against a
// geocoding service is an external concern and not performed here.
type Address struct {
	street       string
	number       string
	complement   string
	neighborhood string
	city         string
	state        string
	postalCode   string
}

// NewAddress creates a validated Address.
// Returns a validation error naming the first missing required field.
func NewAddress(street, number, complement, neighborhood, city, state, postalCode string) (Address, error) {
	required := []struct {
		name  string
		value string
	}{
		{"street", street},
		{"number", number},
		{"neighborhood", neighborhood},
		{"city", city},
		{"state", state},
		{"postalCode", postalCode},
	}
	for _, field := range required {
		if field.value == "" {
			return Address{}, errs.NewValueIsRequiredError(field.name)
		}
	}

	return Address{
		street:       street,
		number:       number,
		complement:   complement,
		neighborhood: neighborhood,
		city:         city,
		state:        state,
		postalCode:   postalCode,
	}, nil
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() string {
	return a.number
}

// Complement returns the optional address complement.
func (a Address) Complement() string {
	return a.complement
}

// Neighborhood returns the neighborhood.
func (a Address) Neighborhood() string {
	return a.neighborhood
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state abbreviation.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Validate checks that the address carries all required fields.
// A zero-value Address fails validation.
func (a Address) Validate() error {
	if a.street == "" || a.city == "" || a.state == "" {
		return errs.NewValueIsRequiredError("address must be created via NewAddress")
	}
	return nil
}
