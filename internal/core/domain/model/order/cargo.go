package order

import (
	"fmt"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Cargo describes the transported goods: description, weight, optional
// dimensions, and the declared value used for insurance purposes.
// Weight and declared value must be positive; dimensions may be zero
// when the supplier does not provide them.
type Cargo struct {
	description   string
	weightKg      decimal.Decimal
	heightCm      decimal.Decimal
	widthCm       decimal.Decimal
	depthCm       decimal.Decimal
	declaredValue kernel.Money
}

// NewCargo creates a validated Cargo descriptor.
func NewCargo(
	description string,
	weightKg, heightCm, widthCm, depthCm decimal.Decimal,
	declaredValue kernel.Money,
) (Cargo, error) {
	if description == "" {
		return Cargo{}, errs.NewValueIsRequiredError("cargoDescription")
	}
	if !weightKg.IsPositive() {
		return Cargo{}, errs.NewValueIsInvalidErrorWithCause("cargoWeightKg",
			fmt.Errorf("%s is not greater than 0", weightKg))
	}
	if !declaredValue.Amount().IsPositive() {
		return Cargo{}, errs.NewValueIsInvalidErrorWithCause("cargoDeclaredValue",
			fmt.Errorf("%s is not greater than 0", declaredValue))
	}
	for name, dim := range map[string]decimal.Decimal{
		"cargoHeightCm": heightCm,
		"cargoWidthCm":  widthCm,
		"cargoDepthCm":  depthCm,
	} {
		if dim.IsNegative() {
			return Cargo{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%s is negative", dim))
		}
	}

	return Cargo{
		description:   description,
		weightKg:      weightKg,
		heightCm:      heightCm,
		widthCm:       widthCm,
		depthCm:       depthCm,
		declaredValue: declaredValue,
	}, nil
}

// Description returns the cargo description.
func (c Cargo) Description() string {
	return c.description
}

// WeightKg returns the cargo weight in kilograms.
func (c Cargo) WeightKg() decimal.Decimal {
	return c.weightKg
}

// HeightCm returns the optional cargo height in centimeters (zero when unset).
func (c Cargo) HeightCm() decimal.Decimal {
	return c.heightCm
}

// WidthCm returns the optional cargo width in centimeters (zero when unset).
func (c Cargo) WidthCm() decimal.Decimal {
	return c.widthCm
}

// DepthCm returns the optional cargo depth in centimeters (zero when unset).
func (c Cargo) DepthCm() decimal.Decimal {
	return c.depthCm
}

// DeclaredValue returns the declared cargo value.
func (c Cargo) DeclaredValue() kernel.Money {
	return c.declaredValue
}

// Validate checks that the cargo was built through NewCargo.
func (c Cargo) Validate() error {
	if c.description == "" || !c.weightKg.IsPositive() {
		return errs.NewValueIsRequiredError("cargo must be created via NewCargo")
	}
	return nil
}
