package order

import (
	"fmt"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ServiceTier selects the tariff and lead time of a shipment.
// It is immutable after order creation.
type ServiceTier int

const (
	// TierUnknown represents an invalid or undefined tier.
	TierUnknown ServiceTier = iota

	// TierExpress is the fastest and most expensive tier.
	TierExpress

	// TierNormal is the standard tier.
	TierNormal

	// TierEconomic is the cheapest and slowest tier.
	TierEconomic
)

// tariff holds the pricing and lead-time parameters of one tier.
// The freight formula is max(floorPrice, weightKg * ratePerKg): a deliberately
// simple linear tariff with no distance component, because order creation has
// no reliable distance input.
type tariff struct {
	floorPrice decimal.Decimal
	ratePerKg  decimal.Decimal
	leadDays   int
}

func getTariffs() map[ServiceTier]tariff {
	return map[ServiceTier]tariff{
		TierExpress:  {floorPrice: decimal.NewFromInt(50), ratePerKg: decimal.NewFromInt(15), leadDays: 2},
		TierNormal:   {floorPrice: decimal.NewFromInt(30), ratePerKg: decimal.NewFromInt(10), leadDays: 5},
		TierEconomic: {floorPrice: decimal.NewFromInt(20), ratePerKg: decimal.NewFromInt(7), leadDays: 7},
	}
}

func getTierStrings() map[ServiceTier]string {
	return map[ServiceTier]string{
		TierExpress:  "express",
		TierNormal:   "normal",
		TierEconomic: "economic",
	}
}

// ParseServiceTier converts the wire representation ("express", "normal",
// "economic") into a ServiceTier.
func ParseServiceTier(s string) (ServiceTier, error) {
	for tier, str := range getTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause("serviceTier",
		fmt.Errorf("%q is not one of express, normal, economic", s))
}

// Validate checks if the ServiceTier value is valid.
func (t ServiceTier) Validate() error {
	if _, ok := getTariffs()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceTier",
			fmt.Errorf("%d is not a valid service tier", t))
	}
	return nil
}

// String returns the wire representation of the tier.
func (t ServiceTier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Freight computes the freight value for the given cargo weight:
// max(floorPrice, weightKg * ratePerKg). Weight must be positive.
//
// Examples: express 1 kg -> 50.00 (floor wins), express 10 kg -> 150.00.
func (t ServiceTier) Freight(weightKg decimal.Decimal) (kernel.Money, error) {
	if err := t.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if !weightKg.IsPositive() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%s is not greater than 0", weightKg))
	}

	rates := getTariffs()[t]
	freight := weightKg.Mul(rates.ratePerKg)
	if rates.floorPrice.GreaterThan(freight) {
		freight = rates.floorPrice
	}

	return kernel.NewMoney(freight)
}

// LeadDays returns the delivery lead time of the tier in days.
func (t ServiceTier) LeadDays() int {
	if rates, ok := getTariffs()[t]; ok {
		return rates.leadDays
	}
	return 0
}

// ExpectedDelivery computes the expected delivery date:
// pickup date plus the tier's lead time.
func (t ServiceTier) ExpectedDelivery(pickupDate time.Time) time.Time {
	return pickupDate.AddDate(0, 0, t.LeadDays())
}
