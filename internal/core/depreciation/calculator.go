// Package depreciation implements the four supported depreciation methods as
// pure functions. It has no knowledge of ledger state; callers resolve all
// inputs before calling in. Every amount is rounded to 2 decimal places with
// banker's rounding (round-half-even), the single rounding policy of the engine.
package depreciation

import (
	"errors"
	"fmt"
	"math"

	"github.com/assetforge/fixed_asset_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput indicates a malformed or out-of-range numeric input.
// It matches apperrors.ErrValidation via errors.Is.
var ErrInvalidInput = fmt.Errorf("%w: invalid depreciation input", apperrors.ErrValidation)

var twelve = decimal.NewFromInt(12)

// round applies the engine-wide rounding policy.
func round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

func validateCostAndSalvage(cost, salvage decimal.Decimal) error {
	if cost.IsNegative() {
		return fmt.Errorf("%w: cost must not be negative, got %s", ErrInvalidInput, cost)
	}
	if salvage.IsNegative() {
		return fmt.Errorf("%w: salvage value must not be negative, got %s", ErrInvalidInput, salvage)
	}
	if salvage.GreaterThan(cost) {
		return fmt.Errorf("%w: salvage value %s exceeds cost %s", ErrInvalidInput, salvage, cost)
	}
	return nil
}

// StraightLine computes depreciation for periodMonths months of an asset's
// life: ((cost - salvage) / usefulLifeYears / 12) * periodMonths.
func StraightLine(cost, salvage decimal.Decimal, usefulLifeYears, periodMonths int) (decimal.Decimal, error) {
	if usefulLifeYears <= 0 {
		return decimal.Zero, fmt.Errorf("%w: useful life must be positive, got %d years", ErrInvalidInput, usefulLifeYears)
	}
	if periodMonths <= 0 {
		return decimal.Zero, fmt.Errorf("%w: period must be positive, got %d months", ErrInvalidInput, periodMonths)
	}
	if err := validateCostAndSalvage(cost, salvage); err != nil {
		return decimal.Zero, err
	}

	monthly := cost.Sub(salvage).
		Div(decimal.NewFromInt(int64(usefulLifeYears))).
		Div(twelve)
	return round(monthly.Mul(decimal.NewFromInt(int64(periodMonths)))), nil
}

// ReducingBalance computes depreciation for periodMonths months using the
// declining-balance rate that exhausts the book value down to salvage over the
// remaining life: r = 1 - (salvage/bookValue)^(1/remainingLifeYears). The
// result is clamped so a single posting never drives the value below salvage.
// A book value already at or below salvage yields zero.
func ReducingBalance(bookValue, salvage decimal.Decimal, remainingLifeYears, periodMonths int) (decimal.Decimal, error) {
	if remainingLifeYears <= 0 {
		return decimal.Zero, fmt.Errorf("%w: remaining life must be positive, got %d years", ErrInvalidInput, remainingLifeYears)
	}
	if periodMonths <= 0 {
		return decimal.Zero, fmt.Errorf("%w: period must be positive, got %d months", ErrInvalidInput, periodMonths)
	}
	if bookValue.IsNegative() || salvage.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: book value and salvage must not be negative", ErrInvalidInput)
	}

	if bookValue.LessThanOrEqual(salvage) {
		return decimal.Zero, nil
	}

	// The fractional exponent has no exact decimal representation; this is the
	// only place float64 appears in the engine. The result is rounded to 2dp
	// immediately after.
	ratio, _ := salvage.Div(bookValue).Float64()
	rate := 1 - math.Pow(ratio, 1/float64(remainingLifeYears))

	amount := bookValue.
		Mul(decimal.NewFromFloat(rate)).
		Div(twelve).
		Mul(decimal.NewFromInt(int64(periodMonths)))
	amount = round(amount)

	if headroom := bookValue.Sub(salvage); amount.GreaterThan(headroom) {
		amount = headroom
	}
	return amount, nil
}

// UnitsOfProduction computes depreciation for the units consumed this period:
// ((cost - salvage) / totalEstimatedUnits) * unitsThisPeriod.
func UnitsOfProduction(cost, salvage decimal.Decimal, totalEstimatedUnits, unitsThisPeriod int64) (decimal.Decimal, error) {
	if totalEstimatedUnits <= 0 {
		return decimal.Zero, fmt.Errorf("%w: total estimated units must be positive, got %d", ErrInvalidInput, totalEstimatedUnits)
	}
	if unitsThisPeriod < 0 {
		return decimal.Zero, fmt.Errorf("%w: units this period must not be negative, got %d", ErrInvalidInput, unitsThisPeriod)
	}
	if err := validateCostAndSalvage(cost, salvage); err != nil {
		return decimal.Zero, err
	}

	perUnit := cost.Sub(salvage).Div(decimal.NewFromInt(totalEstimatedUnits))
	return round(perUnit.Mul(decimal.NewFromInt(unitsThisPeriod))), nil
}

// SumOfYearsDigits computes the annual depreciation for year currentYearIndex
// (1-based) of the asset's life. Years past the useful life yield zero.
// Callers prorate the annual figure to shorter periods themselves.
func SumOfYearsDigits(cost, salvage decimal.Decimal, usefulLifeYears, currentYearIndex int) (decimal.Decimal, error) {
	if usefulLifeYears <= 0 {
		return decimal.Zero, fmt.Errorf("%w: useful life must be positive, got %d years", ErrInvalidInput, usefulLifeYears)
	}
	if currentYearIndex < 1 {
		return decimal.Zero, fmt.Errorf("%w: year index must be at least 1, got %d", ErrInvalidInput, currentYearIndex)
	}
	if err := validateCostAndSalvage(cost, salvage); err != nil {
		return decimal.Zero, err
	}

	if currentYearIndex > usefulLifeYears {
		return decimal.Zero, nil
	}

	sumYears := usefulLifeYears * (usefulLifeYears + 1) / 2
	factor := decimal.NewFromInt(int64(usefulLifeYears - currentYearIndex + 1)).
		Div(decimal.NewFromInt(int64(sumYears)))
	return round(cost.Sub(salvage).Mul(factor)), nil
}

// IsInvalidInput reports whether err stems from malformed calculator input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
