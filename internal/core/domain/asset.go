package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod identifies one of the supported depreciation algorithms.
type DepreciationMethod string

const (
	StraightLine      DepreciationMethod = "STRAIGHT_LINE"
	ReducingBalance   DepreciationMethod = "REDUCING_BALANCE"
	UnitsOfProduction DepreciationMethod = "UNITS_OF_PRODUCTION"
	SumOfYearsDigits  DepreciationMethod = "SUM_OF_YEARS_DIGITS"
)

// IsValid reports whether m is one of the supported methods.
func (m DepreciationMethod) IsValid() bool {
	switch m {
	case StraightLine, ReducingBalance, UnitsOfProduction, SumOfYearsDigits:
		return true
	}
	return false
}

// AssetStatus is the lifecycle state of a fixed asset.
//
// Transitions: ACTIVE -> FULLY_DEPRECIATED when depreciation reaches the
// salvage floor; any non-disposed state -> IMPAIRED on a downward impairment;
// any non-disposed state -> DISPOSED (terminal).
type AssetStatus string

const (
	StatusActive           AssetStatus = "ACTIVE"
	StatusFullyDepreciated AssetStatus = "FULLY_DEPRECIATED"
	StatusImpaired         AssetStatus = "IMPAIRED"
	StatusDisposed         AssetStatus = "DISPOSED"
)

// FixedAsset is the mutable aggregate root of the engine. CurrentValue and
// AccumulatedDepreciation are derived from the ledger; outside of revaluations
// CurrentValue = OriginalCost - AccumulatedDepreciation holds at all times.
// A revaluation intentionally breaks that equality: book value and the
// depreciation ledger diverge once a market adjustment occurs.
type FixedAsset struct {
	AssetID                 string             `json:"assetID"`  // Primary Key (UUID)
	AssetTag                string             `json:"assetTag"` // <prefix>-<year>-<seq>, unique
	CategoryID              string             `json:"categoryID"`
	Name                    string             `json:"name"`
	Description             string             `json:"description"`
	AcquisitionDate         time.Time          `json:"acquisitionDate"`
	OriginalCost            decimal.Decimal    `json:"originalCost"`
	UsefulLifeYears         int                `json:"usefulLifeYears"`
	Method                  DepreciationMethod `json:"method"`
	SalvageValue            decimal.Decimal    `json:"salvageValue"`
	TotalEstimatedUnits     int64              `json:"totalEstimatedUnits"` // Only meaningful for UNITS_OF_PRODUCTION
	CurrentValue            decimal.Decimal    `json:"currentValue"`
	AccumulatedDepreciation decimal.Decimal    `json:"accumulatedDepreciation"`
	Status                  AssetStatus        `json:"status"`
	Location                string             `json:"location"`
	Custodian               string             `json:"custodian"`
	LastDepreciationDate    *time.Time         `json:"lastDepreciationDate"`
	DisposalDate            *time.Time         `json:"disposalDate"`
	DisposalProceeds        *decimal.Decimal   `json:"disposalProceeds"`
	DisposalReason          string             `json:"disposalReason"`
	AuditFields
}

// IsDisposed reports whether the asset has reached its terminal state.
func (a *FixedAsset) IsDisposed() bool {
	return a.Status == StatusDisposed
}
