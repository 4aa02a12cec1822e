package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset is the database shape of an asset register row.
type FixedAsset struct {
	AssetID                 string           `db:"asset_id"`
	AssetTag                string           `db:"asset_tag"` // Unique, generated on insert
	CategoryID              string           `db:"category_id"`
	Name                    string           `db:"name"`
	Description             string           `db:"description"`
	AcquisitionDate         time.Time        `db:"acquisition_date"`
	OriginalCost            decimal.Decimal  `db:"original_cost"`
	UsefulLifeYears         int              `db:"useful_life_years"`
	Method                  string           `db:"method"`
	SalvageValue            decimal.Decimal  `db:"salvage_value"`
	TotalEstimatedUnits     int64            `db:"total_estimated_units"`
	CurrentValue            decimal.Decimal  `db:"current_value"`
	AccumulatedDepreciation decimal.Decimal  `db:"accumulated_depreciation"`
	Status                  string           `db:"status"`
	Location                string           `db:"location"`
	Custodian               string           `db:"custodian"`
	LastDepreciationDate    *time.Time       `db:"last_depreciation_date"` // Nullable
	DisposalDate            *time.Time       `db:"disposal_date"`          // Nullable
	DisposalProceeds        *decimal.Decimal `db:"disposal_proceeds"`      // Nullable
	DisposalReason          string           `db:"disposal_reason"`
	AuditFields
}
