package models

import (
	"github.com/shopspring/decimal"
)

// AssetCategory groups assets that share depreciation defaults and a tag prefix.
type AssetCategory struct {
	CategoryID            string          `db:"category_id"`
	Name                  string          `db:"name"`
	TagPrefix             string          `db:"tag_prefix"` // Unique
	Description           string          `db:"description"`
	UsefulLifeMinYears    int             `db:"useful_life_min_years"`
	UsefulLifeMaxYears    int             `db:"useful_life_max_years"`
	DefaultMethod         string          `db:"default_method"`
	DefaultSalvagePercent decimal.Decimal `db:"default_salvage_percent"`
	IsActive              bool            `db:"is_active"`
	AuditFields
}
