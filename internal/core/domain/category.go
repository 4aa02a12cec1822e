package domain

import "github.com/shopspring/decimal"

// AssetCategory is the template for assets of a kind. It carries the defaults
// applied when creating an asset and the prefix used for tag generation.
type AssetCategory struct {
	CategoryID            string             `json:"categoryID"`            // Primary Key (UUID)
	Name                  string             `json:"name"`                  // User-visible name
	TagPrefix             string             `json:"tagPrefix"`             // Short prefix for asset tags, unique
	Description           string             `json:"description"`           // Nullable
	UsefulLifeMinYears    int                `json:"usefulLifeMinYears"`    // Default useful-life range lower bound
	UsefulLifeMaxYears    int                `json:"usefulLifeMaxYears"`    // Default useful-life range upper bound
	DefaultMethod         DepreciationMethod `json:"defaultMethod"`         // Default depreciation method
	DefaultSalvagePercent decimal.Decimal    `json:"defaultSalvagePercent"` // 0..100, percent of cost
	IsActive              bool               `json:"isActive"`              // Inactive categories accept no new assets
	AuditFields
}
