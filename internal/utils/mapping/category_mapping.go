package mapping

import (
	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/assetforge/fixed_asset_app/internal/models"
)

// ToModelCategory converts a domain AssetCategory to a model AssetCategory
func ToModelCategory(d domain.AssetCategory) models.AssetCategory {
	return models.AssetCategory{
		CategoryID:            d.CategoryID,
		Name:                  d.Name,
		TagPrefix:             d.TagPrefix,
		Description:           d.Description,
		UsefulLifeMinYears:    d.UsefulLifeMinYears,
		UsefulLifeMaxYears:    d.UsefulLifeMaxYears,
		DefaultMethod:         string(d.DefaultMethod),
		DefaultSalvagePercent: d.DefaultSalvagePercent,
		IsActive:              d.IsActive,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model AssetCategory to a domain AssetCategory
func ToDomainCategory(m models.AssetCategory) domain.AssetCategory {
	return domain.AssetCategory{
		CategoryID:            m.CategoryID,
		Name:                  m.Name,
		TagPrefix:             m.TagPrefix,
		Description:           m.Description,
		UsefulLifeMinYears:    m.UsefulLifeMinYears,
		UsefulLifeMaxYears:    m.UsefulLifeMaxYears,
		DefaultMethod:         domain.DepreciationMethod(m.DefaultMethod),
		DefaultSalvagePercent: m.DefaultSalvagePercent,
		IsActive:              m.IsActive,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model categories to domain categories
func ToDomainCategorySlice(ms []models.AssetCategory) []domain.AssetCategory {
	ds := make([]domain.AssetCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
