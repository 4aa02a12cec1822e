package mapping

import (
	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/assetforge/fixed_asset_app/internal/models"
)

// ToModelAsset converts a domain FixedAsset to a model FixedAsset
func ToModelAsset(d domain.FixedAsset) models.FixedAsset {
	return models.FixedAsset{
		AssetID:                 d.AssetID,
		AssetTag:                d.AssetTag,
		CategoryID:              d.CategoryID,
		Name:                    d.Name,
		Description:             d.Description,
		AcquisitionDate:         d.AcquisitionDate,
		OriginalCost:            d.OriginalCost,
		UsefulLifeYears:         d.UsefulLifeYears,
		Method:                  string(d.Method),
		SalvageValue:            d.SalvageValue,
		TotalEstimatedUnits:     d.TotalEstimatedUnits,
		CurrentValue:            d.CurrentValue,
		AccumulatedDepreciation: d.AccumulatedDepreciation,
		Status:                  string(d.Status),
		Location:                d.Location,
		Custodian:               d.Custodian,
		LastDepreciationDate:    d.LastDepreciationDate,
		DisposalDate:            d.DisposalDate,
		DisposalProceeds:        d.DisposalProceeds,
		DisposalReason:          d.DisposalReason,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model FixedAsset to a domain FixedAsset
func ToDomainAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:                 m.AssetID,
		AssetTag:                m.AssetTag,
		CategoryID:              m.CategoryID,
		Name:                    m.Name,
		Description:             m.Description,
		AcquisitionDate:         m.AcquisitionDate,
		OriginalCost:            m.OriginalCost,
		UsefulLifeYears:         m.UsefulLifeYears,
		Method:                  domain.DepreciationMethod(m.Method),
		SalvageValue:            m.SalvageValue,
		TotalEstimatedUnits:     m.TotalEstimatedUnits,
		CurrentValue:            m.CurrentValue,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		Status:                  domain.AssetStatus(m.Status),
		Location:                m.Location,
		Custodian:               m.Custodian,
		LastDepreciationDate:    m.LastDepreciationDate,
		DisposalDate:            m.DisposalDate,
		DisposalProceeds:        m.DisposalProceeds,
		DisposalReason:          m.DisposalReason,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssetSlice converts a slice of model assets to domain assets
func ToDomainAssetSlice(ms []models.FixedAsset) []domain.FixedAsset {
	ds := make([]domain.FixedAsset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
