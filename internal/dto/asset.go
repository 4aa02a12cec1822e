package dto

import (
	"time"

	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the payload for creating a fixed asset. Method and
// SalvageValue default from the category when omitted.
type CreateAssetRequest struct {
	CategoryID          string                     `json:"categoryID" binding:"required,uuid"`
	Name                string                     `json:"name" binding:"required,max=200"`
	Description         string                     `json:"description" binding:"max=1000"`
	AcquisitionDate     time.Time                  `json:"acquisitionDate" binding:"required"`
	OriginalCost        decimal.Decimal            `json:"originalCost" binding:"required"`
	UsefulLifeYears     int                        `json:"usefulLifeYears" binding:"required,gt=0"`
	Method              *domain.DepreciationMethod `json:"method"`
	SalvageValue        *decimal.Decimal           `json:"salvageValue"`
	TotalEstimatedUnits int64                      `json:"totalEstimatedUnits" binding:"omitempty,gt=0"`
	Location            string                     `json:"location" binding:"max=200"`
	Custodian           string                     `json:"custodian" binding:"max=200"`
}

// AssetResponse defines the data returned for a fixed asset.
type AssetResponse struct {
	AssetID                 string           `json:"assetID"`
	AssetTag                string           `json:"assetTag"`
	CategoryID              string           `json:"categoryID"`
	Name                    string           `json:"name"`
	Description             string           `json:"description"`
	AcquisitionDate         time.Time        `json:"acquisitionDate"`
	OriginalCost            decimal.Decimal  `json:"originalCost"`
	UsefulLifeYears         int              `json:"usefulLifeYears"`
	Method                  string           `json:"method"`
	SalvageValue            decimal.Decimal  `json:"salvageValue"`
	TotalEstimatedUnits     int64            `json:"totalEstimatedUnits,omitempty"`
	CurrentValue            decimal.Decimal  `json:"currentValue"`
	AccumulatedDepreciation decimal.Decimal  `json:"accumulatedDepreciation"`
	Status                  string           `json:"status"`
	Location                string           `json:"location"`
	Custodian               string           `json:"custodian"`
	LastDepreciationDate    *time.Time       `json:"lastDepreciationDate,omitempty"`
	DisposalDate            *time.Time       `json:"disposalDate,omitempty"`
	DisposalProceeds        *decimal.Decimal `json:"disposalProceeds,omitempty"`
	DisposalReason          string           `json:"disposalReason,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
	CreatedBy               string           `json:"createdBy"`
}

// ListAssetsParams holds parameters for listing assets.
type ListAssetsParams struct {
	CategoryID string  `form:"categoryID"`
	Limit      int     `form:"limit"`
	NextToken  *string `form:"nextToken"`
}

// ListAssetsResponse is the paginated asset listing.
type ListAssetsResponse struct {
	Assets    []AssetResponse `json:"assets"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToAssetResponse converts a domain.FixedAsset to its response DTO.
func ToAssetResponse(a *domain.FixedAsset) AssetResponse {
	return AssetResponse{
		AssetID:                 a.AssetID,
		AssetTag:                a.AssetTag,
		CategoryID:              a.CategoryID,
		Name:                    a.Name,
		Description:             a.Description,
		AcquisitionDate:         a.AcquisitionDate,
		OriginalCost:            a.OriginalCost,
		UsefulLifeYears:         a.UsefulLifeYears,
		Method:                  string(a.Method),
		SalvageValue:            a.SalvageValue,
		TotalEstimatedUnits:     a.TotalEstimatedUnits,
		CurrentValue:            a.CurrentValue,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		Status:                  string(a.Status),
		Location:                a.Location,
		Custodian:               a.Custodian,
		LastDepreciationDate:    a.LastDepreciationDate,
		DisposalDate:            a.DisposalDate,
		DisposalProceeds:        a.DisposalProceeds,
		DisposalReason:          a.DisposalReason,
		CreatedAt:               a.CreatedAt,
		CreatedBy:               a.CreatedBy,
	}
}

// ToAssetResponses converts a slice of domain assets to response DTOs.
func ToAssetResponses(as []domain.FixedAsset) []AssetResponse {
	responses := make([]AssetResponse, len(as))
	for i := range as {
		responses[i] = ToAssetResponse(&as[i])
	}
	return responses
}
