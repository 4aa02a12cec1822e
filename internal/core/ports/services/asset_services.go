package services

import (
	"context"

	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/assetforge/fixed_asset_app/internal/dto"
)

// AssetSvcFacade defines the asset lifecycle operations: creation, the three
// ledger mutations, and the read accessors. This is the surface the API layer
// talks to.
type AssetSvcFacade interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.FixedAsset, error)
	GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)
	ListAssets(ctx context.Context, params dto.ListAssetsParams) (*dto.ListAssetsResponse, error)

	PostDepreciation(ctx context.Context, assetID string, req dto.PostDepreciationRequest, creatorUserID string) (*domain.DepreciationEntry, error)
	RecordDisposal(ctx context.Context, assetID string, req dto.RecordDisposalRequest, creatorUserID string) (*domain.DisposalEntry, error)
	RecordRevaluation(ctx context.Context, assetID string, req dto.RecordRevaluationRequest, creatorUserID string) (*domain.AssetRevaluation, error)

	ListDepreciationEntries(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error)
	GetDisposal(ctx context.Context, assetID string) (*domain.DisposalEntry, error)
	ListRevaluations(ctx context.Context, assetID string) ([]domain.AssetRevaluation, error)
}
