package repositories

import (
	"context"

	"github.com/assetforge/fixed_asset_app/internal/core/domain"
)

// AssetRepositoryFacade defines persistence operations for fixed assets.
type AssetRepositoryFacade interface {
	// CreateAsset persists a new asset, allocating the next tag sequence number
	// for (category, acquisition year) and stamping the generated tag onto the
	// returned asset. Runs in a single transaction.
	CreateAsset(ctx context.Context, asset domain.FixedAsset, tagPrefix string) (*domain.FixedAsset, error)

	// FindAssetByID retrieves an asset. Returns apperrors.ErrNotFound when absent.
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// ListAssets retrieves assets ordered by creation time, newest first, using
	// token-based pagination. categoryID filters when non-empty.
	ListAssets(ctx context.Context, categoryID string, limit int, nextToken *string) ([]domain.FixedAsset, *string, error)
}
