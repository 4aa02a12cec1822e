package repositories

import (
	"context"

	"github.com/assetforge/fixed_asset_app/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for asset categories.
type CategoryRepositoryFacade interface {
	// SaveCategory persists a new category. Returns apperrors.ErrDuplicate when
	// the tag prefix is already taken.
	SaveCategory(ctx context.Context, category domain.AssetCategory) error

	// FindCategoryByID retrieves a category. Returns apperrors.ErrNotFound when absent.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error)

	// ListCategories retrieves categories ordered by creation time, newest first,
	// using token-based pagination.
	ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.AssetCategory, *string, error)

	// UpdateCategory applies administrative edits to an existing category.
	UpdateCategory(ctx context.Context, category domain.AssetCategory) error

	// CountAssetsByCategoryID reports how many assets reference the category.
	// Backs the referential invariant that referenced categories are never removed.
	CountAssetsByCategoryID(ctx context.Context, categoryID string) (int64, error)
}
