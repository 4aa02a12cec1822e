package services

import (
	"context"

	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/assetforge/fixed_asset_app/internal/dto"
)

// CategorySvcFacade defines the operations for managing asset categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.AssetCategory, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error)
	ListCategories(ctx context.Context, params dto.ListCategoriesParams) (*dto.ListCategoriesResponse, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.AssetCategory, error)
}
