package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetforge/fixed_asset_app/internal/apperrors"
	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/assetforge/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/assetforge/fixed_asset_app/internal/core/ports/services"
	"github.com/assetforge/fixed_asset_app/internal/dto"
	"github.com/assetforge/fixed_asset_app/internal/middleware"
)

var (
	ErrUnknownMethod       = errors.New("unknown depreciation method")
	ErrSalvagePercentRange = errors.New("default salvage percent must be between 0 and 100")
	ErrUsefulLifeRange     = errors.New("useful life range is invalid")
	ErrCategoryNameMissing = errors.New("category name is required")
)

// categoryService provides asset category administration.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
	audit        portssvc.AuditPublisher
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, audit portssvc.AuditPublisher) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
		audit:        audit,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory creates a new asset category after validation.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.AssetCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrCategoryNameMissing)
	}
	if !req.DefaultMethod.IsValid() {
		return nil, fmt.Errorf("%w: %s %q", apperrors.ErrValidation, ErrUnknownMethod, req.DefaultMethod)
	}
	if req.UsefulLifeMinYears <= 0 || req.UsefulLifeMaxYears < req.UsefulLifeMinYears {
		return nil, fmt.Errorf("%w: %s (%d..%d years)", apperrors.ErrValidation, ErrUsefulLifeRange, req.UsefulLifeMinYears, req.UsefulLifeMaxYears)
	}
	if req.DefaultSalvagePercent.IsNegative() || req.DefaultSalvagePercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: %s, got %s", apperrors.ErrValidation, ErrSalvagePercentRange, req.DefaultSalvagePercent)
	}

	now := time.Now().UTC()
	category := domain.AssetCategory{
		CategoryID:            uuid.NewString(),
		Name:                  req.Name,
		TagPrefix:             req.TagPrefix,
		Description:           req.Description,
		UsefulLifeMinYears:    req.UsefulLifeMinYears,
		UsefulLifeMaxYears:    req.UsefulLifeMaxYears,
		DefaultMethod:         req.DefaultMethod,
		DefaultSalvagePercent: req.DefaultSalvagePercent,
		IsActive:              true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Category tag prefix already taken", slog.String("tag_prefix", req.TagPrefix))
			return nil, fmt.Errorf("%w: tag prefix %q already in use", apperrors.ErrDuplicate, req.TagPrefix)
		}
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("tag_prefix", category.TagPrefix))
	publishAudit(ctx, s.audit, portssvc.AuditEvent{
		EventType:  portssvc.AuditCategoryCreated,
		Actor:      creatorUserID,
		OccurredAt: now,
		Detail:     map[string]any{"category_id": category.CategoryID, "name": category.Name},
	})
	return &category, nil
}

// GetCategoryByID retrieves a single category.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	return category, nil
}

// ListCategories retrieves a paginated list of categories.
func (s *categoryService) ListCategories(ctx context.Context, params dto.ListCategoriesParams) (*dto.ListCategoriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	categories, nextToken, err := s.categoryRepo.ListCategories(ctx, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	return &dto.ListCategoriesResponse{
		Categories: dto.ToCategoryResponses(categories),
		NextToken:  nextToken,
	}, nil
}

// UpdateCategory applies administrative edits to a category. Numeric defaults
// and the tag prefix are immutable once the category exists; only the name,
// description and active flag can change.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.AssetCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	updated := false
	if req.Name != nil && *req.Name != "" {
		category.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		category.Description = *req.Description
		updated = true
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		return category, nil
	}

	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = updaterUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	logger.Info("Category updated", slog.String("category_id", categoryID))
	return category, nil
}
