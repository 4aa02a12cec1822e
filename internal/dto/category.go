package dto

import (
	"time"

	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the payload for creating an asset category.
type CreateCategoryRequest struct {
	Name                  string                    `json:"name" binding:"required,max=100"`
	TagPrefix             string                    `json:"tagPrefix" binding:"required,alphanum,max=8"`
	Description           string                    `json:"description" binding:"max=500"`
	UsefulLifeMinYears    int                       `json:"usefulLifeMinYears" binding:"required,gt=0"`
	UsefulLifeMaxYears    int                       `json:"usefulLifeMaxYears" binding:"required,gtecsfield=UsefulLifeMinYears"`
	DefaultMethod         domain.DepreciationMethod `json:"defaultMethod" binding:"required"`
	DefaultSalvagePercent decimal.Decimal           `json:"defaultSalvagePercent"`
}

// UpdateCategoryRequest defines the administrative edits allowed on a category.
// Nil fields are left unchanged.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryResponse defines the data returned for an asset category.
type CategoryResponse struct {
	CategoryID            string          `json:"categoryID"`
	Name                  string          `json:"name"`
	TagPrefix             string          `json:"tagPrefix"`
	Description           string          `json:"description"`
	UsefulLifeMinYears    int             `json:"usefulLifeMinYears"`
	UsefulLifeMaxYears    int             `json:"usefulLifeMaxYears"`
	DefaultMethod         string          `json:"defaultMethod"`
	DefaultSalvagePercent decimal.Decimal `json:"defaultSalvagePercent"`
	IsActive              bool            `json:"isActive"`
	CreatedAt             time.Time       `json:"createdAt"`
	CreatedBy             string          `json:"createdBy"`
}

// ListCategoriesParams holds parameters for listing categories.
type ListCategoriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListCategoriesResponse is the paginated category listing.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	NextToken  *string            `json:"nextToken,omitempty"`
}

// ToCategoryResponse converts a domain.AssetCategory to its response DTO.
func ToCategoryResponse(c *domain.AssetCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:            c.CategoryID,
		Name:                  c.Name,
		TagPrefix:             c.TagPrefix,
		Description:           c.Description,
		UsefulLifeMinYears:    c.UsefulLifeMinYears,
		UsefulLifeMaxYears:    c.UsefulLifeMaxYears,
		DefaultMethod:         string(c.DefaultMethod),
		DefaultSalvagePercent: c.DefaultSalvagePercent,
		IsActive:              c.IsActive,
		CreatedAt:             c.CreatedAt,
		CreatedBy:             c.CreatedBy,
	}
}

// ToCategoryResponses converts a slice of domain categories to response DTOs.
func ToCategoryResponses(cs []domain.AssetCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(cs))
	for i := range cs {
		responses[i] = ToCategoryResponse(&cs[i])
	}
	return responses
}
