package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/assetforge/fixed_asset_app/internal/apperrors"
	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/assetforge/fixed_asset_app/internal/core/ports/repositories"
	"github.com/assetforge/fixed_asset_app/internal/models"
	"github.com/assetforge/fixed_asset_app/internal/utils/mapping"
	"github.com/assetforge/fixed_asset_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for asset category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, tag_prefix, description, useful_life_min_years, useful_life_max_years,
	default_method, default_salvage_percent, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (*models.AssetCategory, error) {
	var m models.AssetCategory
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.TagPrefix,
		&m.Description,
		&m.UsefulLifeMinYears,
		&m.UsefulLifeMaxYears,
		&m.DefaultMethod,
		&m.DefaultSalvagePercent,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCategory persists a new asset category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.AssetCategory) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO asset_categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.TagPrefix,
		m.Description,
		m.UsefulLifeMinYears,
		m.UsefulLifeMaxYears,
		m.DefaultMethod,
		m.DefaultSalvagePercent,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("%w: category tag prefix %q", apperrors.ErrDuplicate, m.TagPrefix)
		}
		return apperrors.NewAppError(500, "failed to insert category "+m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a single category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM asset_categories WHERE category_id = $1;`
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category " + categoryID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find category "+categoryID, err)
	}
	d := mapping.ToDomainCategory(*m)
	return &d, nil
}

// ListCategories retrieves a paginated list of categories using token-based pagination.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.AssetCategory, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + categoryColumns + ` FROM asset_categories`
	orderByClause := `ORDER BY created_at DESC, category_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		query := baseQuery + ` WHERE (created_at, category_id) < ($1, $2) ` + orderByClause + ` LIMIT $3;`
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + ` ` + orderByClause + ` LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	categories := make([]models.AssetCategory, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan category row", scanErr)
		}
		categories = append(categories, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}

	var nextTokenVal *string
	if len(categories) > limit {
		last := categories[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.CategoryID)
		nextTokenVal = &token
		categories = categories[:limit]
	}

	return mapping.ToDomainCategorySlice(categories), nextTokenVal, nil
}

// UpdateCategory applies administrative edits to an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.AssetCategory) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE asset_categories
		SET name = $2, description = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Description,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category "+m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + m.CategoryID + " not found")
	}
	return nil
}

// CountAssetsByCategoryID reports how many assets reference the category.
func (r *PgxCategoryRepository) CountAssetsByCategoryID(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM fixed_assets WHERE category_id = $1;`, categoryID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count assets for category "+categoryID, err)
	}
	return count, nil
}
