package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/assetforge/fixed_asset_app/internal/apperrors"
	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/assetforge/fixed_asset_app/internal/core/ports/repositories"
	"github.com/assetforge/fixed_asset_app/internal/models"
	"github.com/assetforge/fixed_asset_app/internal/utils/mapping"
	"github.com/assetforge/fixed_asset_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for fixed asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, asset_tag, category_id, name, description, acquisition_date, original_cost,
	useful_life_years, method, salvage_value, total_estimated_units, current_value, accumulated_depreciation,
	status, location, custodian, last_depreciation_date, disposal_date, disposal_proceeds, disposal_reason,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAsset(row pgx.Row) (*models.FixedAsset, error) {
	var m models.FixedAsset
	err := row.Scan(
		&m.AssetID,
		&m.AssetTag,
		&m.CategoryID,
		&m.Name,
		&m.Description,
		&m.AcquisitionDate,
		&m.OriginalCost,
		&m.UsefulLifeYears,
		&m.Method,
		&m.SalvageValue,
		&m.TotalEstimatedUnits,
		&m.CurrentValue,
		&m.AccumulatedDepreciation,
		&m.Status,
		&m.Location,
		&m.Custodian,
		&m.LastDepreciationDate,
		&m.DisposalDate,
		&m.DisposalProceeds,
		&m.DisposalReason,
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

// CreateAsset inserts a new asset, allocating the next tag sequence number for
// (category, acquisition year) in the same transaction so tags are gapless per
// year and never collide under concurrent creation.
func (r *PgxAssetRepository) CreateAsset(ctx context.Context, asset domain.FixedAsset, tagPrefix string) (*domain.FixedAsset, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	year := asset.AcquisitionDate.Year()

	var sequence int64
	seqQuery := `
		INSERT INTO asset_tag_sequences (category_id, year, next_value)
		VALUES ($1, $2, 2)
		ON CONFLICT (category_id, year)
		DO UPDATE SET next_value = asset_tag_sequences.next_value + 1
		RETURNING next_value - 1;
	`
	if err := tx.QueryRow(ctx, seqQuery, asset.CategoryID, year).Scan(&sequence); err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate asset tag sequence for category "+asset.CategoryID, err)
	}

	asset.AssetTag = domain.FormatAssetTag(tagPrefix, year, sequence)

	m := mapping.ToModelAsset(asset)
	insertQuery := `
		INSERT INTO fixed_assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.AssetID,
		m.AssetTag,
		m.CategoryID,
		m.Name,
		m.Description,
		m.AcquisitionDate,
		m.OriginalCost,
		m.UsefulLifeYears,
		m.Method,
		m.SalvageValue,
		m.TotalEstimatedUnits,
		m.CurrentValue,
		m.AccumulatedDepreciation,
		m.Status,
		m.Location,
		m.Custodian,
		m.LastDepreciationDate,
		m.DisposalDate,
		m.DisposalProceeds,
		m.DisposalReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, apperrors.NewAppError(409, "asset tag "+m.AssetTag+" already exists", err)
		}
		return nil, apperrors.NewAppError(500, "failed to insert asset "+m.AssetID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &asset, nil
}

// FindAssetByID retrieves a single asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1;`
	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("asset " + assetID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find asset "+assetID, err)
	}
	d := mapping.ToDomainAsset(*m)
	return &d, nil
}

// ListAssets retrieves a paginated list of assets, optionally filtered by
// category, using token-based pagination.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, categoryID string, limit int, nextToken *string) ([]domain.FixedAsset, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + assetColumns + ` FROM fixed_assets`
	orderByClause := `ORDER BY created_at DESC, asset_id DESC`

	conditions := ""
	args := []interface{}{}
	if categoryID != "" {
		args = append(args, categoryID)
		conditions = `category_id = $1`
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		if conditions != "" {
			conditions += ` AND (created_at, asset_id) < ($2, $3)`
		} else {
			conditions = `(created_at, asset_id) < ($1, $2)`
		}
		args = append(args, lastCreatedAt, lastID)
	}

	query := baseQuery
	if conditions != "" {
		query += ` WHERE ` + conditions
	}
	query += ` ` + orderByClause
	args = append(args, fetchLimit)
	query += ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query assets", err)
	}
	defer rows.Close()

	assets := make([]models.FixedAsset, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanAsset(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan asset row", scanErr)
		}
		assets = append(assets, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating asset rows", err)
	}

	var nextTokenVal *string
	if len(assets) > limit {
		last := assets[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.AssetID)
		nextTokenVal = &token
		assets = assets[:limit]
	}

	return mapping.ToDomainAssetSlice(assets), nextTokenVal, nil
}
