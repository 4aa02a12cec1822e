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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the asset ledger tables.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// lockAssetForUpdate reads the asset row under FOR UPDATE NOWAIT. A lock
// already held by a concurrent writer surfaces as ErrConcurrencyConflict so
// the caller can retry instead of queueing behind the other transaction.
func (r *PgxLedgerRepository) lockAssetForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1 FOR UPDATE NOWAIT;`
	m, err := scanAsset(tx.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("asset " + assetID + " not found")
		}
		if isPgError(err, pgLockNotAvail) {
			return nil, fmt.Errorf("%w: asset %s is being modified", apperrors.ErrConcurrencyConflict, assetID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock asset "+assetID, err)
	}
	d := mapping.ToDomainAsset(*m)
	return &d, nil
}

// updateAssetInTx writes back the mutable asset columns after a state transition.
func (r *PgxLedgerRepository) updateAssetInTx(ctx context.Context, tx pgx.Tx, asset *domain.FixedAsset) error {
	m := mapping.ToModelAsset(*asset)
	query := `
		UPDATE fixed_assets
		SET current_value = $2, accumulated_depreciation = $3, status = $4,
		    last_depreciation_date = $5, disposal_date = $6, disposal_proceeds = $7, disposal_reason = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE asset_id = $1;
	`
	_, err := tx.Exec(ctx, query,
		m.AssetID,
		m.CurrentValue,
		m.AccumulatedDepreciation,
		m.Status,
		m.LastDepreciationDate,
		m.DisposalDate,
		m.DisposalProceeds,
		m.DisposalReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update asset "+m.AssetID, err)
	}
	return nil
}

// PostDepreciation appends a depreciation entry and applies it to the asset in
// one transaction. The applied amount and book values are computed against the
// locked row, so concurrent postings can never overshoot the salvage floor.
func (r *PgxLedgerRepository) PostDepreciation(ctx context.Context, assetID string, draft domain.DepreciationEntry) (*domain.DepreciationEntry, *domain.FixedAsset, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	asset, err := r.lockAssetForUpdate(ctx, tx, assetID)
	if err != nil {
		return nil, nil, err
	}

	if err := asset.ApplyDepreciation(&draft); err != nil {
		return nil, nil, err
	}

	m := mapping.ToModelDepreciationEntry(draft)
	insertQuery := `
		INSERT INTO depreciation_entries (
			entry_id, asset_id, period, amount, book_value_before, book_value_after, posting_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.EntryID,
		m.AssetID,
		m.Period,
		m.Amount,
		m.BookValueBefore,
		m.BookValueAfter,
		m.PostingDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, nil, fmt.Errorf("%w: depreciation already posted for asset %s period %s", apperrors.ErrDuplicate, assetID, m.Period)
		}
		return nil, nil, apperrors.NewAppError(500, "failed to insert depreciation entry "+m.EntryID, err)
	}

	if err := r.updateAssetInTx(ctx, tx, asset); err != nil {
		return nil, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	return &draft, asset, nil
}

// RecordDisposal appends the terminal disposal entry and freezes the asset.
func (r *PgxLedgerRepository) RecordDisposal(ctx context.Context, assetID string, draft domain.DisposalEntry) (*domain.DisposalEntry, *domain.FixedAsset, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	asset, err := r.lockAssetForUpdate(ctx, tx, assetID)
	if err != nil {
		return nil, nil, err
	}

	if err := asset.ApplyDisposal(&draft); err != nil {
		return nil, nil, err
	}

	m := mapping.ToModelDisposalEntry(draft)
	insertQuery := `
		INSERT INTO disposal_entries (
			disposal_id, asset_id, disposal_date, proceeds, costs, net_book_value, gain_loss, reason, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.DisposalID,
		m.AssetID,
		m.DisposalDate,
		m.Proceeds,
		m.Costs,
		m.NetBookValue,
		m.GainLoss,
		m.Reason,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, nil, fmt.Errorf("disposal insert for asset %s: %w", assetID, domain.ErrAlreadyDisposed)
		}
		return nil, nil, apperrors.NewAppError(500, "failed to insert disposal entry "+m.DisposalID, err)
	}

	if err := r.updateAssetInTx(ctx, tx, asset); err != nil {
		return nil, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	return &draft, asset, nil
}

// RecordRevaluation appends a revaluation record and adjusts the current value.
func (r *PgxLedgerRepository) RecordRevaluation(ctx context.Context, assetID string, draft domain.AssetRevaluation) (*domain.AssetRevaluation, *domain.FixedAsset, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	asset, err := r.lockAssetForUpdate(ctx, tx, assetID)
	if err != nil {
		return nil, nil, err
	}

	if err := asset.ApplyRevaluation(&draft); err != nil {
		return nil, nil, err
	}

	m := mapping.ToModelRevaluation(draft)
	insertQuery := `
		INSERT INTO asset_revaluations (
			revaluation_id, asset_id, revaluation_date, previous_value, new_value, revaluation_type, reason, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.RevaluationID,
		m.AssetID,
		m.Date,
		m.PreviousValue,
		m.NewValue,
		m.Type,
		m.Reason,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to insert revaluation "+m.RevaluationID, err)
	}

	if err := r.updateAssetInTx(ctx, tx, asset); err != nil {
		return nil, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	return &draft, asset, nil
}

// FindDepreciationEntriesByAssetID lists an asset's entries oldest first.
func (r *PgxLedgerRepository) FindDepreciationEntriesByAssetID(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error) {
	query := `
		SELECT entry_id, asset_id, period, amount, book_value_before, book_value_after, posting_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM depreciation_entries
		WHERE asset_id = $1
		ORDER BY period ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query depreciation entries for asset "+assetID, err)
	}
	defer rows.Close()

	entries := make([]models.DepreciationEntry, 0)
	for rows.Next() {
		var m models.DepreciationEntry
		err := rows.Scan(
			&m.EntryID,
			&m.AssetID,
			&m.Period,
			&m.Amount,
			&m.BookValueBefore,
			&m.BookValueAfter,
			&m.PostingDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan depreciation entry row for asset "+assetID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating depreciation entry rows for asset "+assetID, err)
	}

	return mapping.ToDomainDepreciationEntrySlice(entries), nil
}

// FindDisposalByAssetID retrieves the asset's disposal entry, if any.
func (r *PgxLedgerRepository) FindDisposalByAssetID(ctx context.Context, assetID string) (*domain.DisposalEntry, error) {
	query := `
		SELECT disposal_id, asset_id, disposal_date, proceeds, costs, net_book_value, gain_loss, reason, notes,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM disposal_entries
		WHERE asset_id = $1;
	`
	var m models.DisposalEntry
	err := r.Pool.QueryRow(ctx, query, assetID).Scan(
		&m.DisposalID,
		&m.AssetID,
		&m.DisposalDate,
		&m.Proceeds,
		&m.Costs,
		&m.NetBookValue,
		&m.GainLoss,
		&m.Reason,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no disposal recorded for asset " + assetID)
		}
		return nil, apperrors.NewAppError(500, "failed to find disposal for asset "+assetID, err)
	}

	d := mapping.ToDomainDisposalEntry(m)
	return &d, nil
}

// FindRevaluationsByAssetID lists an asset's revaluations oldest first.
func (r *PgxLedgerRepository) FindRevaluationsByAssetID(ctx context.Context, assetID string) ([]domain.AssetRevaluation, error) {
	query := `
		SELECT revaluation_id, asset_id, revaluation_date, previous_value, new_value, revaluation_type, reason, notes,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM asset_revaluations
		WHERE asset_id = $1
		ORDER BY revaluation_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query revaluations for asset "+assetID, err)
	}
	defer rows.Close()

	revaluations := make([]models.AssetRevaluation, 0)
	for rows.Next() {
		var m models.AssetRevaluation
		err := rows.Scan(
			&m.RevaluationID,
			&m.AssetID,
			&m.Date,
			&m.PreviousValue,
			&m.NewValue,
			&m.Type,
			&m.Reason,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan revaluation row for asset "+assetID, err)
		}
		revaluations = append(revaluations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating revaluation rows for asset "+assetID, err)
	}

	return mapping.ToDomainRevaluationSlice(revaluations), nil
}

// SumDepreciationByAssetID totals all posted depreciation amounts for the asset.
func (r *PgxLedgerRepository) SumDepreciationByAssetID(ctx context.Context, assetID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM depreciation_entries WHERE asset_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, assetID).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum depreciation for asset "+assetID, err)
	}
	return sum, nil
}

// CountRevaluationsByAssetID reports how many revaluations the asset has received.
func (r *PgxLedgerRepository) CountRevaluationsByAssetID(ctx context.Context, assetID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM asset_revaluations WHERE asset_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, assetID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count revaluations for asset "+assetID, err)
	}
	return count, nil
}
