package repositories

import (
	"context"

	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepositoryFacade defines the transactional ledger operations. Each
// mutating method executes as one serializable unit: lock the asset row
// (FOR UPDATE NOWAIT), apply the state transition to the locked snapshot,
// write the asset and the new ledger record together, commit. A held lock
// surfaces as apperrors.ErrConcurrencyConflict.
type LedgerRepositoryFacade interface {
	// PostDepreciation appends a depreciation entry. The draft carries the
	// requested amount and period; the applied amount, book values and the
	// resulting asset state are computed under the row lock. Returns
	// apperrors.ErrDuplicate when an entry for (asset, period) already exists.
	PostDepreciation(ctx context.Context, assetID string, draft domain.DepreciationEntry) (*domain.DepreciationEntry, *domain.FixedAsset, error)

	// RecordDisposal appends the terminal disposal entry and freezes the asset.
	RecordDisposal(ctx context.Context, assetID string, draft domain.DisposalEntry) (*domain.DisposalEntry, *domain.FixedAsset, error)

	// RecordRevaluation appends a revaluation record and adjusts current value.
	RecordRevaluation(ctx context.Context, assetID string, draft domain.AssetRevaluation) (*domain.AssetRevaluation, *domain.FixedAsset, error)

	// FindDepreciationEntriesByAssetID lists entries oldest first.
	FindDepreciationEntriesByAssetID(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error)

	// FindDisposalByAssetID retrieves the disposal entry if one exists.
	// Returns apperrors.ErrNotFound when the asset has not been disposed.
	FindDisposalByAssetID(ctx context.Context, assetID string) (*domain.DisposalEntry, error)

	// FindRevaluationsByAssetID lists revaluations oldest first.
	FindRevaluationsByAssetID(ctx context.Context, assetID string) ([]domain.AssetRevaluation, error)

	// SumDepreciationByAssetID totals all posted depreciation amounts.
	SumDepreciationByAssetID(ctx context.Context, assetID string) (decimal.Decimal, error)

	// CountRevaluationsByAssetID reports how many revaluations the asset has
	// received. Used to decide which legs of the integrity check apply.
	CountRevaluationsByAssetID(ctx context.Context, assetID string) (int64, error)
}
