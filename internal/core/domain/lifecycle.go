package domain

import (
	"fmt"

	"github.com/assetforge/fixed_asset_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	// ErrAssetTerminal is returned when a mutating operation targets a disposed asset.
	ErrAssetTerminal = fmt.Errorf("%w: asset is disposed", apperrors.ErrConflict)
	// ErrAlreadyDisposed is returned on a duplicate disposal.
	ErrAlreadyDisposed = fmt.Errorf("%w: asset already disposed", apperrors.ErrConflict)
	// ErrNothingToApply is returned when a depreciation posting would apply a
	// zero amount because the asset already sits at its salvage floor.
	ErrNothingToApply = fmt.Errorf("%w: book value already at salvage floor", apperrors.ErrValidation)
)

// FormatAssetTag builds the human-readable asset tag from the category prefix,
// the acquisition year and the per-(category,year) sequence number.
func FormatAssetTag(prefix string, year int, sequence int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, sequence)
}

// ApplyDepreciation applies the draft posting to the asset and completes the
// entry's derived fields. The applied amount is clamped so the book value never
// drops below salvage; the entry's Amount is rewritten to what was actually
// applied. The asset transitions to FULLY_DEPRECIATED when the floor is reached.
//
// Callers must hold the asset's row lock: the clamp is only correct against the
// value read under that lock.
func (a *FixedAsset) ApplyDepreciation(entry *DepreciationEntry) error {
	if a.IsDisposed() {
		return ErrAssetTerminal
	}
	if entry.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: depreciation amount must be positive, got %s", apperrors.ErrValidation, entry.Amount)
	}

	before := a.CurrentValue
	after := before.Sub(entry.Amount)
	if after.LessThan(a.SalvageValue) {
		after = a.SalvageValue
	}
	applied := before.Sub(after)
	if applied.LessThanOrEqual(decimal.Zero) {
		return ErrNothingToApply
	}

	entry.Amount = applied
	entry.BookValueBefore = before
	entry.BookValueAfter = after

	a.CurrentValue = after
	a.AccumulatedDepreciation = a.AccumulatedDepreciation.Add(applied)
	postingDate := entry.PostingDate
	a.LastDepreciationDate = &postingDate
	a.LastUpdatedAt = entry.LastUpdatedAt
	a.LastUpdatedBy = entry.LastUpdatedBy

	if a.CurrentValue.LessThanOrEqual(a.SalvageValue) {
		a.Status = StatusFullyDepreciated
	}
	return nil
}

// ApplyDisposal marks the asset disposed and completes the entry's net book
// value and gain/loss. Disposal is terminal; a second call fails.
func (a *FixedAsset) ApplyDisposal(entry *DisposalEntry) error {
	if a.IsDisposed() {
		return ErrAlreadyDisposed
	}
	if entry.Proceeds.IsNegative() || entry.Costs.IsNegative() {
		return fmt.Errorf("%w: proceeds and costs must not be negative", apperrors.ErrValidation)
	}

	entry.NetBookValue = a.CurrentValue
	entry.GainLoss = entry.Proceeds.Sub(entry.Costs).Sub(entry.NetBookValue)

	a.Status = StatusDisposed
	disposalDate := entry.DisposalDate
	proceeds := entry.Proceeds
	a.DisposalDate = &disposalDate
	a.DisposalProceeds = &proceeds
	a.DisposalReason = entry.Reason
	a.LastUpdatedAt = entry.LastUpdatedAt
	a.LastUpdatedBy = entry.LastUpdatedBy
	return nil
}

// ApplyRevaluation adjusts the asset's current value and completes the record's
// previous value. Only an IMPAIRMENT that lowers the value forces the IMPAIRED
// status; every other accepted combination leaves the status untouched.
// AccumulatedDepreciation is deliberately not adjusted: book value and the
// depreciation ledger diverge after a market adjustment.
func (a *FixedAsset) ApplyRevaluation(rev *AssetRevaluation) error {
	if a.IsDisposed() {
		return ErrAssetTerminal
	}
	if !rev.Type.IsValid() {
		return fmt.Errorf("%w: unknown revaluation type %q", apperrors.ErrValidation, rev.Type)
	}
	if rev.NewValue.IsNegative() {
		return fmt.Errorf("%w: revalued amount must not be negative, got %s", apperrors.ErrValidation, rev.NewValue)
	}

	rev.PreviousValue = a.CurrentValue
	a.CurrentValue = rev.NewValue

	if rev.Type == Impairment && rev.NewValue.LessThan(rev.PreviousValue) {
		a.Status = StatusImpaired
	}
	a.LastUpdatedAt = rev.LastUpdatedAt
	a.LastUpdatedBy = rev.LastUpdatedBy
	return nil
}
