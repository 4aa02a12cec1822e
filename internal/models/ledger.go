package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationEntry is one append-only row in the depreciation ledger.
// (asset_id, period) is unique.
type DepreciationEntry struct {
	EntryID         string          `db:"entry_id"`
	AssetID         string          `db:"asset_id"`
	Period          string          `db:"period"` // YYYY-MM
	Amount          decimal.Decimal `db:"amount"`
	BookValueBefore decimal.Decimal `db:"book_value_before"`
	BookValueAfter  decimal.Decimal `db:"book_value_after"`
	PostingDate     time.Time       `db:"posting_date"`
	AuditFields
}

// DisposalEntry records the terminal disposal of an asset. At most one per asset.
type DisposalEntry struct {
	DisposalID   string          `db:"disposal_id"`
	AssetID      string          `db:"asset_id"` // Unique
	DisposalDate time.Time       `db:"disposal_date"`
	Proceeds     decimal.Decimal `db:"proceeds"`
	Costs        decimal.Decimal `db:"costs"`
	NetBookValue decimal.Decimal `db:"net_book_value"`
	GainLoss     decimal.Decimal `db:"gain_loss"`
	Reason       string          `db:"reason"`
	Notes        string          `db:"notes"`
	AuditFields
}

// AssetRevaluation records one market revaluation or impairment event.
type AssetRevaluation struct {
	RevaluationID string          `db:"revaluation_id"`
	AssetID       string          `db:"asset_id"`
	Date          time.Time       `db:"revaluation_date"`
	PreviousValue decimal.Decimal `db:"previous_value"`
	NewValue      decimal.Decimal `db:"new_value"`
	Type          string          `db:"revaluation_type"`
	Reason        string          `db:"reason"`
	Notes         string          `db:"notes"`
	AuditFields
}
