package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationEntry is an immutable ledger record of one depreciation posting.
// Entries are append-only; a correction is a new entry, never an edit.
type DepreciationEntry struct {
	EntryID         string          `json:"entryID"` // Primary Key (UUID)
	AssetID         string          `json:"assetID"`
	Period          string          `json:"period"` // Accounting period, YYYY-MM
	Amount          decimal.Decimal `json:"amount"` // Amount actually applied
	BookValueBefore decimal.Decimal `json:"bookValueBefore"`
	BookValueAfter  decimal.Decimal `json:"bookValueAfter"`
	PostingDate     time.Time       `json:"postingDate"`
	AuditFields
}

// DisposalEntry is the immutable terminal record of an asset. At most one
// exists per asset.
type DisposalEntry struct {
	DisposalID    string          `json:"disposalID"` // Primary Key (UUID)
	AssetID       string          `json:"assetID"`
	DisposalDate  time.Time       `json:"disposalDate"`
	Proceeds      decimal.Decimal `json:"proceeds"`
	Costs         decimal.Decimal `json:"costs"`
	NetBookValue  decimal.Decimal `json:"netBookValue"` // Book value at disposal
	GainLoss      decimal.Decimal `json:"gainLoss"`     // proceeds - costs - netBookValue
	Reason        string          `json:"reason"`
	Notes         string          `json:"notes"`
	AuditFields
}

// RevaluationType distinguishes market revaluations from impairments.
type RevaluationType string

const (
	Revaluation RevaluationType = "REVALUATION" // Market adjustment, either direction
	Impairment  RevaluationType = "IMPAIRMENT"  // Downward adjustment outside the schedule
)

// IsValid reports whether t is a supported revaluation type.
func (t RevaluationType) IsValid() bool {
	return t == Revaluation || t == Impairment
}

// AssetRevaluation is an immutable value-adjustment record. Multiple
// revaluations may exist per asset.
type AssetRevaluation struct {
	RevaluationID string          `json:"revaluationID"` // Primary Key (UUID)
	AssetID       string          `json:"assetID"`
	Date          time.Time       `json:"date"`
	PreviousValue decimal.Decimal `json:"previousValue"`
	NewValue      decimal.Decimal `json:"newValue"`
	Type          RevaluationType `json:"type"`
	Reason        string          `json:"reason"`
	Notes         string          `json:"notes"`
	AuditFields
}
