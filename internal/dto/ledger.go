package dto

import (
	"time"

	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostDepreciationRequest defines the payload for posting depreciation against
// an asset. Either Amount is supplied directly, or it is computed from the
// asset's method (PeriodMonths/UnitsThisPeriod/YearIndex feed the calculator,
// depending on the method).
type PostDepreciationRequest struct {
	Period          string           `json:"period" binding:"required,period"`
	PostingDate     *time.Time       `json:"postingDate"`
	Amount          *decimal.Decimal `json:"amount"`
	PeriodMonths    int              `json:"periodMonths" binding:"omitempty,gt=0"`
	UnitsThisPeriod int64            `json:"unitsThisPeriod" binding:"omitempty,gt=0"`
	YearIndex       int              `json:"yearIndex" binding:"omitempty,gt=0"`
}

// DepreciationEntryResponse defines the data returned for a ledger entry.
type DepreciationEntryResponse struct {
	EntryID         string          `json:"entryID"`
	AssetID         string          `json:"assetID"`
	Period          string          `json:"period"`
	Amount          decimal.Decimal `json:"amount"`
	BookValueBefore decimal.Decimal `json:"bookValueBefore"`
	BookValueAfter  decimal.Decimal `json:"bookValueAfter"`
	PostingDate     time.Time       `json:"postingDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ListDepreciationEntriesResponse lists an asset's depreciation history.
type ListDepreciationEntriesResponse struct {
	Entries []DepreciationEntryResponse `json:"entries"`
}

// RecordDisposalRequest defines the payload for disposing an asset.
type RecordDisposalRequest struct {
	DisposalDate time.Time       `json:"disposalDate" binding:"required"`
	Proceeds     decimal.Decimal `json:"proceeds"`
	Costs        decimal.Decimal `json:"costs"`
	Reason       string          `json:"reason" binding:"required,max=200"`
	Notes        string          `json:"notes" binding:"max=1000"`
}

// DisposalResponse defines the data returned for a disposal entry.
type DisposalResponse struct {
	DisposalID   string          `json:"disposalID"`
	AssetID      string          `json:"assetID"`
	DisposalDate time.Time       `json:"disposalDate"`
	Proceeds     decimal.Decimal `json:"proceeds"`
	Costs        decimal.Decimal `json:"costs"`
	NetBookValue decimal.Decimal `json:"netBookValue"`
	GainLoss     decimal.Decimal `json:"gainLoss"`
	Reason       string          `json:"reason"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// RecordRevaluationRequest defines the payload for revaluing an asset.
type RecordRevaluationRequest struct {
	Date     time.Time              `json:"date" binding:"required"`
	NewValue decimal.Decimal        `json:"newValue" binding:"required"`
	Type     domain.RevaluationType `json:"type" binding:"required"`
	Reason   string                 `json:"reason" binding:"required,max=200"`
	Notes    string                 `json:"notes" binding:"max=1000"`
}

// RevaluationResponse defines the data returned for a revaluation record.
type RevaluationResponse struct {
	RevaluationID string          `json:"revaluationID"`
	AssetID       string          `json:"assetID"`
	Date          time.Time       `json:"date"`
	PreviousValue decimal.Decimal `json:"previousValue"`
	NewValue      decimal.Decimal `json:"newValue"`
	Type          string          `json:"type"`
	Reason        string          `json:"reason"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListRevaluationsResponse lists an asset's revaluation history.
type ListRevaluationsResponse struct {
	Revaluations []RevaluationResponse `json:"revaluations"`
}

// ToDepreciationEntryResponse converts a domain entry to its response DTO.
func ToDepreciationEntryResponse(e *domain.DepreciationEntry) DepreciationEntryResponse {
	return DepreciationEntryResponse{
		EntryID:         e.EntryID,
		AssetID:         e.AssetID,
		Period:          e.Period,
		Amount:          e.Amount,
		BookValueBefore: e.BookValueBefore,
		BookValueAfter:  e.BookValueAfter,
		PostingDate:     e.PostingDate,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToDepreciationEntryResponses converts a slice of domain entries.
func ToDepreciationEntryResponses(es []domain.DepreciationEntry) []DepreciationEntryResponse {
	responses := make([]DepreciationEntryResponse, len(es))
	for i := range es {
		responses[i] = ToDepreciationEntryResponse(&es[i])
	}
	return responses
}

// ToDisposalResponse converts a domain disposal entry to its response DTO.
func ToDisposalResponse(e *domain.DisposalEntry) DisposalResponse {
	return DisposalResponse{
		DisposalID:   e.DisposalID,
		AssetID:      e.AssetID,
		DisposalDate: e.DisposalDate,
		Proceeds:     e.Proceeds,
		Costs:        e.Costs,
		NetBookValue: e.NetBookValue,
		GainLoss:     e.GainLoss,
		Reason:       e.Reason,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
}

// ToRevaluationResponse converts a domain revaluation to its response DTO.
func ToRevaluationResponse(r *domain.AssetRevaluation) RevaluationResponse {
	return RevaluationResponse{
		RevaluationID: r.RevaluationID,
		AssetID:       r.AssetID,
		Date:          r.Date,
		PreviousValue: r.PreviousValue,
		NewValue:      r.NewValue,
		Type:          string(r.Type),
		Reason:        r.Reason,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
	}
}

// ToRevaluationResponses converts a slice of domain revaluations.
func ToRevaluationResponses(rs []domain.AssetRevaluation) []RevaluationResponse {
	responses := make([]RevaluationResponse, len(rs))
	for i := range rs {
		responses[i] = ToRevaluationResponse(&rs[i])
	}
	return responses
}
