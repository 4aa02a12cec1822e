package mapping

import (
	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	"github.com/assetforge/fixed_asset_app/internal/models"
)

// ToModelDepreciationEntry converts a domain DepreciationEntry to a model DepreciationEntry
func ToModelDepreciationEntry(d domain.DepreciationEntry) models.DepreciationEntry {
	return models.DepreciationEntry{
		EntryID:         d.EntryID,
		AssetID:         d.AssetID,
		Period:          d.Period,
		Amount:          d.Amount,
		BookValueBefore: d.BookValueBefore,
		BookValueAfter:  d.BookValueAfter,
		PostingDate:     d.PostingDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepreciationEntry converts a model DepreciationEntry to a domain DepreciationEntry
func ToDomainDepreciationEntry(m models.DepreciationEntry) domain.DepreciationEntry {
	return domain.DepreciationEntry{
		EntryID:         m.EntryID,
		AssetID:         m.AssetID,
		Period:          m.Period,
		Amount:          m.Amount,
		BookValueBefore: m.BookValueBefore,
		BookValueAfter:  m.BookValueAfter,
		PostingDate:     m.PostingDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepreciationEntrySlice converts a slice of model entries to domain entries
func ToDomainDepreciationEntrySlice(ms []models.DepreciationEntry) []domain.DepreciationEntry {
	ds := make([]domain.DepreciationEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepreciationEntry(m)
	}
	return ds
}

// ToModelDisposalEntry converts a domain DisposalEntry to a model DisposalEntry
func ToModelDisposalEntry(d domain.DisposalEntry) models.DisposalEntry {
	return models.DisposalEntry{
		DisposalID:   d.DisposalID,
		AssetID:      d.AssetID,
		DisposalDate: d.DisposalDate,
		Proceeds:     d.Proceeds,
		Costs:        d.Costs,
		NetBookValue: d.NetBookValue,
		GainLoss:     d.GainLoss,
		Reason:       d.Reason,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDisposalEntry converts a model DisposalEntry to a domain DisposalEntry
func ToDomainDisposalEntry(m models.DisposalEntry) domain.DisposalEntry {
	return domain.DisposalEntry{
		DisposalID:   m.DisposalID,
		AssetID:      m.AssetID,
		DisposalDate: m.DisposalDate,
		Proceeds:     m.Proceeds,
		Costs:        m.Costs,
		NetBookValue: m.NetBookValue,
		GainLoss:     m.GainLoss,
		Reason:       m.Reason,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRevaluation converts a domain AssetRevaluation to a model AssetRevaluation
func ToModelRevaluation(d domain.AssetRevaluation) models.AssetRevaluation {
	return models.AssetRevaluation{
		RevaluationID: d.RevaluationID,
		AssetID:       d.AssetID,
		Date:          d.Date,
		PreviousValue: d.PreviousValue,
		NewValue:      d.NewValue,
		Type:          string(d.Type),
		Reason:        d.Reason,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRevaluation converts a model AssetRevaluation to a domain AssetRevaluation
func ToDomainRevaluation(m models.AssetRevaluation) domain.AssetRevaluation {
	return domain.AssetRevaluation{
		RevaluationID: m.RevaluationID,
		AssetID:       m.AssetID,
		Date:          m.Date,
		PreviousValue: m.PreviousValue,
		NewValue:      m.NewValue,
		Type:          domain.RevaluationType(m.Type),
		Reason:        m.Reason,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRevaluationSlice converts a slice of model revaluations to domain revaluations
func ToDomainRevaluationSlice(ms []models.AssetRevaluation) []domain.AssetRevaluation {
	ds := make([]domain.AssetRevaluation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRevaluation(m)
	}
	return ds
}
