package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetforge/fixed_asset_app/internal/apperrors"
	"github.com/assetforge/fixed_asset_app/internal/core/depreciation"
	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/assetforge/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/assetforge/fixed_asset_app/internal/core/ports/services"
	"github.com/assetforge/fixed_asset_app/internal/dto"
	"github.com/assetforge/fixed_asset_app/internal/middleware"
)

const periodLayout = "2006-01"

var (
	ErrCategoryNotFound  = fmt.Errorf("%w: category", apperrors.ErrNotFound)
	ErrAssetNotFound     = fmt.Errorf("%w: asset", apperrors.ErrNotFound)
	ErrCategoryInactive  = errors.New("category is inactive")
	ErrSalvageOutOfRange = errors.New("salvage value must be between zero and original cost")
	ErrUnitsMissing      = errors.New("units-of-production asset requires total estimated units")
	ErrPeriodFormat      = errors.New("accounting period must be formatted YYYY-MM")
)

// assetService owns every mutating operation on a fixed asset and its ledger.
// All ledger mutations run as one transaction under the asset row lock inside
// the ledger repository; this service validates input, resolves depreciation
// amounts through the calculator, and emits audit events after commit.
type assetService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
	assetRepo    portsrepo.AssetRepositoryFacade
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	audit        portssvc.AuditPublisher
}

// NewAssetService creates a new AssetService.
func NewAssetService(
	categoryRepo portsrepo.CategoryRepositoryFacade,
	assetRepo portsrepo.AssetRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	audit portssvc.AuditPublisher,
) portssvc.AssetSvcFacade {
	return &assetService{
		categoryRepo: categoryRepo,
		assetRepo:    assetRepo,
		ledgerRepo:   ledgerRepo,
		audit:        audit,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// publishAudit delivers an audit event without ever blocking or failing the
// completed operation. Errors are logged and dropped.
func publishAudit(ctx context.Context, audit portssvc.AuditPublisher, event portssvc.AuditEvent) {
	if audit == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := audit.Publish(detached, event); err != nil {
			middleware.GetLoggerFromCtx(detached).Warn("Failed to publish audit event",
				slog.String("event_type", event.EventType), slog.String("error", err.Error()))
		}
	}()
}

// CreateAsset creates a new fixed asset under the given category.
func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w %s", ErrCategoryNotFound, req.CategoryID)
		}
		logger.Error("Failed to fetch category for asset creation", slog.String("error", err.Error()), slog.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	if !category.IsActive {
		return nil, fmt.Errorf("%w: %s (%s)", apperrors.ErrValidation, ErrCategoryInactive, category.CategoryID)
	}

	if req.OriginalCost.IsNegative() {
		return nil, fmt.Errorf("%w: original cost must not be negative, got %s", apperrors.ErrValidation, req.OriginalCost)
	}
	if req.UsefulLifeYears <= 0 {
		return nil, fmt.Errorf("%w: useful life must be positive, got %d years", apperrors.ErrValidation, req.UsefulLifeYears)
	}
	if req.UsefulLifeYears < category.UsefulLifeMinYears || req.UsefulLifeYears > category.UsefulLifeMaxYears {
		logger.Warn("Useful life outside category default range",
			slog.Int("useful_life_years", req.UsefulLifeYears),
			slog.Int("category_min", category.UsefulLifeMinYears),
			slog.Int("category_max", category.UsefulLifeMaxYears))
	}

	method := category.DefaultMethod
	if req.Method != nil {
		if !req.Method.IsValid() {
			return nil, fmt.Errorf("%w: %s %q", apperrors.ErrValidation, ErrUnknownMethod, *req.Method)
		}
		method = *req.Method
	}
	if method == domain.UnitsOfProduction && req.TotalEstimatedUnits <= 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrUnitsMissing)
	}

	salvage := req.OriginalCost.Mul(category.DefaultSalvagePercent).Div(decimal.NewFromInt(100)).RoundBank(2)
	if req.SalvageValue != nil {
		salvage = *req.SalvageValue
	}
	if salvage.IsNegative() || salvage.GreaterThan(req.OriginalCost) {
		return nil, fmt.Errorf("%w: %s (salvage %s, cost %s)", apperrors.ErrValidation, ErrSalvageOutOfRange, salvage, req.OriginalCost)
	}

	now := time.Now().UTC()
	asset := domain.FixedAsset{
		AssetID:                 uuid.NewString(),
		CategoryID:              category.CategoryID,
		Name:                    req.Name,
		Description:             req.Description,
		AcquisitionDate:         req.AcquisitionDate,
		OriginalCost:            req.OriginalCost,
		UsefulLifeYears:         req.UsefulLifeYears,
		Method:                  method,
		SalvageValue:            salvage,
		TotalEstimatedUnits:     req.TotalEstimatedUnits,
		CurrentValue:            req.OriginalCost,
		AccumulatedDepreciation: decimal.Zero,
		Status:                  domain.StatusActive,
		Location:                req.Location,
		Custodian:               req.Custodian,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.assetRepo.CreateAsset(ctx, asset, category.TagPrefix)
	if err != nil {
		logger.Error("Failed to save asset", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}

	logger.Info("Asset created", slog.String("asset_id", created.AssetID), slog.String("asset_tag", created.AssetTag))
	publishAudit(ctx, s.audit, portssvc.AuditEvent{
		EventType:  portssvc.AuditAssetCreated,
		AssetID:    created.AssetID,
		Actor:      creatorUserID,
		OccurredAt: now,
		Detail:     map[string]any{"asset_tag": created.AssetTag, "original_cost": created.OriginalCost.String()},
	})
	return created, nil
}

// resolveDepreciationAmount returns the requested amount, or computes one from
// the asset's depreciation method. The computed figure is a proposal: the final
// applied amount is clamped to the salvage floor under the row lock.
func (s *assetService) resolveDepreciationAmount(asset *domain.FixedAsset, req dto.PostDepreciationRequest, postingDate time.Time) (decimal.Decimal, error) {
	if req.Amount != nil {
		return *req.Amount, nil
	}

	months := req.PeriodMonths
	if months <= 0 {
		months = 1
	}

	switch asset.Method {
	case domain.StraightLine:
		return depreciation.StraightLine(asset.OriginalCost, asset.SalvageValue, asset.UsefulLifeYears, months)

	case domain.ReducingBalance:
		remaining := asset.UsefulLifeYears - yearsElapsed(asset.AcquisitionDate, postingDate)
		if remaining < 1 {
			remaining = 1
		}
		return depreciation.ReducingBalance(asset.CurrentValue, asset.SalvageValue, remaining, months)

	case domain.UnitsOfProduction:
		if req.UnitsThisPeriod <= 0 {
			return decimal.Zero, fmt.Errorf("%w: unitsThisPeriod is required for units-of-production assets", apperrors.ErrValidation)
		}
		return depreciation.UnitsOfProduction(asset.OriginalCost, asset.SalvageValue, asset.TotalEstimatedUnits, req.UnitsThisPeriod)

	case domain.SumOfYearsDigits:
		yearIndex := req.YearIndex
		if yearIndex <= 0 {
			yearIndex = yearsElapsed(asset.AcquisitionDate, postingDate) + 1
		}
		annual, err := depreciation.SumOfYearsDigits(asset.OriginalCost, asset.SalvageValue, asset.UsefulLifeYears, yearIndex)
		if err != nil {
			return decimal.Zero, err
		}
		if months < 12 {
			// The calculator returns the annual figure; prorate to the period.
			annual = annual.Mul(decimal.NewFromInt(int64(months))).Div(decimal.NewFromInt(12)).RoundBank(2)
		}
		return annual, nil

	default:
		return decimal.Zero, fmt.Errorf("%w: %s %q", apperrors.ErrValidation, ErrUnknownMethod, asset.Method)
	}
}

// yearsElapsed counts whole years between two dates.
func yearsElapsed(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// PostDepreciation appends a depreciation entry to the asset's ledger.
func (s *assetService) PostDepreciation(ctx context.Context, assetID string, req dto.PostDepreciationRequest, creatorUserID string) (*domain.DepreciationEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := time.Parse(periodLayout, req.Period); err != nil {
		return nil, fmt.Errorf("%w: %s, got %q", apperrors.ErrValidation, ErrPeriodFormat, req.Period)
	}

	asset, err := s.findAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.IsDisposed() {
		return nil, fmt.Errorf("cannot post depreciation against asset %s: %w", assetID, domain.ErrAssetTerminal)
	}

	now := time.Now().UTC()
	postingDate := now
	if req.PostingDate != nil {
		postingDate = req.PostingDate.UTC()
	}

	amount, err := s.resolveDepreciationAmount(asset, req, postingDate)
	if err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("posting on asset %s would apply nothing: %w", assetID, domain.ErrNothingToApply)
	}

	draft := domain.DepreciationEntry{
		EntryID:     uuid.NewString(),
		AssetID:     assetID,
		Period:      req.Period,
		Amount:      amount,
		PostingDate: postingDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	entry, updatedAsset, err := s.ledgerRepo.PostDepreciation(ctx, assetID, draft)
	if err != nil {
		if errors.Is(err, apperrors.ErrConcurrencyConflict) {
			logger.Warn("Concurrent mutation on asset, caller should retry", slog.String("asset_id", assetID))
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Depreciation already posted for period", slog.String("asset_id", assetID), slog.String("period", req.Period))
		} else {
			logger.Error("Failed to post depreciation", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}

	logger.Info("Depreciation posted",
		slog.String("asset_id", assetID),
		slog.String("period", entry.Period),
		slog.String("amount", entry.Amount.String()),
		slog.String("status", string(updatedAsset.Status)))
	publishAudit(ctx, s.audit, portssvc.AuditEvent{
		EventType:  portssvc.AuditDepreciationPosted,
		AssetID:    assetID,
		Actor:      creatorUserID,
		OccurredAt: now,
		Detail: map[string]any{
			"period":           entry.Period,
			"amount":           entry.Amount.String(),
			"book_value_after": entry.BookValueAfter.String(),
			"status":           string(updatedAsset.Status),
		},
	})
	return entry, nil
}

// RecordDisposal records the terminal disposal of an asset.
func (s *assetService) RecordDisposal(ctx context.Context, assetID string, req dto.RecordDisposalRequest, creatorUserID string) (*domain.DisposalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Proceeds.IsNegative() || req.Costs.IsNegative() {
		return nil, fmt.Errorf("%w: proceeds and costs must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.findAsset(ctx, assetID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	draft := domain.DisposalEntry{
		DisposalID:   uuid.NewString(),
		AssetID:      assetID,
		DisposalDate: req.DisposalDate.UTC(),
		Proceeds:     req.Proceeds,
		Costs:        req.Costs,
		Reason:       req.Reason,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	entry, _, err := s.ledgerRepo.RecordDisposal(ctx, assetID, draft)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyDisposed) {
			logger.Warn("Duplicate disposal rejected", slog.String("asset_id", assetID))
		} else {
			logger.Error("Failed to record disposal", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}

	logger.Info("Asset disposed",
		slog.String("asset_id", assetID),
		slog.String("gain_loss", entry.GainLoss.String()))
	publishAudit(ctx, s.audit, portssvc.AuditEvent{
		EventType:  portssvc.AuditAssetDisposed,
		AssetID:    assetID,
		Actor:      creatorUserID,
		OccurredAt: now,
		Detail: map[string]any{
			"proceeds":  entry.Proceeds.String(),
			"gain_loss": entry.GainLoss.String(),
			"reason":    entry.Reason,
		},
	})
	return entry, nil
}

// RecordRevaluation records a market revaluation or impairment of an asset.
func (s *assetService) RecordRevaluation(ctx context.Context, assetID string, req dto.RecordRevaluationRequest, creatorUserID string) (*domain.AssetRevaluation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown revaluation type %q", apperrors.ErrValidation, req.Type)
	}
	if req.NewValue.IsNegative() {
		return nil, fmt.Errorf("%w: revalued amount must not be negative, got %s", apperrors.ErrValidation, req.NewValue)
	}

	if _, err := s.findAsset(ctx, assetID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	draft := domain.AssetRevaluation{
		RevaluationID: uuid.NewString(),
		AssetID:       assetID,
		Date:          req.Date.UTC(),
		NewValue:      req.NewValue,
		Type:          req.Type,
		Reason:        req.Reason,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	rev, updatedAsset, err := s.ledgerRepo.RecordRevaluation(ctx, assetID, draft)
	if err != nil {
		if errors.Is(err, domain.ErrAssetTerminal) {
			logger.Warn("Revaluation rejected on disposed asset", slog.String("asset_id", assetID))
		} else {
			logger.Error("Failed to record revaluation", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}

	logger.Info("Asset revalued",
		slog.String("asset_id", assetID),
		slog.String("type", string(rev.Type)),
		slog.String("new_value", rev.NewValue.String()),
		slog.String("status", string(updatedAsset.Status)))
	publishAudit(ctx, s.audit, portssvc.AuditEvent{
		EventType:  portssvc.AuditAssetRevalued,
		AssetID:    assetID,
		Actor:      creatorUserID,
		OccurredAt: now,
		Detail: map[string]any{
			"type":           string(rev.Type),
			"previous_value": rev.PreviousValue.String(),
			"new_value":      rev.NewValue.String(),
			"status":         string(updatedAsset.Status),
		},
	})
	return rev, nil
}

// GetAssetByID retrieves an asset and verifies ledger integrity on the way out.
// For an asset that has never been revalued, the sum of its depreciation
// entries, its accumulated depreciation and originalCost-currentValue must all
// agree; any disagreement is reported as a fatal integrity violation. Revalued
// assets skip the current-value leg, which diverges by design.
func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.findAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	ledgerSum, err := s.ledgerRepo.SumDepreciationByAssetID(ctx, assetID)
	if err != nil {
		logger.Error("Failed to sum depreciation entries", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to verify ledger for asset %s: %w", assetID, err)
	}

	if !ledgerSum.Equal(asset.AccumulatedDepreciation) {
		logger.Error("Ledger sum disagrees with accumulated depreciation",
			slog.String("asset_id", assetID),
			slog.String("ledger_sum", ledgerSum.String()),
			slog.String("accumulated", asset.AccumulatedDepreciation.String()))
		return nil, fmt.Errorf("%w: asset %s ledger sum %s != accumulated %s",
			apperrors.ErrIntegrity, assetID, ledgerSum, asset.AccumulatedDepreciation)
	}

	revaluations, err := s.ledgerRepo.CountRevaluationsByAssetID(ctx, assetID)
	if err != nil {
		logger.Error("Failed to count revaluations", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to verify ledger for asset %s: %w", assetID, err)
	}
	if revaluations == 0 {
		derived := asset.OriginalCost.Sub(asset.AccumulatedDepreciation)
		if !derived.Equal(asset.CurrentValue) {
			logger.Error("Book value disagrees with depreciation ledger",
				slog.String("asset_id", assetID),
				slog.String("derived", derived.String()),
				slog.String("current_value", asset.CurrentValue.String()))
			return nil, fmt.Errorf("%w: asset %s book value %s != cost-accumulated %s",
				apperrors.ErrIntegrity, assetID, asset.CurrentValue, derived)
		}
	}

	return asset, nil
}

// ListAssets retrieves a paginated list of assets, optionally by category.
func (s *assetService) ListAssets(ctx context.Context, params dto.ListAssetsParams) (*dto.ListAssetsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	assets, nextToken, err := s.assetRepo.ListAssets(ctx, params.CategoryID, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list assets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve assets: %w", err)
	}

	return &dto.ListAssetsResponse{
		Assets:    dto.ToAssetResponses(assets),
		NextToken: nextToken,
	}, nil
}

// ListDepreciationEntries lists an asset's depreciation history, oldest first.
func (s *assetService) ListDepreciationEntries(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error) {
	if _, err := s.findAsset(ctx, assetID); err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.FindDepreciationEntriesByAssetID(ctx, assetID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list depreciation entries", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to retrieve depreciation entries: %w", err)
	}
	return entries, nil
}

// GetDisposal retrieves the asset's disposal entry, if any.
func (s *assetService) GetDisposal(ctx context.Context, assetID string) (*domain.DisposalEntry, error) {
	if _, err := s.findAsset(ctx, assetID); err != nil {
		return nil, err
	}
	entry, err := s.ledgerRepo.FindDisposalByAssetID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch disposal", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}
	return entry, nil
}

// ListRevaluations lists an asset's revaluation history, oldest first.
func (s *assetService) ListRevaluations(ctx context.Context, assetID string) ([]domain.AssetRevaluation, error) {
	if _, err := s.findAsset(ctx, assetID); err != nil {
		return nil, err
	}
	revs, err := s.ledgerRepo.FindRevaluationsByAssetID(ctx, assetID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list revaluations", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to retrieve revaluations: %w", err)
	}
	return revs, nil
}

func (s *assetService) findAsset(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w %s", ErrAssetNotFound, assetID)
		}
		middleware.GetLoggerFromCtx(ctx).Error("Failed to find asset", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	return asset, nil
}
