package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/assetforge/fixed_asset_app/internal/apperrors"
	"github.com/assetforge/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/assetforge/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/assetforge/fixed_asset_app/internal/core/ports/services"
	"github.com/assetforge/fixed_asset_app/internal/core/services"
	"github.com/assetforge/fixed_asset_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.AssetCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.AssetCategory, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.AssetCategory), returnedNextToken, args.Error(2)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.AssetCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountAssetsByCategoryID(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

var _ portsrepo.AssetRepositoryFacade = (*MockAssetRepository)(nil)

func (m *MockAssetRepository) CreateAsset(ctx context.Context, asset domain.FixedAsset, tagPrefix string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, asset, tagPrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, categoryID string, limit int, nextToken *string) ([]domain.FixedAsset, *string, error) {
	args := m.Called(ctx, categoryID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.FixedAsset), returnedNextToken, args.Error(2)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) PostDepreciation(ctx context.Context, assetID string, draft domain.DepreciationEntry) (*domain.DepreciationEntry, *domain.FixedAsset, error) {
	args := m.Called(ctx, assetID, draft)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.DepreciationEntry), args.Get(1).(*domain.FixedAsset), args.Error(2)
}

func (m *MockLedgerRepository) RecordDisposal(ctx context.Context, assetID string, draft domain.DisposalEntry) (*domain.DisposalEntry, *domain.FixedAsset, error) {
	args := m.Called(ctx, assetID, draft)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.DisposalEntry), args.Get(1).(*domain.FixedAsset), args.Error(2)
}

func (m *MockLedgerRepository) RecordRevaluation(ctx context.Context, assetID string, draft domain.AssetRevaluation) (*domain.AssetRevaluation, *domain.FixedAsset, error) {
	args := m.Called(ctx, assetID, draft)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.AssetRevaluation), args.Get(1).(*domain.FixedAsset), args.Error(2)
}

func (m *MockLedgerRepository) FindDepreciationEntriesByAssetID(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindDisposalByAssetID(ctx context.Context, assetID string) (*domain.DisposalEntry, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisposalEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindRevaluationsByAssetID(ctx context.Context, assetID string) ([]domain.AssetRevaluation, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetRevaluation), args.Error(1)
}

func (m *MockLedgerRepository) SumDepreciationByAssetID(ctx context.Context, assetID string) (decimal.Decimal, error) {
	args := m.Called(ctx, assetID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) CountRevaluationsByAssetID(ctx context.Context, assetID string) (int64, error) {
	args := m.Called(ctx, assetID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite Setup ---

type AssetServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockAssetRepo    *MockAssetRepository
	mockLedgerRepo   *MockLedgerRepository
	service          portssvc.AssetSvcFacade

	userID   string
	category domain.AssetCategory
	asset    domain.FixedAsset
}

func (s *AssetServiceTestSuite) SetupTest() {
	s.mockCategoryRepo = new(MockCategoryRepository)
	s.mockAssetRepo = new(MockAssetRepository)
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.service = services.NewAssetService(s.mockCategoryRepo, s.mockAssetRepo, s.mockLedgerRepo, nil)

	s.userID = uuid.NewString()
	s.category = domain.AssetCategory{
		CategoryID:            uuid.NewString(),
		Name:                  "IT Equipment",
		TagPrefix:             "IT",
		UsefulLifeMinYears:    3,
		UsefulLifeMaxYears:    7,
		DefaultMethod:         domain.StraightLine,
		DefaultSalvagePercent: decimal.NewFromInt(10),
		IsActive:              true,
	}
	s.asset = domain.FixedAsset{
		AssetID:                 uuid.NewString(),
		AssetTag:                "IT-2024-0001",
		CategoryID:              s.category.CategoryID,
		Name:                    "Laptop",
		AcquisitionDate:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		OriginalCost:            decimal.RequireFromString("3000.00"),
		UsefulLifeYears:         4,
		Method:                  domain.StraightLine,
		SalvageValue:            decimal.RequireFromString("750.00"),
		CurrentValue:            decimal.RequireFromString("3000.00"),
		AccumulatedDepreciation: decimal.Zero,
		Status:                  domain.StatusActive,
	}
}

// --- CreateAsset ---

func (s *AssetServiceTestSuite) TestCreateAsset_Success_DefaultsFromCategory() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		CategoryID:      s.category.CategoryID,
		Name:            "Laptop",
		AcquisitionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		OriginalCost:    decimal.RequireFromString("3000.00"),
		UsefulLifeYears: 4,
	}

	s.mockCategoryRepo.On("FindCategoryByID", ctx, s.category.CategoryID).Return(&s.category, nil).Once()
	s.mockAssetRepo.On("CreateAsset", ctx, mock.MatchedBy(func(a domain.FixedAsset) bool {
		return a.Method == domain.StraightLine &&
			a.SalvageValue.Equal(decimal.RequireFromString("300.00")) &&
			a.CurrentValue.Equal(req.OriginalCost) &&
			a.AccumulatedDepreciation.IsZero() &&
			a.Status == domain.StatusActive
	}), "IT").Return(&s.asset, nil).Once()

	created, err := s.service.CreateAsset(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Equal("IT-2024-0001", created.AssetTag)
	s.mockCategoryRepo.AssertExpectations(s.T())
	s.mockAssetRepo.AssertExpectations(s.T())
}

func (s *AssetServiceTestSuite) TestCreateAsset_CategoryNotFound() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{CategoryID: uuid.NewString(), Name: "Laptop", OriginalCost: decimal.NewFromInt(100), UsefulLifeYears: 3}

	s.mockCategoryRepo.On("FindCategoryByID", ctx, req.CategoryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CreateAsset(ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(err, services.ErrCategoryNotFound)
	s.mockAssetRepo.AssertNotCalled(s.T(), "CreateAsset", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AssetServiceTestSuite) TestCreateAsset_InactiveCategory() {
	ctx := context.Background()
	inactive := s.category
	inactive.IsActive = false
	req := dto.CreateAssetRequest{CategoryID: inactive.CategoryID, Name: "Laptop", OriginalCost: decimal.NewFromInt(100), UsefulLifeYears: 3}

	s.mockCategoryRepo.On("FindCategoryByID", ctx, inactive.CategoryID).Return(&inactive, nil).Once()

	_, err := s.service.CreateAsset(ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AssetServiceTestSuite) TestCreateAsset_SalvageAboveCost() {
	ctx := context.Background()
	salvage := decimal.RequireFromString("5000.00")
	req := dto.CreateAssetRequest{
		CategoryID:      s.category.CategoryID,
		Name:            "Laptop",
		OriginalCost:    decimal.RequireFromString("3000.00"),
		UsefulLifeYears: 4,
		SalvageValue:    &salvage,
	}

	s.mockCategoryRepo.On("FindCategoryByID", ctx, s.category.CategoryID).Return(&s.category, nil).Once()

	_, err := s.service.CreateAsset(ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorContains(err, "salvage")
}

func (s *AssetServiceTestSuite) TestCreateAsset_UnitsOfProductionRequiresUnits() {
	ctx := context.Background()
	method := domain.UnitsOfProduction
	req := dto.CreateAssetRequest{
		CategoryID:      s.category.CategoryID,
		Name:            "Stamping press",
		OriginalCost:    decimal.RequireFromString("5000.00"),
		UsefulLifeYears: 5,
		Method:          &method,
	}

	s.mockCategoryRepo.On("FindCategoryByID", ctx, s.category.CategoryID).Return(&s.category, nil).Once()

	_, err := s.service.CreateAsset(ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorContains(err, "units")
}

// --- PostDepreciation ---

func (s *AssetServiceTestSuite) TestPostDepreciation_StraightLineMonthlyDefault() {
	ctx := context.Background()
	req := dto.PostDepreciationRequest{Period: "2024-02"}

	expectedAmount := decimal.RequireFromString("46.88")
	returnedEntry := domain.DepreciationEntry{AssetID: s.asset.AssetID, Period: "2024-02", Amount: expectedAmount}
	updated := s.asset
	updated.AccumulatedDepreciation = expectedAmount
	updated.CurrentValue = s.asset.CurrentValue.Sub(expectedAmount)

	s.mockAssetRepo.On("FindAssetByID", ctx, s.asset.AssetID).Return(&s.asset, nil).Once()
	s.mockLedgerRepo.On("PostDepreciation", ctx, s.asset.AssetID, mock.MatchedBy(func(d domain.DepreciationEntry) bool {
		return d.Period == "2024-02" && d.Amount.Equal(expectedAmount) && d.EntryID != ""
	})).Return(&returnedEntry, &updated, nil).Once()

	entry, err := s.service.PostDepreciation(ctx, s.asset.AssetID, req, s.userID)

	s.Require().NoError(err)
	s.True(entry.Amount.Equal(expectedAmount))
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *AssetServiceTestSuite) TestPostDepreciation_ExplicitAmountPassesThrough() {
	ctx := context.Background()
	amount := decimal.RequireFromString("120.00")
	req := dto.PostDepreciationRequest{Period: "2024-03", Amount: &amount}

	returnedEntry := domain.DepreciationEntry{AssetID: s.asset.AssetID, Period: "2024-03", Amount: amount}

	s.mockAssetRepo.On("FindAssetByID", ctx, s.asset.AssetID).Return(&s.asset, nil).Once()
	s.mockLedgerRepo.On("PostDepreciation", ctx, s.asset.AssetID, mock.MatchedBy(func(d domain.DepreciationEntry) bool {
		return d.Amount.Equal(amount)
	})).Return(&returnedEntry, &s.asset, nil).Once()

	_, err := s.service.PostDepreciation(ctx, s.asset.AssetID, req, s.userID)

	s.Require().NoError(err)
}

func (s *AssetServiceTestSuite) TestPostDepreciation_BadPeriodFormat() {
	ctx := context.Background()

	for _, period := range []string{"202402", "2024-13", "Feb-2024", ""} {
		_, err := s.service.PostDepreciation(ctx, s.asset.AssetID, dto.PostDepreciationRequest{Period: period}, s.userID)
		s.Require().Error(err, "period %q", period)
		s.ErrorIs(err, apperrors.ErrValidation)
	}
	s.mockAssetRepo.AssertNotCalled(s.T(), "FindAssetByID", mock.Anything, mock.Anything)
}

func (s *AssetServiceTestSuite) TestPostDepreciation_DisposedAssetRejected() {
	ctx := context.Background()
	disposed := s.asset
	disposed.Status = domain.StatusDisposed

	s.mockAssetRepo.On("FindAssetByID", ctx, disposed.AssetID).Return(&disposed, nil).Once()

	_, err := s.service.PostDepreciation(ctx, disposed.AssetID, dto.PostDepreciationRequest{Period: "2024-02"}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "PostDepreciation", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AssetServiceTestSuite) TestPostDepreciation_ZeroComputedAmountRejected() {
	ctx := context.Background()
	// Sum-of-years-digits beyond the useful life computes zero.
	syd := s.asset
	syd.Method = domain.SumOfYearsDigits

	s.mockAssetRepo.On("FindAssetByID", ctx, syd.AssetID).Return(&syd, nil).Once()

	_, err := s.service.PostDepreciation(ctx, syd.AssetID, dto.PostDepreciationRequest{Period: "2030-01", YearIndex: 9, PeriodMonths: 12}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrNothingToApply)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "PostDepreciation", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AssetServiceTestSuite) TestPostDepreciation_DuplicatePeriodPropagates() {
	ctx := context.Background()
	req := dto.PostDepreciationRequest{Period: "2024-02"}

	s.mockAssetRepo.On("FindAssetByID", ctx, s.asset.AssetID).Return(&s.asset, nil).Once()
	s.mockLedgerRepo.On("PostDepreciation", ctx, s.asset.AssetID, mock.AnythingOfType("domain.DepreciationEntry")).
		Return(nil, nil, apperrors.ErrDuplicate).Once()

	_, err := s.service.PostDepreciation(ctx, s.asset.AssetID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AssetServiceTestSuite) TestPostDepreciation_ConcurrencyConflictPropagates() {
	ctx := context.Background()
	req := dto.PostDepreciationRequest{Period: "2024-02"}

	s.mockAssetRepo.On("FindAssetByID", ctx, s.asset.AssetID).Return(&s.asset, nil).Once()
	s.mockLedgerRepo.On("PostDepreciation", ctx, s.asset.AssetID, mock.AnythingOfType("domain.DepreciationEntry")).
		Return(nil, nil, apperrors.ErrConcurrencyConflict).Once()

	_, err := s.service.PostDepreciation(ctx, s.asset.AssetID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConcurrencyConflict)
}

func (s *AssetServiceTestSuite) TestPostDepreciation_UnitsOfProductionRequiresUnitsThisPeriod() {
	ctx := context.Background()
	uop := s.asset
	uop.Method = domain.UnitsOfProduction
	uop.TotalEstimatedUnits = 7000

	s.mockAssetRepo.On("FindAssetByID", ctx, uop.AssetID).Return(&uop, nil).Once()

	_, err := s.service.PostDepreciation(ctx, uop.AssetID, dto.PostDepreciationRequest{Period: "2024-02"}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- RecordDisposal ---

func (s *AssetServiceTestSuite) TestRecordDisposal_Success() {
	ctx := context.Background()
	req := dto.RecordDisposalRequest{
		DisposalDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Proceeds:     decimal.RequireFromString("12000.00"),
		Costs:        decimal.RequireFromString("500.00"),
		Reason:       "sold",
	}

	returnedEntry := domain.DisposalEntry{
		AssetID:      s.asset.AssetID,
		Proceeds:     req.Proceeds,
		Costs:        req.Costs,
		NetBookValue: decimal.RequireFromString("13000.00"),
		GainLoss:     decimal.RequireFromString("-1500.00"),
		Reason:       "sold",
	}
	disposed := s.asset
	disposed.Status = domain.StatusDisposed

	s.mockAssetRepo.On("FindAssetByID", ctx, s.asset.AssetID).Return(&s.asset, nil).Once()
	s.mockLedgerRepo.On("RecordDisposal", ctx, s.asset.AssetID, mock.MatchedBy(func(d domain.DisposalEntry) bool {
		return d.Proceeds.Equal(req.Proceeds) && d.Costs.Equal(req.Costs) && d.Reason == "sold"
	})).Return(&returnedEntry, &disposed, nil).Once()

	entry, err := s.service.RecordDisposal(ctx, s.asset.AssetID, req, s.userID)

	s.Require().NoError(err)
	s.True(entry.GainLoss.Equal(decimal.RequireFromString("-1500.00")))
}

func (s *AssetServiceTestSuite) TestRecordDisposal_NegativeProceedsRejected() {
	ctx := context.Background()
	req := dto.RecordDisposalRequest{
		DisposalDate: time.Now(),
		Proceeds:     decimal.RequireFromString("-1.00"),
		Reason:       "scrap",
	}

	_, err := s.service.RecordDisposal(ctx, s.asset.AssetID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockAssetRepo.AssertNotCalled(s.T(), "FindAssetByID", mock.Anything, mock.Anything)
}

func (s *AssetServiceTestSuite) TestRecordDisposal_AlreadyDisposedPropagates() {
	ctx := context.Background()
	req := dto.RecordDisposalRequest{DisposalDate: time.Now(), Proceeds: decimal.Zero, Costs: decimal.Zero, Reason: "scrap"}

	s.mockAssetRepo.On("FindAssetByID", ctx, s.asset.AssetID).Return(&s.asset, nil).Once()
	s.mockLedgerRepo.On("RecordDisposal", ctx, s.asset.AssetID, mock.AnythingOfType("domain.DisposalEntry")).
		Return(nil, nil, domain.ErrAlreadyDisposed).Once()

	_, err := s.service.RecordDisposal(ctx, s.asset.AssetID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

// --- RecordRevaluation ---

func (s *AssetServiceTestSuite) TestRecordRevaluation_Success() {
	ctx := context.Background()
	req := dto.RecordRevaluationRequest{
		Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		NewValue: decimal.RequireFromString("2600.00"),
		Type:     domain.Revaluation,
		Reason:   "market adjustment",
	}

	returned := domain.AssetRevaluation{
		AssetID:       s.asset.AssetID,
		PreviousValue: s.asset.CurrentValue,
		NewValue:      req.NewValue,
		Type:          domain.Revaluation,
	}
	updated := s.asset
	updated.CurrentValue = req.NewValue

	s.mockAssetRepo.On("FindAssetByID", ctx, s.asset.AssetID).Return(&s.asset, nil).Once()
	s.mockLedgerRepo.On("RecordRevaluation", ctx, s.asset.AssetID, mock.MatchedBy(func(r domain.AssetRevaluation) bool {
		return r.NewValue.Equal(req.NewValue) && r.Type == domain.Revaluation
	})).Return(&returned, &updated, nil).Once()

	rev, err := s.service.RecordRevaluation(ctx, s.asset.AssetID, req, s.userID)

	s.Require().NoError(err)
	s.True(rev.PreviousValue.Equal(s.asset.CurrentValue))
}

func (s *AssetServiceTestSuite) TestRecordRevaluation_UnknownTypeRejected() {
	ctx := context.Background()
	req := dto.RecordRevaluationRequest{
		Date:     time.Now(),
		NewValue: decimal.NewFromInt(100),
		Type:     domain.RevaluationType("MARK_TO_MARKET"),
		Reason:   "x",
	}

	_, err := s.service.RecordRevaluation(ctx, s.asset.AssetID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetAssetByID integrity verification ---

func (s *AssetServiceTestSuite) TestGetAssetByID_IntegrityOK() {
	ctx := context.Background()
	asset := s.asset
	asset.AccumulatedDepreciation = decimal.RequireFromString("93.76")
	asset.CurrentValue = decimal.RequireFromString("2906.24")

	s.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(&asset, nil).Once()
	s.mockLedgerRepo.On("SumDepreciationByAssetID", ctx, asset.AssetID).Return(decimal.RequireFromString("93.76"), nil).Once()
	s.mockLedgerRepo.On("CountRevaluationsByAssetID", ctx, asset.AssetID).Return(int64(0), nil).Once()

	got, err := s.service.GetAssetByID(ctx, asset.AssetID)

	s.Require().NoError(err)
	s.True(got.CurrentValue.Equal(asset.CurrentValue))
}

func (s *AssetServiceTestSuite) TestGetAssetByID_LedgerSumMismatch() {
	ctx := context.Background()
	asset := s.asset
	asset.AccumulatedDepreciation = decimal.RequireFromString("93.76")

	s.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(&asset, nil).Once()
	s.mockLedgerRepo.On("SumDepreciationByAssetID", ctx, asset.AssetID).Return(decimal.RequireFromString("46.88"), nil).Once()

	_, err := s.service.GetAssetByID(ctx, asset.AssetID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrIntegrity)
}

func (s *AssetServiceTestSuite) TestGetAssetByID_RevaluedAssetSkipsBookValueLeg() {
	ctx := context.Background()
	asset := s.asset
	asset.AccumulatedDepreciation = decimal.RequireFromString("93.76")
	// Revalued: current value no longer derivable from cost minus accumulated.
	asset.CurrentValue = decimal.RequireFromString("2600.00")

	s.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(&asset, nil).Once()
	s.mockLedgerRepo.On("SumDepreciationByAssetID", ctx, asset.AssetID).Return(decimal.RequireFromString("93.76"), nil).Once()
	s.mockLedgerRepo.On("CountRevaluationsByAssetID", ctx, asset.AssetID).Return(int64(1), nil).Once()

	got, err := s.service.GetAssetByID(ctx, asset.AssetID)

	s.Require().NoError(err)
	s.True(got.CurrentValue.Equal(decimal.RequireFromString("2600.00")))
}

func (s *AssetServiceTestSuite) TestGetAssetByID_BookValueMismatchWithoutRevaluations() {
	ctx := context.Background()
	asset := s.asset
	asset.AccumulatedDepreciation = decimal.RequireFromString("93.76")
	asset.CurrentValue = decimal.RequireFromString("2600.00")

	s.mockAssetRepo.On("FindAssetByID", ctx, asset.AssetID).Return(&asset, nil).Once()
	s.mockLedgerRepo.On("SumDepreciationByAssetID", ctx, asset.AssetID).Return(decimal.RequireFromString("93.76"), nil).Once()
	s.mockLedgerRepo.On("CountRevaluationsByAssetID", ctx, asset.AssetID).Return(int64(0), nil).Once()

	_, err := s.service.GetAssetByID(ctx, asset.AssetID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrIntegrity)
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
