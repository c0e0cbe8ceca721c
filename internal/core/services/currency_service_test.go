package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/expensio/invoice_ocr_api/internal/apperrors"
	"github.com/expensio/invoice_ocr_api/internal/core/domain"
	portssvc "github.com/expensio/invoice_ocr_api/internal/core/ports/services"
	"github.com/expensio/invoice_ocr_api/internal/core/services"
	"github.com/expensio/invoice_ocr_api/internal/platform/iso4217"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expected := &domain.Currency{
		CurrencyCode: "CHF",
		Symbol:       "Fr",
		Name:         "Swiss Franc",
		Precision:    2,
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "CHF").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "chf")

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("CHF", currency.CurrencyCode)
	suite.Equal(2, currency.Precision)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_InvalidLength() {
	ctx := context.Background()

	_, err := suite.service.GetCurrencyByCode(ctx, "CHFX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode")
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_UnknownCode() {
	ctx := context.Background()

	_, err := suite.service.GetCurrencyByCode(ctx, "XXZ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode")
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFoundInRepo() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCurrencyByCode(ctx, "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expected := []domain.Currency{
		{CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc", Precision: 2},
		{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	}

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Len(currencies, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSeedCurrencies_Success() {
	ctx := context.Background()

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return iso4217.IsValid(c.CurrencyCode) && c.CreatedBy == "system" && c.LastUpdatedBy == "system"
	})).Return(nil)

	count, err := suite.service.SeedCurrencies(ctx, "system")

	suite.Require().NoError(err)
	suite.Equal(len(iso4217.Codes()), count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSeedCurrencies_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("db down")

	suite.mockRepo.On("SaveCurrency", ctx, mock.Anything).Return(repoErr).Once()

	count, err := suite.service.SeedCurrencies(ctx, "system")

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Zero(count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
