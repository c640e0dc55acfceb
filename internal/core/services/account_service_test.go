package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/portalsuite/bank_ledger_app/internal/apperrors"
	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	"github.com/portalsuite/bank_ledger_app/internal/core/services"
	"github.com/portalsuite/bank_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:          "Everyday Checking",
		AccountNumber: "1234567",
		BankName:      "Portal Bank",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(userID, created.UserID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(req.AccountNumber, created.AccountNumber)
	suite.Equal(req.BankName, created.BankName)
	suite.True(created.Balance.IsZero(), "new accounts start at 0.00")
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)
	suite.True(created.CreatedAt.Equal(created.UpdatedAt))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:          "Broken",
		AccountNumber: "0000000",
		BankName:      "Portal Bank",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	created, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountsForUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.Account{
		{AccountID: uuid.NewString(), UserID: userID, Name: "Checking"},
		{AccountID: uuid.NewString(), UserID: userID, Name: "Savings"},
	}

	suite.mockRepo.On("FindAccountsByUser", ctx, userID).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccountsForUser(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountsForUser_ReadFailureDegradesToEmpty() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindAccountsByUser", ctx, userID).Return(nil, assert.AnError).Once()

	accounts, err := suite.service.ListAccountsForUser(ctx, userID)

	suite.Require().NoError(err)
	suite.Empty(accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountForUser_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	userID := uuid.NewString()
	expected := &domain.Account{AccountID: accountID, UserID: userID, Name: "Checking"}

	suite.mockRepo.On("FindAccountByIDForUser", ctx, accountID, userID).Return(expected, nil).Once()

	account, err := suite.service.GetAccountForUser(ctx, accountID, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountForUser_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("FindAccountByIDForUser", ctx, accountID, userID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountForUser(ctx, accountID, userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// Run the suite
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
