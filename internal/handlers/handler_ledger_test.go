package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/portalsuite/bank_ledger_app/internal/apperrors"
	"github.com/portalsuite/bank_ledger_app/internal/core/domain"
	portssvc "github.com/portalsuite/bank_ledger_app/internal/core/ports/services"
	"github.com/portalsuite/bank_ledger_app/internal/dto"
	"github.com/portalsuite/bank_ledger_app/internal/handlers"
	"github.com/portalsuite/bank_ledger_app/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testSessionSecret = "test-session-secret"

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccountsForUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ApplyTransaction(ctx context.Context, accountID string, userID string, req dto.ApplyTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactionsForAccount(ctx context.Context, accountID string, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite Setup ---

type LedgerHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockAccountSvc *MockAccountService
	mockLedgerSvc  *MockLedgerService
	userID         string
	token          string
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidations())

	suite.mockAccountSvc = new(MockAccountService)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.userID = uuid.NewString()
	suite.token = suite.makeSessionToken(suite.userID)

	cfg := &config.Config{SessionSecret: testSessionSecret}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Account: suite.mockAccountSvc,
		Ledger:  suite.mockLedgerSvc,
	})
}

func (suite *LedgerHandlerTestSuite) makeSessionToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSessionSecret))
	suite.Require().NoError(err)
	return token
}

func (suite *LedgerHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestApplyTransaction_RequiresSession() {
	accountID := uuid.NewString()
	body := gin.H{"amount": "10.00", "type": "deposit"}

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", "", body)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.doRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", "not-a-token", body)
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ApplyTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestApplyTransaction_Deposit() {
	accountID := uuid.NewString()
	expected := &domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Amount:        decimal.RequireFromString("100.00"),
		Type:          domain.Deposit,
		Description:   "payday",
		CreatedAt:     time.Now().UTC(),
	}

	suite.mockLedgerSvc.On("ApplyTransaction", mock.Anything, accountID, suite.userID, mock.MatchedBy(func(req dto.ApplyTransactionRequest) bool {
		return req.Amount.Equal(expected.Amount) && req.Type == domain.Deposit && req.Description == "payday"
	})).Return(expected, nil).Once()

	body := gin.H{"amount": "100.00", "type": "deposit", "description": "payday"}
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", suite.token, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.True(resp.Amount.Equal(expected.Amount))
	suite.Equal(domain.Deposit, resp.Type)

	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestApplyTransaction_InsufficientFunds() {
	accountID := uuid.NewString()

	suite.mockLedgerSvc.On("ApplyTransaction", mock.Anything, accountID, suite.userID, mock.AnythingOfType("dto.ApplyTransactionRequest")).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	body := gin.H{"amount": "150.00", "type": "withdrawal"}
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", suite.token, body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestApplyTransaction_AccountNotFound() {
	accountID := uuid.NewString()

	suite.mockLedgerSvc.On("ApplyTransaction", mock.Anything, accountID, suite.userID, mock.AnythingOfType("dto.ApplyTransactionRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	body := gin.H{"amount": "10.00", "type": "deposit"}
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", suite.token, body)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestApplyTransaction_RejectsBadPayloads() {
	accountID := uuid.NewString()

	badBodies := []gin.H{
		{"amount": "-5.00", "type": "deposit"},  // dgt0 rule
		{"amount": "10.00", "type": "interest"}, // unknown kind
		{"type": "deposit"},                     // missing amount
	}
	for _, body := range badBodies {
		w := suite.doRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", suite.token, body)
		suite.Equal(http.StatusBadRequest, w.Code, "body %v", body)
	}

	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ApplyTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestListTransactions() {
	accountID := uuid.NewString()
	now := time.Now().UTC()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: accountID, Amount: decimal.RequireFromString("40.00"), Type: domain.Withdrawal, CreatedAt: now},
		{TransactionID: uuid.NewString(), AccountID: accountID, Amount: decimal.RequireFromString("100.00"), Type: domain.Deposit, CreatedAt: now.Add(-time.Minute)},
	}

	suite.mockLedgerSvc.On("ListTransactionsForAccount", mock.Anything, accountID, suite.userID).Return(txns, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/transactions", suite.token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 2)
	suite.Equal(txns[0].TransactionID, resp.Transactions[0].TransactionID)

	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListTransactions_UnownedAccountYieldsEmptyList() {
	accountID := uuid.NewString()

	suite.mockLedgerSvc.On("ListTransactionsForAccount", mock.Anything, accountID, suite.userID).
		Return([]domain.Transaction{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/transactions", suite.token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Transactions)
}

func (suite *LedgerHandlerTestSuite) TestCreateAccount() {
	now := time.Now().UTC()
	expected := &domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        suite.userID,
		Name:          "Everyday Checking",
		AccountNumber: "1234567",
		BankName:      "Portal Bank",
		Balance:       decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	suite.mockAccountSvc.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest"), suite.userID).
		Return(expected, nil).Once()

	body := gin.H{"name": "Everyday Checking", "accountNumber": "1234567", "bankName": "Portal Bank"}
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", suite.token, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.AccountID, resp.AccountID)
	suite.True(resp.Balance.IsZero())

	suite.mockAccountSvc.AssertExpectations(suite.T())
}

// Run the suite
func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
