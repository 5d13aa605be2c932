package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/core/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
)

type TrustAccountServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockTrustAccountRepository
	mockAudit *MockAuditWriter
	service   portssvc.TrustAccountSvcFacade
	account   domain.TrustAccount
}

func (suite *TrustAccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTrustAccountRepository)
	suite.mockAudit = new(MockAuditWriter)
	suite.service = services.NewTrustAccountService(suite.mockRepo,
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithAuditTrail(suite.mockAudit))
	suite.account = domain.TrustAccount{
		TrustAccountID:           testAccountID,
		AdvocateID:               testAdvocateID,
		BankName:                 "FNB",
		AccountHolderName:        "A Advocate Trust",
		AccountNumber:            "62000000001",
		AccountType:              domain.TrustAccountType,
		CurrentBalance:           decimal.RequireFromString("1234.56"),
		ReconciliationDayOfMonth: 1,
		Version:                  7,
	}
}

func (suite *TrustAccountServiceTestSuite) TestGetTrustAccount_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindTrustAccountByAdvocate", ctx, testAdvocateID).Return(&suite.account, nil).Once()

	acc, err := suite.service.GetTrustAccount(ctx, testAdvocateID)

	suite.Require().NoError(err)
	suite.Equal(testAccountID, acc.TrustAccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TrustAccountServiceTestSuite) TestGetTrustAccount_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindTrustAccountByAdvocate", ctx, testAdvocateID).Return(nil, apperrors.ErrNotFound).Once()

	acc, err := suite.service.GetTrustAccount(ctx, testAdvocateID)

	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TrustAccountServiceTestSuite) TestGetTrustAccount_Unauthenticated() {
	_, err := suite.service.GetTrustAccount(context.Background(), " ")
	suite.ErrorIs(err, apperrors.ErrNotAuthenticated)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTrustAccountByAdvocate", mock.Anything, mock.Anything)
}

func (suite *TrustAccountServiceTestSuite) TestUpdateDetails_Success() {
	ctx := context.Background()
	day := 25
	threshold := decimal.RequireFromString("5000")
	number := "  99887766554 "
	suite.mockRepo.On("FindTrustAccountByAdvocate", ctx, testAdvocateID).Return(&suite.account, nil).Once()
	suite.mockRepo.On("UpdateTrustAccountDetails", ctx, mock.MatchedBy(func(acc domain.TrustAccount) bool {
		return acc.AccountNumber == "99887766554" &&
			acc.ReconciliationDayOfMonth == 25 &&
			acc.LowBalanceThreshold.Equal(threshold) &&
			acc.CurrentBalance.Equal(decimal.RequireFromString("1234.56")) &&
			acc.Version == 7 &&
			acc.LastUpdatedBy == testAdvocateID
	})).Return(nil).Once()
	suite.mockAudit.On("SaveAuditEntry", ctx, mock.MatchedBy(func(e domain.AuditEntry) bool {
		return e.Action == domain.AuditDetailsUpdated && e.TrustAccountID == testAccountID
	})).Return(nil).Once()

	acc, err := suite.service.UpdateTrustAccountDetails(ctx, testAdvocateID, dto.UpdateTrustAccountRequest{
		AccountNumber:            &number,
		ReconciliationDayOfMonth: &day,
		LowBalanceThreshold:      &threshold,
	})

	suite.Require().NoError(err)
	suite.Equal("99887766554", acc.AccountNumber)
	suite.Equal(fixedNow, acc.LastUpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *TrustAccountServiceTestSuite) TestUpdateDetails_NoChanges() {
	ctx := context.Background()
	suite.mockRepo.On("FindTrustAccountByAdvocate", ctx, testAdvocateID).Return(&suite.account, nil).Once()

	acc, err := suite.service.UpdateTrustAccountDetails(ctx, testAdvocateID, dto.UpdateTrustAccountRequest{})

	suite.Require().NoError(err)
	suite.Equal(suite.account.BankName, acc.BankName)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTrustAccountDetails", mock.Anything, mock.Anything)
}

func (suite *TrustAccountServiceTestSuite) TestUpdateDetails_ValidationErrors() {
	short := "1234"
	blank := "   "
	day := 31
	negative := decimal.RequireFromString("-1")

	cases := map[string]dto.UpdateTrustAccountRequest{
		"short account number": {AccountNumber: &short},
		"blank bank name":      {BankName: &blank},
		"blank holder name":    {AccountHolderName: &blank},
		"day out of range":     {ReconciliationDayOfMonth: &day},
		"negative threshold":   {LowBalanceThreshold: &negative},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			ctx := context.Background()
			account := suite.account
			suite.mockRepo.On("FindTrustAccountByAdvocate", ctx, testAdvocateID).Return(&account, nil).Once()

			acc, err := suite.service.UpdateTrustAccountDetails(ctx, testAdvocateID, req)

			suite.Nil(acc)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTrustAccountDetails", mock.Anything, mock.Anything)
}

func (suite *TrustAccountServiceTestSuite) TestUpdateDetails_RepoError() {
	ctx := context.Background()
	name := "Nedbank"
	expectedErr := errors.New("db down")
	suite.mockRepo.On("FindTrustAccountByAdvocate", ctx, testAdvocateID).Return(&suite.account, nil).Once()
	suite.mockRepo.On("UpdateTrustAccountDetails", ctx, mock.AnythingOfType("domain.TrustAccount")).Return(expectedErr).Once()

	acc, err := suite.service.UpdateTrustAccountDetails(ctx, testAdvocateID, dto.UpdateTrustAccountRequest{BankName: &name})

	suite.Nil(acc)
	suite.ErrorIs(err, expectedErr)
	suite.mockAudit.AssertNotCalled(suite.T(), "SaveAuditEntry", mock.Anything, mock.Anything)
}

func TestTrustAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrustAccountServiceTestSuite))
}
