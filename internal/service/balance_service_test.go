package service

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/internal/service/mocks"
	"github.com/fsdevblog/campustrade/pkg/uow"
	uowmocks "github.com/fsdevblog/campustrade/pkg/uow/mocks"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockUserRepo   *mocks.MockUserRepository
	mockLedgerRepo *mocks.MockLedgerRepository
	service        *BalanceService
}

func TestBalanceServiceSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

func (s *BalanceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()

	var err error
	s.service, err = NewBalanceService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *BalanceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BalanceServiceTestSuite) TestGetUserBalance() {
	userID := int64(20)

	// юзер получил 100 грантом, потратил 80: баланс 20, леджер сходится.
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Coins: decimal.NewFromInt(20)}, nil)
	s.mockLedgerRepo.EXPECT().SumByUserID(gomock.Any(), userID).
		Return(&repoargs.BalanceAggregation{
			CreditedAmount: decimal.NewFromInt(100),
			DebitedAmount:  decimal.NewFromInt(80),
		}, nil)

	balance, err := s.service.GetUserBalance(s.T().Context(), userID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(20).Equal(balance.Current))
	s.True(decimal.NewFromInt(100).Equal(balance.Credited))
	s.True(decimal.NewFromInt(80).Equal(balance.Debited))
	s.True(balance.Reconciled)
}

func (s *BalanceServiceTestSuite) TestGetUserBalance_NotReconciled() {
	userID := int64(20)

	// расхождение баланса с леджером: сверка обязана его подсветить.
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Coins: decimal.NewFromInt(25)}, nil)
	s.mockLedgerRepo.EXPECT().SumByUserID(gomock.Any(), userID).
		Return(&repoargs.BalanceAggregation{
			CreditedAmount: decimal.NewFromInt(100),
			DebitedAmount:  decimal.NewFromInt(80),
		}, nil)

	balance, err := s.service.GetUserBalance(s.T().Context(), userID)
	s.Require().NoError(err)
	s.False(balance.Reconciled)
}

func (s *BalanceServiceTestSuite) TestGetUserBalance_UserNotFound() {
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.GetUserBalance(s.T().Context(), 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *BalanceServiceTestSuite) TestGetHistory() {
	userID := int64(20)
	want := []domain.LedgerEntry{
		{ID: 2, UserID: userID, Amount: decimal.NewFromInt(-80)},
		{ID: 1, UserID: userID, Amount: decimal.NewFromInt(100)},
	}

	s.mockLedgerRepo.EXPECT().
		GetByUserID(gomock.Any(), userID, repoargs.Page{Number: 1, PerPage: 20}).
		Return(want, nil)

	got, err := s.service.GetHistory(s.T().Context(), userID, repoargs.Page{Number: 1, PerPage: 20})
	s.Require().NoError(err)
	s.Equal(want, got)
}
