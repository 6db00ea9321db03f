package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/internal/service/mocks"
	"github.com/fsdevblog/campustrade/pkg/uow"
	uowmocks "github.com/fsdevblog/campustrade/pkg/uow/mocks"
)

type TradeServiceTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockUOW              *uowmocks.MockUOW
	mockTX               *uowmocks.MockTX
	mockUserRepo         *mocks.MockUserRepository
	mockItemRepo         *mocks.MockItemRepository
	mockOfferRepo        *mocks.MockOfferRepository
	mockTradeRepo        *mocks.MockTradeRepository
	mockLedgerRepo       *mocks.MockLedgerRepository
	mockNotificationRepo *mocks.MockNotificationRepository
	service              *TradeService
}

func TestTradeServiceSuite(t *testing.T) {
	suite.Run(t, new(TradeServiceTestSuite))
}

func (s *TradeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockItemRepo = mocks.NewMockItemRepository(s.mockCtrl)
	s.mockOfferRepo = mocks.NewMockOfferRepository(s.mockCtrl)
	s.mockTradeRepo = mocks.NewMockTradeRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)
	s.mockNotificationRepo = mocks.NewMockNotificationRepository(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TradeRepoName)).
		Return(s.mockTradeRepo, nil).AnyTimes()

	// Моки получения репозиториев из транзакции.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ItemRepoName)).
		Return(s.mockItemRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OfferRepoName)).
		Return(s.mockOfferRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TradeRepoName)).
		Return(s.mockTradeRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.NotificationRepoName)).
		Return(s.mockNotificationRepo, nil).AnyTimes()

	var err error
	s.service, err = NewTradeService(s.mockUOW, domain.DepositPolicyRetain, decimal.NewFromInt(5))
	s.Require().NoError(err)
}

func (s *TradeServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDoWithOptions настраивает мок UOW обертку для транзакций с явными опциями.
func (s *TradeServiceTestSuite) expectDoWithOptions() {
	s.mockUOW.EXPECT().DoWithOptions(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ pgx.TxOptions, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)
}

// expectDo настраивает мок UOW обертку.
func (s *TradeServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)
}

func (s *TradeServiceTestSuite) rentItem() *domain.Item {
	return &domain.Item{
		ID:               7,
		UserID:           10,
		Title:            "велосипед",
		TransactionType:  domain.TradeTypeRent,
		Status:           domain.ItemStatusActive,
		RentalPriceDay:   decimal.NewFromInt(10),
		RentalPriceWeek:  decimal.NewFromInt(50),
		RentalPriceMonth: decimal.NewFromInt(150),
		MaxRentalDays:    60,
		Deposit:          decimal.NewFromInt(30),
	}
}

func (s *TradeServiceTestSuite) saleItem() *domain.Item {
	return &domain.Item{
		ID:              8,
		UserID:          10,
		Title:           "учебник",
		TransactionType: domain.TradeTypeSale,
		Status:          domain.ItemStatusActive,
		Price:           decimal.NewFromInt(200),
		IsBargainable:   true,
	}
}

func (s *TradeServiceTestSuite) TestCreate_Rent() {
	item := s.rentItem()
	buyerID := int64(20)
	// 5 дней аренды: недельная ставка 50 + залог 30, списывается 80.
	wantTotal := decimal.NewFromInt(80)

	s.expectDoWithOptions()

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)
	s.mockUserRepo.EXPECT().GetCoinsForUpdate(gomock.Any(), buyerID).
		Return(decimal.NewFromInt(150), nil)

	s.mockItemRepo.EXPECT().UpdateStatusIf(gomock.Any(), repoargs.UpdateItemStatus{
		ItemID:     item.ID,
		FromStatus: domain.ItemStatusActive,
		ToStatus:   domain.ItemStatusReserved,
	}).Return(item, nil)

	s.mockTradeRepo.EXPECT().CreateTrade(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTrade) (*domain.Trade, error) {
			// убеждаемся что сделка создается с правильными данными.
			s.Equal(buyerID, args.BuyerID)
			s.Equal(item.UserID, args.SellerID)
			s.Equal(domain.TradeTypeRent, args.TransactionType)
			s.True(decimal.NewFromInt(50).Equal(args.Amount))
			s.True(decimal.NewFromInt(30).Equal(args.DepositPaid))
			s.Equal(5, args.RentalDays)
			s.Require().NotNil(args.StartDate)
			s.Require().NotNil(args.EndDate)
			s.Equal(domain.TradeStatusPaid, args.Status)
			s.True(args.IsEscrowed)
			return &domain.Trade{
				ID:              1,
				BuyerID:         args.BuyerID,
				SellerID:        args.SellerID,
				ItemID:          args.ItemID,
				TransactionType: args.TransactionType,
				Amount:          args.Amount,
				DepositPaid:     args.DepositPaid,
				Status:          args.Status,
				IsEscrowed:      args.IsEscrowed,
			}, nil
		})

	// с покупателя списывается сумма с залогом, в леджер пишется отрицательная запись.
	s.mockUserRepo.EXPECT().AdjustCoins(gomock.Any(), buyerID, wantTotal.Neg()).
		Return(decimal.NewFromInt(70), nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
			s.Equal(buyerID, args.UserID)
			s.True(wantTotal.Neg().Equal(args.Amount))
			s.Equal(domain.LedgerCauseRentalPayment, args.Cause)
			return &domain.LedgerEntry{ID: 1}, nil
		})

	s.mockNotificationRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			// уведомление уходит продавцу.
			s.Equal(item.UserID, args.UserID)
			s.Equal("trade_created", args.Kind)
			return &domain.Notification{ID: 1}, nil
		})

	trade, err := s.service.Create(s.T().Context(), CreateTradeArgs{
		BuyerID:    buyerID,
		ItemID:     item.ID,
		RentalDays: 5,
	})
	s.Require().NoError(err)
	s.Equal(domain.TradeStatusPaid, trade.Status)
	s.True(trade.IsEscrowed)
}

func (s *TradeServiceTestSuite) TestCreate_SaleWithAcceptedOffer() {
	item := s.saleItem()
	buyerID := int64(20)
	offerID := int64(3)
	offer := &domain.Offer{
		ID:      offerID,
		BuyerID: buyerID,
		ItemID:  item.ID,
		Amount:  decimal.NewFromInt(180),
		Status:  domain.OfferStatusAccepted,
	}

	s.expectDoWithOptions()

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)
	s.mockOfferRepo.EXPECT().FindOfferByID(gomock.Any(), offerID).Return(offer, nil)
	// оффер помечается израсходованным в той же транзакции что и создание сделки.
	consumed := *offer
	consumed.Status = domain.OfferStatusConsumed
	s.mockOfferRepo.EXPECT().Consume(gomock.Any(), offerID).Return(&consumed, nil)
	s.mockUserRepo.EXPECT().GetCoinsForUpdate(gomock.Any(), buyerID).
		Return(decimal.NewFromInt(200), nil)
	s.mockItemRepo.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any()).Return(item, nil)

	s.mockTradeRepo.EXPECT().CreateTrade(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTrade) (*domain.Trade, error) {
			// сумма сделки берется из принятого оффера, не из цены товара.
			s.True(offer.Amount.Equal(args.Amount))
			s.True(args.DepositPaid.IsZero())
			return &domain.Trade{ID: 2, SellerID: item.UserID, Amount: args.Amount, Status: args.Status}, nil
		})

	s.mockUserRepo.EXPECT().AdjustCoins(gomock.Any(), buyerID, offer.Amount.Neg()).
		Return(decimal.NewFromInt(20), nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
			s.Equal(domain.LedgerCausePurchasePayment, args.Cause)
			return &domain.LedgerEntry{ID: 2}, nil
		})
	s.mockNotificationRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Return(&domain.Notification{ID: 2}, nil)

	_, err := s.service.Create(s.T().Context(), CreateTradeArgs{
		BuyerID: buyerID,
		ItemID:  item.ID,
		OfferID: &offerID,
	})
	s.Require().NoError(err)
}

func (s *TradeServiceTestSuite) TestCreate_OfferAlreadyConsumed() {
	item := s.saleItem()
	buyerID := int64(20)
	offerID := int64(3)
	offer := &domain.Offer{
		ID:      offerID,
		BuyerID: buyerID,
		ItemID:  item.ID,
		Amount:  decimal.NewFromInt(180),
		Status:  domain.OfferStatusAccepted,
	}

	s.expectDoWithOptions()

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)
	s.mockOfferRepo.EXPECT().FindOfferByID(gomock.Any(), offerID).Return(offer, nil)
	// конкурентная сделка успела израсходовать оффер между чтением и апдейтом:
	// вторая сделка по тому же офферу не создается и деньги не списываются.
	s.mockOfferRepo.EXPECT().Consume(gomock.Any(), offerID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Create(s.T().Context(), CreateTradeArgs{
		BuyerID: buyerID,
		ItemID:  item.ID,
		OfferID: &offerID,
	})
	s.Require().ErrorIs(err, domain.ErrInvalidOffer)
}

func (s *TradeServiceTestSuite) TestCreate_NotEnoughBalance() {
	item := s.rentItem()
	buyerID := int64(20)

	s.expectDoWithOptions()

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)
	// на балансе 10, нужно 80: ни резервирования, ни списания, ни сделки.
	s.mockUserRepo.EXPECT().GetCoinsForUpdate(gomock.Any(), buyerID).
		Return(decimal.NewFromInt(10), nil)

	_, err := s.service.Create(s.T().Context(), CreateTradeArgs{
		BuyerID:    buyerID,
		ItemID:     item.ID,
		RentalDays: 5,
	})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *TradeServiceTestSuite) TestCreate_SelfTrade() {
	item := s.saleItem()

	s.expectDoWithOptions()
	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)

	_, err := s.service.Create(s.T().Context(), CreateTradeArgs{
		BuyerID: item.UserID,
		ItemID:  item.ID,
	})
	s.Require().ErrorIs(err, domain.ErrSelfTrade)
}

func (s *TradeServiceTestSuite) TestCreate_ItemNotActive() {
	item := s.saleItem()
	item.Status = domain.ItemStatusReserved

	s.expectDoWithOptions()
	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)

	_, err := s.service.Create(s.T().Context(), CreateTradeArgs{
		BuyerID: 20,
		ItemID:  item.ID,
	})
	s.Require().ErrorIs(err, domain.ErrItemUnavailable)
}

func (s *TradeServiceTestSuite) TestCreate_ReservationConflict() {
	item := s.saleItem()
	buyerID := int64(20)

	s.expectDoWithOptions()

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)
	s.mockUserRepo.EXPECT().GetCoinsForUpdate(gomock.Any(), buyerID).
		Return(decimal.NewFromInt(500), nil)
	// конкурентная сделка успела увести товар из active.
	s.mockItemRepo.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Create(s.T().Context(), CreateTradeArgs{
		BuyerID: buyerID,
		ItemID:  item.ID,
	})
	s.Require().ErrorIs(err, domain.ErrItemUnavailable)
}

func (s *TradeServiceTestSuite) paidRentTrade() *domain.Trade {
	return &domain.Trade{
		ID:              1,
		BuyerID:         20,
		SellerID:        10,
		ItemID:          7,
		TransactionType: domain.TradeTypeRent,
		Amount:          decimal.NewFromInt(50),
		DepositPaid:     decimal.NewFromInt(30),
		Status:          domain.TradeStatusPaid,
		IsEscrowed:      true,
	}
}

func (s *TradeServiceTestSuite) TestConfirm() {
	trade := s.paidRentTrade()

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)

	completed := *trade
	completed.Status = domain.TradeStatusCompleted
	completed.IsEscrowed = false
	s.mockTradeRepo.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateTradeStatus) (*domain.Trade, error) {
			s.Equal(domain.TradeStatusPaid, args.FromStatus)
			s.Equal(domain.TradeStatusCompleted, args.ToStatus)
			s.True(args.ReleaseEscrow)
			s.Require().NotNil(args.CompletedAt)
			s.Require().NotNil(args.EscrowReleasedAt)
			return &completed, nil
		})

	// продавцу переводится только сумма сделки: залог при политике retain остается у площадки.
	s.mockUserRepo.EXPECT().AdjustCoins(gomock.Any(), trade.SellerID, trade.Amount).
		Return(decimal.NewFromInt(50), nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
			s.Equal(trade.SellerID, args.UserID)
			s.Equal(domain.LedgerCauseTransactionReceipt, args.Cause)
			return &domain.LedgerEntry{ID: 3}, nil
		})

	// арендный товар возвращается в active.
	s.mockItemRepo.EXPECT().UpdateStatusIf(gomock.Any(), repoargs.UpdateItemStatus{
		ItemID:     trade.ItemID,
		FromStatus: domain.ItemStatusReserved,
		ToStatus:   domain.ItemStatusActive,
	}).Return(&domain.Item{ID: trade.ItemID}, nil)

	s.mockNotificationRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Return(&domain.Notification{ID: 3}, nil)

	result, err := s.service.Confirm(s.T().Context(), trade.BuyerID, trade.ID)
	s.Require().NoError(err)
	s.Equal(domain.TradeStatusCompleted, result.Status)
}

func (s *TradeServiceTestSuite) TestConfirm_DepositRefundPolicy() {
	refundService, serviceErr := NewTradeService(s.mockUOW, domain.DepositPolicyRefund, decimal.NewFromInt(5))
	s.Require().NoError(serviceErr)

	trade := s.paidRentTrade()

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)

	completed := *trade
	completed.Status = domain.TradeStatusCompleted
	s.mockTradeRepo.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any()).Return(&completed, nil)

	// продавцу сумма сделки, покупателю возврат залога, две записи в леджере.
	s.mockUserRepo.EXPECT().AdjustCoins(gomock.Any(), trade.SellerID, trade.Amount).
		Return(decimal.NewFromInt(50), nil)
	s.mockUserRepo.EXPECT().AdjustCoins(gomock.Any(), trade.BuyerID, trade.DepositPaid).
		Return(decimal.NewFromInt(100), nil)

	gotCauses := make(map[domain.LedgerCauseType]struct{})
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
			gotCauses[args.Cause] = struct{}{}
			return &domain.LedgerEntry{}, nil
		}).Times(2)

	s.mockItemRepo.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any()).
		Return(&domain.Item{ID: trade.ItemID}, nil)
	s.mockNotificationRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Return(&domain.Notification{}, nil)

	_, err := refundService.Confirm(s.T().Context(), trade.BuyerID, trade.ID)
	s.Require().NoError(err)
	s.Contains(gotCauses, domain.LedgerCauseTransactionReceipt)
	s.Contains(gotCauses, domain.LedgerCauseDepositRefund)
}

func (s *TradeServiceTestSuite) TestConfirm_NotBuyer() {
	trade := s.paidRentTrade()

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)

	_, err := s.service.Confirm(s.T().Context(), trade.SellerID, trade.ID)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *TradeServiceTestSuite) TestConfirm_WrongStatus() {
	trade := s.paidRentTrade()
	trade.Status = domain.TradeStatusCompleted

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)

	_, err := s.service.Confirm(s.T().Context(), trade.BuyerID, trade.ID)
	s.Require().ErrorIs(err, domain.ErrInvalidState)
}

func (s *TradeServiceTestSuite) TestCancel_RentRefundsDeposit() {
	trade := s.paidRentTrade()
	// возврат при аренде: сумма + залог.
	wantRefund := decimal.NewFromInt(80)

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)

	canceled := *trade
	canceled.Status = domain.TradeStatusCanceled
	canceled.IsEscrowed = false
	s.mockTradeRepo.EXPECT().UpdateStatusIf(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateTradeStatus) (*domain.Trade, error) {
			s.Equal(domain.TradeStatusCanceled, args.ToStatus)
			s.Require().NotNil(args.CanceledAt)
			return &canceled, nil
		})

	s.mockUserRepo.EXPECT().AdjustCoins(gomock.Any(), trade.BuyerID, wantRefund).
		Return(decimal.NewFromInt(150), nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
			s.Equal(trade.BuyerID, args.UserID)
			s.True(wantRefund.Equal(args.Amount))
			s.Equal(domain.LedgerCauseTransactionRefund, args.Cause)
			return &domain.LedgerEntry{}, nil
		})

	// товар снова активен.
	s.mockItemRepo.EXPECT().UpdateStatusIf(gomock.Any(), repoargs.UpdateItemStatus{
		ItemID:     trade.ItemID,
		FromStatus: domain.ItemStatusReserved,
		ToStatus:   domain.ItemStatusActive,
	}).Return(&domain.Item{ID: trade.ItemID}, nil)

	s.mockNotificationRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Return(&domain.Notification{}, nil)

	result, err := s.service.Cancel(s.T().Context(), trade.BuyerID, trade.ID)
	s.Require().NoError(err)
	s.Equal(domain.TradeStatusCanceled, result.Status)
}

func (s *TradeServiceTestSuite) completedTrade() *domain.Trade {
	now := time.Now()
	return &domain.Trade{
		ID:              1,
		BuyerID:         20,
		SellerID:        10,
		ItemID:          7,
		TransactionType: domain.TradeTypeSale,
		Amount:          decimal.NewFromInt(200),
		Status:          domain.TradeStatusCompleted,
		CompletedAt:     &now,
	}
}

func (s *TradeServiceTestSuite) TestReview_BuyerGetsReward() {
	trade := s.completedTrade()

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)

	rating := 5
	reviewed := *trade
	reviewed.BuyerRating = &rating
	s.mockTradeRepo.EXPECT().SetReview(gomock.Any(), repoargs.SetTradeReview{
		TradeID: trade.ID,
		AsBuyer: true,
		Rating:  rating,
		Comment: "отличный продавец",
	}).Return(&reviewed, nil)

	// награда за отзыв.
	s.mockUserRepo.EXPECT().AdjustCoins(gomock.Any(), trade.BuyerID, decimal.NewFromInt(5)).
		Return(decimal.NewFromInt(25), nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
			s.Equal(domain.LedgerCauseReviewReward, args.Cause)
			return &domain.LedgerEntry{}, nil
		})

	result, err := s.service.Review(s.T().Context(), ReviewTradeArgs{
		CallerID: trade.BuyerID,
		TradeID:  trade.ID,
		Rating:   rating,
		Comment:  "отличный продавец",
	})
	s.Require().NoError(err)
	s.Require().NotNil(result.BuyerRating)
}

func (s *TradeServiceTestSuite) TestReview_InvalidRating() {
	for _, rating := range []int{0, -1, 6} {
		_, err := s.service.Review(s.T().Context(), ReviewTradeArgs{
			CallerID: 20,
			TradeID:  1,
			Rating:   rating,
		})
		s.Require().ErrorIs(err, domain.ErrValidation)
	}
}

func (s *TradeServiceTestSuite) TestReview_AlreadyReviewed() {
	trade := s.completedTrade()

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)
	// guard-условие buyer_rating IS NULL не нашло строку.
	s.mockTradeRepo.EXPECT().SetReview(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Review(s.T().Context(), ReviewTradeArgs{
		CallerID: trade.BuyerID,
		TradeID:  trade.ID,
		Rating:   4,
	})
	s.Require().ErrorIs(err, domain.ErrAlreadyReviewed)
}

func (s *TradeServiceTestSuite) TestReview_Forbidden() {
	trade := s.completedTrade()

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)

	_, err := s.service.Review(s.T().Context(), ReviewTradeArgs{
		CallerID: 999,
		TradeID:  trade.ID,
		Rating:   4,
	})
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *TradeServiceTestSuite) TestReview_NotCompleted() {
	trade := s.paidRentTrade()

	s.expectDo()
	s.mockTradeRepo.EXPECT().FindTradeByID(gomock.Any(), trade.ID).Return(trade, nil)

	_, err := s.service.Review(s.T().Context(), ReviewTradeArgs{
		CallerID: trade.BuyerID,
		TradeID:  trade.ID,
		Rating:   4,
	})
	s.Require().ErrorIs(err, domain.ErrInvalidState)
}
