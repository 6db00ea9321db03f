package service

import (
	"context"
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

type OfferServiceTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockUOW              *uowmocks.MockUOW
	mockTX               *uowmocks.MockTX
	mockOfferRepo        *mocks.MockOfferRepository
	mockItemRepo         *mocks.MockItemRepository
	mockNotificationRepo *mocks.MockNotificationRepository
	service              *OfferService
}

func TestOfferServiceSuite(t *testing.T) {
	suite.Run(t, new(OfferServiceTestSuite))
}

func (s *OfferServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockOfferRepo = mocks.NewMockOfferRepository(s.mockCtrl)
	s.mockItemRepo = mocks.NewMockItemRepository(s.mockCtrl)
	s.mockNotificationRepo = mocks.NewMockNotificationRepository(s.mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.OfferRepoName)).
		Return(s.mockOfferRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.ItemRepoName)).
		Return(s.mockItemRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OfferRepoName)).
		Return(s.mockOfferRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ItemRepoName)).
		Return(s.mockItemRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.NotificationRepoName)).
		Return(s.mockNotificationRepo, nil).AnyTimes()

	var err error
	s.service, err = NewOfferService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *OfferServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OfferServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)
}

func (s *OfferServiceTestSuite) bargainableItem() *domain.Item {
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

func (s *OfferServiceTestSuite) TestCreate() {
	item := s.bargainableItem()
	buyerID := int64(20)
	amount := decimal.NewFromInt(150)

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)
	s.mockOfferRepo.EXPECT().CreateOffer(gomock.Any(), repoargs.CreateOffer{
		BuyerID: buyerID,
		ItemID:  item.ID,
		Amount:  amount,
	}).Return(&domain.Offer{
		ID:      1,
		BuyerID: buyerID,
		ItemID:  item.ID,
		Amount:  amount,
		Status:  domain.OfferStatusPending,
	}, nil)

	offer, err := s.service.Create(s.T().Context(), CreateOfferArgs{
		BuyerID: buyerID,
		ItemID:  item.ID,
		Amount:  amount,
	})
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusPending, offer.Status)
}

func (s *OfferServiceTestSuite) TestCreate_NonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := s.service.Create(s.T().Context(), CreateOfferArgs{
			BuyerID: 20,
			ItemID:  8,
			Amount:  amount,
		})
		s.Require().ErrorIs(err, domain.ErrValidation)
	}
}

func (s *OfferServiceTestSuite) TestCreate_NotBargainable() {
	item := s.bargainableItem()
	item.IsBargainable = false

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)

	_, err := s.service.Create(s.T().Context(), CreateOfferArgs{
		BuyerID: 20,
		ItemID:  item.ID,
		Amount:  decimal.NewFromInt(150),
	})
	s.Require().ErrorIs(err, domain.ErrNotBargainable)
}

func (s *OfferServiceTestSuite) TestCreate_ItemNotActive() {
	item := s.bargainableItem()
	item.Status = domain.ItemStatusSold

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)

	_, err := s.service.Create(s.T().Context(), CreateOfferArgs{
		BuyerID: 20,
		ItemID:  item.ID,
		Amount:  decimal.NewFromInt(150),
	})
	s.Require().ErrorIs(err, domain.ErrItemUnavailable)
}

func (s *OfferServiceTestSuite) TestCreate_OwnItem() {
	item := s.bargainableItem()

	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), item.ID).Return(item, nil)

	_, err := s.service.Create(s.T().Context(), CreateOfferArgs{
		BuyerID: item.UserID,
		ItemID:  item.ID,
		Amount:  decimal.NewFromInt(150),
	})
	s.Require().ErrorIs(err, domain.ErrSelfTrade)
}

func (s *OfferServiceTestSuite) pendingOffer() *domain.Offer {
	return &domain.Offer{
		ID:      3,
		BuyerID: 20,
		ItemID:  8,
		Amount:  decimal.NewFromInt(150),
		Status:  domain.OfferStatusPending,
	}
}

func (s *OfferServiceTestSuite) TestRespond_Accept() {
	item := s.bargainableItem()
	offer := s.pendingOffer()

	s.expectDo()
	s.mockOfferRepo.EXPECT().FindOfferByID(gomock.Any(), offer.ID).Return(offer, nil)
	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), offer.ItemID).Return(item, nil)

	accepted := *offer
	accepted.Status = domain.OfferStatusAccepted
	s.mockOfferRepo.EXPECT().Respond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.RespondOffer) (*domain.Offer, error) {
			s.Equal(offer.ID, args.OfferID)
			s.Equal(domain.OfferStatusAccepted, args.Status)
			s.False(args.RespondedAt.IsZero())
			return &accepted, nil
		})

	// покупатель узнает об ответе через уведомление.
	s.mockNotificationRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateNotification) (*domain.Notification, error) {
			s.Equal(offer.BuyerID, args.UserID)
			s.Equal("offer_responded", args.Kind)
			return &domain.Notification{ID: 1}, nil
		})

	result, err := s.service.Respond(s.T().Context(), item.UserID, offer.ID, true)
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusAccepted, result.Status)
}

func (s *OfferServiceTestSuite) TestRespond_Reject() {
	item := s.bargainableItem()
	offer := s.pendingOffer()

	s.expectDo()
	s.mockOfferRepo.EXPECT().FindOfferByID(gomock.Any(), offer.ID).Return(offer, nil)
	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), offer.ItemID).Return(item, nil)

	rejected := *offer
	rejected.Status = domain.OfferStatusRejected
	s.mockOfferRepo.EXPECT().Respond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.RespondOffer) (*domain.Offer, error) {
			s.Equal(domain.OfferStatusRejected, args.Status)
			return &rejected, nil
		})
	s.mockNotificationRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Return(&domain.Notification{ID: 2}, nil)

	result, err := s.service.Respond(s.T().Context(), item.UserID, offer.ID, false)
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusRejected, result.Status)
}

func (s *OfferServiceTestSuite) TestRespond_NotOwner() {
	item := s.bargainableItem()
	offer := s.pendingOffer()

	s.expectDo()
	s.mockOfferRepo.EXPECT().FindOfferByID(gomock.Any(), offer.ID).Return(offer, nil)
	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), offer.ItemID).Return(item, nil)

	_, err := s.service.Respond(s.T().Context(), 999, offer.ID, true)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *OfferServiceTestSuite) TestRespond_NotPending() {
	item := s.bargainableItem()
	offer := s.pendingOffer()
	offer.Status = domain.OfferStatusRejected

	s.expectDo()
	s.mockOfferRepo.EXPECT().FindOfferByID(gomock.Any(), offer.ID).Return(offer, nil)
	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), offer.ItemID).Return(item, nil)

	_, err := s.service.Respond(s.T().Context(), item.UserID, offer.ID, true)
	s.Require().ErrorIs(err, domain.ErrInvalidState)
}

func (s *OfferServiceTestSuite) TestRespond_ConcurrentClose() {
	item := s.bargainableItem()
	offer := s.pendingOffer()

	s.expectDo()
	s.mockOfferRepo.EXPECT().FindOfferByID(gomock.Any(), offer.ID).Return(offer, nil)
	s.mockItemRepo.EXPECT().FindItemByID(gomock.Any(), offer.ItemID).Return(item, nil)
	// конкурентный ответ закрыл оффер между чтением и апдейтом.
	s.mockOfferRepo.EXPECT().Respond(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Respond(s.T().Context(), item.UserID, offer.ID, true)
	s.Require().ErrorIs(err, domain.ErrInvalidState)
}
