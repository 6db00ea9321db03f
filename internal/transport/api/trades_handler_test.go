package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/logger"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/internal/service"
	"github.com/fsdevblog/campustrade/internal/service/tokens"
	"github.com/fsdevblog/campustrade/internal/transport/api/mocks"
	"github.com/fsdevblog/campustrade/internal/transport/api/testutils"
)

type TradesHandlerTestSuite struct {
	suite.Suite
	mockTradeService *mocks.MockTradeServicer
	router           *gin.Engine
	jwtSecret        []byte
	currentUserID    int64
	jwtTokenStr      string
}

func (s *TradesHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTradeService = mocks.NewMockTradeServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.currentUserID = 20

	jwtTokenStr, jwtErr := tokens.GenerateUserJWT(s.currentUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	s.jwtTokenStr = jwtTokenStr

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		TradeService: s.mockTradeService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func TestTradesHandlerSuite(t *testing.T) {
	suite.Run(t, new(TradesHandlerTestSuite))
}

func (s *TradesHandlerTestSuite) authHeader() func(*testutils.RequestOptions) {
	return testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.jwtTokenStr))
}

func (s *TradesHandlerTestSuite) TestCreate() {
	argsOk := service.CreateTradeArgs{BuyerID: s.currentUserID, ItemID: 7, RentalDays: 5}
	argsPoor := service.CreateTradeArgs{BuyerID: s.currentUserID, ItemID: 8}
	argsTaken := service.CreateTradeArgs{BuyerID: s.currentUserID, ItemID: 9}

	createdTrade := &domain.Trade{
		ID:              1,
		BuyerID:         s.currentUserID,
		SellerID:        10,
		ItemID:          argsOk.ItemID,
		TransactionType: domain.TradeTypeRent,
		Amount:          decimal.NewFromInt(50),
		DepositPaid:     decimal.NewFromInt(30),
		Status:          domain.TradeStatusPaid,
		IsEscrowed:      true,
	}

	s.mockTradeService.EXPECT().Create(gomock.Any(), argsOk).Return(createdTrade, nil)
	s.mockTradeService.EXPECT().Create(gomock.Any(), argsPoor).Return(nil, domain.ErrNotEnoughBalance)
	s.mockTradeService.EXPECT().Create(gomock.Any(), argsTaken).Return(nil, domain.ErrItemUnavailable)

	cases := []struct {
		name       string
		params     *CreateTradeParams
		authorized bool
		wantStatus int
	}{
		{
			name:       "trade created",
			params:     &CreateTradeParams{ItemID: argsOk.ItemID, RentalDays: argsOk.RentalDays},
			authorized: true,
			wantStatus: http.StatusCreated,
		}, {
			name:       "not enough balance",
			params:     &CreateTradeParams{ItemID: argsPoor.ItemID},
			authorized: true,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "item already reserved",
			params:     &CreateTradeParams{ItemID: argsTaken.ItemID},
			authorized: true,
			wantStatus: http.StatusConflict,
		}, {
			name:       "bad request",
			params:     nil,
			authorized: true,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "unauthorized",
			params:     &CreateTradeParams{ItemID: argsOk.ItemID},
			authorized: false,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var payload []byte
			if t.params != nil {
				payload, _ = json.Marshal(t.params)
			}

			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + TradesRoute,
				Body:   bytes.NewReader(payload),
			}

			var reqOpts []func(*testutils.RequestOptions)
			if t.authorized {
				reqOpts = append(reqOpts, s.authHeader())
			}

			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				var got TradeResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
				s.Equal(createdTrade.ID, got.ID)
				s.Equal(string(domain.TradeStatusPaid), got.Status)
				s.True(got.IsEscrowed)
			}
		})
	}
}

func (s *TradesHandlerTestSuite) TestConfirm() {
	completedTrade := &domain.Trade{
		ID:      1,
		BuyerID: s.currentUserID,
		Status:  domain.TradeStatusCompleted,
	}

	s.mockTradeService.EXPECT().
		Confirm(gomock.Any(), s.currentUserID, int64(1)).
		Return(completedTrade, nil)
	s.mockTradeService.EXPECT().
		Confirm(gomock.Any(), s.currentUserID, int64(2)).
		Return(nil, domain.ErrForbidden)
	s.mockTradeService.EXPECT().
		Confirm(gomock.Any(), s.currentUserID, int64(3)).
		Return(nil, domain.ErrInvalidState)
	s.mockTradeService.EXPECT().
		Confirm(gomock.Any(), s.currentUserID, int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		tradeID    string
		wantStatus int
	}{
		{name: "confirmed", tradeID: "1", wantStatus: http.StatusOK},
		{name: "foreign trade", tradeID: "2", wantStatus: http.StatusForbidden},
		{name: "wrong status", tradeID: "3", wantStatus: http.StatusConflict},
		{name: "not found", tradeID: "404", wantStatus: http.StatusNotFound},
		{name: "garbage id", tradeID: "abc", wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/trades/" + t.tradeID + "/confirm",
			}

			res, err := testutils.MakeRequest(args, s.authHeader())
			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *TradesHandlerTestSuite) TestReview() {
	rating := 5
	reviewedTrade := &domain.Trade{
		ID:          1,
		BuyerID:     s.currentUserID,
		Status:      domain.TradeStatusCompleted,
		BuyerRating: &rating,
	}

	s.mockTradeService.EXPECT().
		Review(gomock.Any(), service.ReviewTradeArgs{
			CallerID: s.currentUserID,
			TradeID:  1,
			Rating:   rating,
			Comment:  "все отлично",
		}).
		Return(reviewedTrade, nil)
	s.mockTradeService.EXPECT().
		Review(gomock.Any(), service.ReviewTradeArgs{
			CallerID: s.currentUserID,
			TradeID:  2,
			Rating:   rating,
		}).
		Return(nil, domain.ErrAlreadyReviewed)

	cases := []struct {
		name       string
		tradeID    string
		params     *ReviewTradeParams
		wantStatus int
	}{
		{
			name:       "reviewed",
			tradeID:    "1",
			params:     &ReviewTradeParams{Rating: rating, Comment: "все отлично"},
			wantStatus: http.StatusOK,
		}, {
			name:       "already reviewed",
			tradeID:    "2",
			params:     &ReviewTradeParams{Rating: rating},
			wantStatus: http.StatusConflict,
		}, {
			// валидация рейтинга срабатывает еще на биндинге.
			name:       "rating out of range",
			tradeID:    "1",
			params:     &ReviewTradeParams{Rating: 6},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			payload, _ := json.Marshal(t.params)

			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/trades/" + t.tradeID + "/review",
				Body:   bytes.NewReader(payload),
			}

			res, err := testutils.MakeRequest(args, s.authHeader())
			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *TradesHandlerTestSuite) TestPurchases() {
	trades := []domain.Trade{
		{ID: 2, BuyerID: s.currentUserID, Amount: decimal.NewFromInt(200)},
		{ID: 1, BuyerID: s.currentUserID, Amount: decimal.NewFromInt(50)},
	}

	paidStatus := domain.TradeStatusPaid
	s.mockTradeService.EXPECT().
		GetPurchases(gomock.Any(), s.currentUserID, repoargs.TradeFilter{
			Page: repoargs.Page{Number: 1, PerPage: defaultPerPage},
		}).
		Return(trades, nil)
	s.mockTradeService.EXPECT().
		GetPurchases(gomock.Any(), s.currentUserID, repoargs.TradeFilter{
			Status: &paidStatus,
			Page:   repoargs.Page{Number: 1, PerPage: defaultPerPage},
		}).
		Return([]domain.Trade{}, nil)

	s.Run("ok", func() {
		res, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    RouteGroup + PurchasesRoute,
		}, s.authHeader())
		s.Require().NoError(err)
		s.Equal(http.StatusOK, res.StatusCode)

		var got []TradeResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
		s.Len(got, 2)
	})

	s.Run("empty with status filter", func() {
		res, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    RouteGroup + PurchasesRoute + "?status=paid",
		}, s.authHeader())
		s.Require().NoError(err)
		s.Equal(http.StatusNoContent, res.StatusCode)
	})
}
