package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/internal/service"
)

type TradesHandler struct {
	tradeSvs TradeServicer
}

func NewTradesHandler(tradeSvs TradeServicer) *TradesHandler {
	return &TradesHandler{
		tradeSvs: tradeSvs,
	}
}

type CreateTradeParams struct {
	ItemID     int64  `binding:"required,min=1" json:"item_id"`
	RentalDays int    `json:"rental_days"`
	OfferID    *int64 `json:"offer_id"`
}

type TradeResponse struct {
	ID              int64      `json:"ID"`
	BuyerID         int64      `json:"buyer_id"`
	SellerID        int64      `json:"seller_id"`
	ItemID          int64      `json:"item_id"`
	TransactionType string     `json:"transaction_type"`
	Amount          float64    `json:"amount"`
	DepositPaid     float64    `json:"deposit_paid,omitempty"`
	RentalDays      int        `json:"rental_days,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Status          string     `json:"status"`
	IsEscrowed      bool       `json:"is_escrowed"`
	BuyerRating     *int       `json:"buyer_rating,omitempty"`
	SellerRating    *int       `json:"seller_rating,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func newTradeResponse(trade *domain.Trade) TradeResponse {
	return TradeResponse{
		ID:              trade.ID,
		BuyerID:         trade.BuyerID,
		SellerID:        trade.SellerID,
		ItemID:          trade.ItemID,
		TransactionType: string(trade.TransactionType),
		Amount:          trade.Amount.InexactFloat64(),
		DepositPaid:     trade.DepositPaid.InexactFloat64(),
		RentalDays:      trade.RentalDays,
		StartDate:       trade.StartDate,
		EndDate:         trade.EndDate,
		Status:          string(trade.Status),
		IsEscrowed:      trade.IsEscrowed,
		BuyerRating:     trade.BuyerRating,
		SellerRating:    trade.SellerRating,
		CreatedAt:       trade.CreatedAt,
	}
}

// Create POST RouteGroup + TradesRoute. Оплата товара текущим юзером.
func (h *TradesHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateTradeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trade, createErr := h.tradeSvs.Create(reqCtx, service.CreateTradeArgs{
		BuyerID:    currentUserID,
		ItemID:     params.ItemID,
		RentalDays: params.RentalDays,
		OfferID:    params.OfferID,
	})
	if createErr != nil {
		abortTradeError(c, createErr)
		return
	}

	tradeResponse := newTradeResponse(trade)
	c.JSON(http.StatusCreated, &tradeResponse)
}

// Confirm POST RouteGroup + TradeConfirmRoute. Подтверждение получения товара покупателем.
func (h *TradesHandler) Confirm(c *gin.Context) {
	h.transition(c, h.tradeSvs.Confirm)
}

// Cancel POST RouteGroup + TradeCancelRoute. Отмена оплаченной сделки покупателем.
func (h *TradesHandler) Cancel(c *gin.Context) {
	h.transition(c, h.tradeSvs.Cancel)
}

func (h *TradesHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, buyerID, tradeID int64) (*domain.Trade, error),
) {
	currentUserID := getUserIDFromContext(c)
	tradeID := getIDParam(c)
	if tradeID == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trade, err := fn(reqCtx, currentUserID, tradeID)
	if err != nil {
		abortTradeError(c, err)
		return
	}

	tradeResponse := newTradeResponse(trade)
	c.JSON(http.StatusOK, &tradeResponse)
}

type ReviewTradeParams struct {
	Rating  int    `binding:"required,min=1,max=5" json:"rating"`
	Comment string `binding:"max_bytes=2000"       json:"comment"`
}

// Review POST RouteGroup + TradeReviewRoute. Оценка завершенной сделки стороной.
func (h *TradesHandler) Review(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	tradeID := getIDParam(c)
	if tradeID == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var params ReviewTradeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trade, err := h.tradeSvs.Review(reqCtx, service.ReviewTradeArgs{
		CallerID: currentUserID,
		TradeID:  tradeID,
		Rating:   params.Rating,
		Comment:  params.Comment,
	})
	if err != nil {
		abortTradeError(c, err)
		return
	}

	tradeResponse := newTradeResponse(trade)
	c.JSON(http.StatusOK, &tradeResponse)
}

// Purchases GET RouteGroup + PurchasesRoute. Сделки текущего юзера как покупателя.
func (h *TradesHandler) Purchases(c *gin.Context) {
	h.index(c, h.tradeSvs.GetPurchases)
}

// Sales GET RouteGroup + SalesRoute. Сделки текущего юзера как продавца.
func (h *TradesHandler) Sales(c *gin.Context) {
	h.index(c, h.tradeSvs.GetSales)
}

func (h *TradesHandler) index(
	c *gin.Context,
	fn func(ctx context.Context, userID int64, filter repoargs.TradeFilter) ([]domain.Trade, error),
) {
	currentUserID := getUserIDFromContext(c)

	filter := repoargs.TradeFilter{Page: getPageFromQuery(c)}
	if statusParam := c.Query("status"); statusParam != "" {
		status := domain.TradeStatusType(statusParam)
		filter.Status = &status
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trades, err := fn(reqCtx, currentUserID, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(trades) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]TradeResponse, len(trades))
	for i := range trades {
		response[i] = newTradeResponse(&trades[i])
	}
	c.JSON(http.StatusOK, response)
}

// abortTradeError транслирует доменные ошибки сделок в http статусы.
func abortTradeError(c *gin.Context, err error) {
	var rentalErr *domain.RentalDaysExceededError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrNotEnoughBalance):
		c.AbortWithStatus(http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrForbidden):
		c.AbortWithStatus(http.StatusForbidden)
	case errors.Is(err, domain.ErrSelfTrade),
		errors.Is(err, domain.ErrItemUnavailable),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrAlreadyReviewed):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidOffer),
		errors.Is(err, domain.ErrValidation),
		errors.As(err, &rentalErr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
