package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/campustrade/internal/domain"
)

type BalanceHandler struct {
	svs BalanceServicer
}

func NewBalanceHandler(svs BalanceServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Current    float64 `json:"current"`
	Credited   float64 `json:"credited"`
	Debited    float64 `json:"debited"`
	Reconciled bool    `json:"reconciled"`
}

// Index GET RouteGroup + BalanceRoute. Текущий баланс с агрегатами леджера.
func (b *BalanceHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.GetUserBalance(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Current:    balance.Current.InexactFloat64(),
		Credited:   balance.Credited.InexactFloat64(),
		Debited:    balance.Debited.InexactFloat64(),
		Reconciled: balance.Reconciled,
	})
}

type LedgerEntryResponse struct {
	Amount      float64                `json:"amount"`
	Cause       domain.LedgerCauseType `json:"cause"`
	TradeID     *int64                 `json:"trade_id,omitempty"`
	Description string                 `json:"description,omitempty"`
	CreatedAt   string                 `json:"created_at"`
}

// History GET RouteGroup + BalanceHistoryRoute. История движений средств юзера.
func (b *BalanceHandler) History(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := b.svs.GetHistory(reqCtx, currentUserID, getPageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(entries) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = LedgerEntryResponse{
			Amount:      entry.Amount.InexactFloat64(),
			Cause:       entry.Cause,
			TradeID:     entry.TradeID,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}
