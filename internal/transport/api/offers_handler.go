package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/internal/service"
)

type OffersHandler struct {
	offerSvs OfferServicer
}

func NewOffersHandler(offerSvs OfferServicer) *OffersHandler {
	return &OffersHandler{
		offerSvs: offerSvs,
	}
}

type CreateOfferParams struct {
	ItemID int64           `binding:"required,min=1" json:"item_id"`
	Amount decimal.Decimal `json:"amount"`
}

type OfferResponse struct {
	ID          int64      `json:"ID"`
	BuyerID     int64      `json:"buyer_id"`
	ItemID      int64      `json:"item_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func newOfferResponse(offer *domain.Offer) OfferResponse {
	return OfferResponse{
		ID:          offer.ID,
		BuyerID:     offer.BuyerID,
		ItemID:      offer.ItemID,
		Amount:      offer.Amount.InexactFloat64(),
		Status:      string(offer.Status),
		RespondedAt: offer.RespondedAt,
		CreatedAt:   offer.CreatedAt,
	}
}

// Create POST RouteGroup + OffersRoute. Предложение цены по чужому товару.
func (h *OffersHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateOfferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, createErr := h.offerSvs.Create(reqCtx, service.CreateOfferArgs{
		BuyerID: currentUserID,
		ItemID:  params.ItemID,
		Amount:  params.Amount,
	})
	if createErr != nil {
		abortOfferError(c, createErr)
		return
	}

	offerResponse := newOfferResponse(offer)
	c.JSON(http.StatusCreated, &offerResponse)
}

type RespondOfferParams struct {
	Accept *bool `binding:"required" json:"accept"`
}

// Respond POST RouteGroup + OfferRespondRoute. Ответ владельца товара на предложение.
func (h *OffersHandler) Respond(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	offerID := getIDParam(c)
	if offerID == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var params RespondOfferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.offerSvs.Respond(reqCtx, currentUserID, offerID, *params.Accept)
	if err != nil {
		abortOfferError(c, err)
		return
	}

	offerResponse := newOfferResponse(offer)
	c.JSON(http.StatusOK, &offerResponse)
}

// Index GET RouteGroup + OffersRoute. Офферы текущего юзера как покупателя.
func (h *OffersHandler) Index(c *gin.Context) {
	h.list(c, h.offerSvs.GetMine)
}

// Received GET RouteGroup + OffersReceivedRoute. Офферы по товарам текущего юзера.
func (h *OffersHandler) Received(c *gin.Context) {
	h.list(c, h.offerSvs.GetReceived)
}

func (h *OffersHandler) list(
	c *gin.Context,
	fn func(ctx context.Context, userID int64, filter repoargs.OfferFilter) ([]domain.Offer, error),
) {
	currentUserID := getUserIDFromContext(c)

	filter := repoargs.OfferFilter{Page: getPageFromQuery(c)}
	if statusParam := c.Query("status"); statusParam != "" {
		status := domain.OfferStatusType(statusParam)
		filter.Status = &status
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offers, err := fn(reqCtx, currentUserID, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(offers) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]OfferResponse, len(offers))
	for i := range offers {
		response[i] = newOfferResponse(&offers[i])
	}
	c.JSON(http.StatusOK, response)
}

func abortOfferError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrForbidden):
		c.AbortWithStatus(http.StatusForbidden)
	case errors.Is(err, domain.ErrSelfTrade),
		errors.Is(err, domain.ErrNotBargainable),
		errors.Is(err, domain.ErrItemUnavailable),
		errors.Is(err, domain.ErrInvalidState):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrValidation):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
