package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
)

type ItemsHandler struct {
	itemSvs ItemServicer
}

func NewItemsHandler(itemSvs ItemServicer) *ItemsHandler {
	return &ItemsHandler{
		itemSvs: itemSvs,
	}
}

type CreateItemParams struct {
	Title            string          `binding:"required,max_bytes=120" json:"title"`
	Description      string          `binding:"max_bytes=4000"         json:"description"`
	TransactionType  string          `binding:"required,oneof=sale rent" json:"transaction_type"`
	Price            decimal.Decimal `json:"price"`
	RentalPriceDay   decimal.Decimal `json:"rental_price_day"`
	RentalPriceWeek  decimal.Decimal `json:"rental_price_week"`
	RentalPriceMonth decimal.Decimal `json:"rental_price_month"`
	MaxRentalDays    int             `json:"max_rental_days"`
	Deposit          decimal.Decimal `json:"deposit"`
	IsBargainable    bool            `json:"is_bargainable"`
}

type ItemResponse struct {
	ID               int64     `json:"ID"`
	UserID           int64     `json:"user_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TransactionType  string    `json:"transaction_type"`
	Status           string    `json:"status"`
	Price            float64   `json:"price"`
	RentalPriceDay   float64   `json:"rental_price_day,omitempty"`
	RentalPriceWeek  float64   `json:"rental_price_week,omitempty"`
	RentalPriceMonth float64   `json:"rental_price_month,omitempty"`
	MaxRentalDays    int       `json:"max_rental_days,omitempty"`
	Deposit          float64   `json:"deposit,omitempty"`
	IsBargainable    bool      `json:"is_bargainable"`
	CreatedAt        time.Time `json:"createdAt"`
}

func newItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:               item.ID,
		UserID:           item.UserID,
		Title:            item.Title,
		Description:      item.Description,
		TransactionType:  string(item.TransactionType),
		Status:           string(item.Status),
		Price:            item.Price.InexactFloat64(),
		RentalPriceDay:   item.RentalPriceDay.InexactFloat64(),
		RentalPriceWeek:  item.RentalPriceWeek.InexactFloat64(),
		RentalPriceMonth: item.RentalPriceMonth.InexactFloat64(),
		MaxRentalDays:    item.MaxRentalDays,
		Deposit:          item.Deposit.InexactFloat64(),
		IsBargainable:    item.IsBargainable,
		CreatedAt:        item.CreatedAt,
	}
}

// Create POST RouteGroup + ItemsRoute. Публикует объявление текущего юзера.
func (h *ItemsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	item, createErr := h.itemSvs.Create(reqCtx, repoargs.CreateItem{
		UserID:           currentUserID,
		Title:            params.Title,
		Description:      params.Description,
		TransactionType:  domain.TradeType(params.TransactionType),
		Price:            params.Price,
		RentalPriceDay:   params.RentalPriceDay,
		RentalPriceWeek:  params.RentalPriceWeek,
		RentalPriceMonth: params.RentalPriceMonth,
		MaxRentalDays:    params.MaxRentalDays,
		Deposit:          params.Deposit,
		IsBargainable:    params.IsBargainable,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrValidation) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": createErr.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	itemResponse := newItemResponse(item)
	c.JSON(http.StatusCreated, &itemResponse)
}

// Show GET RouteGroup + ItemRoute.
func (h *ItemsHandler) Show(c *gin.Context) {
	itemID := getIDParam(c)
	if itemID == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	item, err := h.itemSvs.GetByID(reqCtx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	itemResponse := newItemResponse(item)
	c.JSON(http.StatusOK, &itemResponse)
}

// Index GET RouteGroup + ItemsRoute. Список активных объявлений.
func (h *ItemsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := h.itemSvs.GetActive(reqCtx, getPageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(items) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]ItemResponse, len(items))
	for i := range items {
		response[i] = newItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, response)
}
