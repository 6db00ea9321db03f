package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	notificationSvs NotificationServicer
}

func NewNotificationsHandler(notificationSvs NotificationServicer) *NotificationsHandler {
	return &NotificationsHandler{
		notificationSvs: notificationSvs,
	}
}

type NotificationResponse struct {
	ID        int64     `json:"ID"`
	TradeID   *int64    `json:"trade_id,omitempty"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"createdAt"`
}

// Index GET RouteGroup + NotificationsRoute. Уведомления текущего юзера.
func (h *NotificationsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notifications, err := h.notificationSvs.GetByUserID(reqCtx, currentUserID, getPageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(notifications) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = NotificationResponse{
			ID:        n.ID,
			TradeID:   n.TradeID,
			Kind:      n.Kind,
			Title:     n.Title,
			Body:      n.Body,
			Delivered: n.Delivered,
			CreatedAt: n.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, response)
}
