package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/service"
)

type ComplaintsHandler struct {
	complaintSvs ComplaintServicer
}

func NewComplaintsHandler(complaintSvs ComplaintServicer) *ComplaintsHandler {
	return &ComplaintsHandler{
		complaintSvs: complaintSvs,
	}
}

type CreateComplaintParams struct {
	TradeID int64  `binding:"required,min=1"           json:"trade_id"`
	Reason  string `binding:"required,max_bytes=4000"  json:"reason"`
}

type ComplaintResponse struct {
	ID            int64     `json:"ID"`
	ComplainantID int64     `json:"complainant_id"`
	DefendantID   int64     `json:"defendant_id"`
	TradeID       int64     `json:"trade_id"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	AdminComment  string    `json:"admin_comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newComplaintResponse(complaint *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:            complaint.ID,
		ComplainantID: complaint.ComplainantID,
		DefendantID:   complaint.DefendantID,
		TradeID:       complaint.TradeID,
		Reason:        complaint.Reason,
		Status:        string(complaint.Status),
		AdminComment:  complaint.AdminComment,
		CreatedAt:     complaint.CreatedAt,
	}
}

// Create POST RouteGroup + ComplaintsRoute. Жалоба стороны сделки, замораживает сделку.
func (h *ComplaintsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateComplaintParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	complaint, createErr := h.complaintSvs.Create(reqCtx, service.CreateComplaintArgs{
		CallerID: currentUserID,
		TradeID:  params.TradeID,
		Reason:   params.Reason,
	})
	if createErr != nil {
		switch {
		case errors.Is(createErr, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(createErr, domain.ErrForbidden):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(createErr, domain.ErrValidation):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": createErr.Error()})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	complaintResponse := newComplaintResponse(complaint)
	c.JSON(http.StatusCreated, &complaintResponse)
}

// Index GET RouteGroup + ComplaintsRoute. Жалобы, поданные текущим юзером.
func (h *ComplaintsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	complaints, err := h.complaintSvs.GetMine(reqCtx, currentUserID, getPageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(complaints) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]ComplaintResponse, len(complaints))
	for i := range complaints {
		response[i] = newComplaintResponse(&complaints[i])
	}
	c.JSON(http.StatusOK, response)
}
