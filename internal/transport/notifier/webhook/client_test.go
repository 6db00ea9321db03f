package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/campustrade/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestSend() {
	tradeID := int64(1)
	notification := domain.Notification{
		ID:        5,
		UserID:    10,
		TradeID:   &tradeID,
		Kind:      "trade_completed",
		Title:     "Trade completed",
		Body:      "escrow released",
		CreatedAt: time.Now().UTC(),
	}

	var got payload
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("application/json", r.Header.Get("Content-Type"))
		// delivery id дублируется в заголовке и теле.
		s.NotEmpty(r.Header.Get(deliveryIDHeader))

		s.Require().NoError(json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	client := New(s.server.URL)
	err := client.Send(s.T().Context(), notification)
	s.Require().NoError(err)

	s.Equal(notification.UserID, got.UserID)
	s.Require().NotNil(got.TradeID)
	s.Equal(tradeID, *got.TradeID)
	s.Equal(notification.Kind, got.Kind)
	s.NotEmpty(got.DeliveryID)
}

func (s *ClientTestSuite) TestSend_UniqueDeliveryIDs() {
	seen := make(map[string]struct{})
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get(deliveryIDHeader)] = struct{}{}
		w.WriteHeader(http.StatusOK)
	}))

	client := New(s.server.URL)
	for range 3 {
		s.Require().NoError(client.Send(s.T().Context(), domain.Notification{ID: 1, UserID: 10}))
	}
	// каждая доставка несет собственный delivery id.
	s.Len(seen, 3)
}

func (s *ClientTestSuite) TestSend_BadStatus() {
	cases := []struct {
		name       string
		httpStatus int
		wantErr    bool
	}{
		{name: "ok", httpStatus: http.StatusOK, wantErr: false},
		{name: "accepted", httpStatus: http.StatusAccepted, wantErr: false},
		{name: "client error", httpStatus: http.StatusBadRequest, wantErr: true},
		{name: "server error", httpStatus: http.StatusInternalServerError, wantErr: true},
	}

	var status int
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	client := New(s.server.URL)

	var statusCodeError *StatusCodeError
	for _, t := range cases {
		s.Run(t.name, func() {
			status = t.httpStatus
			err := client.Send(s.T().Context(), domain.Notification{ID: 1, UserID: 10})

			if t.wantErr {
				s.Require().ErrorAs(err, &statusCodeError)
				s.Equal(t.httpStatus, statusCodeError.Code)
				return
			}
			s.Require().NoError(err)
		})
	}
}
