package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/campustrade/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup          = "/api"
	RegisterRoute       = "/user/register"
	LoginRoute          = "/user/login"
	ItemsRoute          = "/items"
	ItemRoute           = "/items/:id"
	OffersRoute         = "/offers"
	OffersReceivedRoute = "/offers/received"
	OfferRespondRoute   = "/offers/:id/respond"
	TradesRoute         = "/trades"
	TradeConfirmRoute   = "/trades/:id/confirm"
	TradeCancelRoute    = "/trades/:id/cancel"
	TradeReviewRoute    = "/trades/:id/review"
	PurchasesRoute      = "/user/purchases"
	SalesRoute          = "/user/sales"
	BalanceRoute        = "/user/balance"
	BalanceHistoryRoute = "/user/balance/history"
	ComplaintsRoute     = "/complaints"
	NotificationsRoute  = "/user/notifications"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	UserService         UserServicer
	ItemService         ItemServicer
	OfferService        OfferServicer
	TradeService        TradeServicer
	BalanceService      BalanceServicer
	ComplaintService    ComplaintServicer
	NotificationService NotificationServicer
	JWTSecretKey        []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	itemsHandler := NewItemsHandler(args.ItemService)
	offersHandler := NewOffersHandler(args.OfferService)
	tradesHandler := NewTradesHandler(args.TradeService)
	balanceHandler := NewBalanceHandler(args.BalanceService)
	complaintsHandler := NewComplaintsHandler(args.ComplaintService)
	notificationsHandler := NewNotificationsHandler(args.NotificationService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// витрина открыта и без авторизации.
	api.GET(ItemsRoute, itemsHandler.Index)
	api.GET(ItemRoute, itemsHandler.Show)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(ItemsRoute, itemsHandler.Create)

	api.POST(OffersRoute, offersHandler.Create)
	api.GET(OffersRoute, offersHandler.Index)
	api.GET(OffersReceivedRoute, offersHandler.Received)
	api.POST(OfferRespondRoute, offersHandler.Respond)

	api.POST(TradesRoute, tradesHandler.Create)
	api.POST(TradeConfirmRoute, tradesHandler.Confirm)
	api.POST(TradeCancelRoute, tradesHandler.Cancel)
	api.POST(TradeReviewRoute, tradesHandler.Review)
	api.GET(PurchasesRoute, tradesHandler.Purchases)
	api.GET(SalesRoute, tradesHandler.Sales)

	api.GET(BalanceRoute, balanceHandler.Index)
	api.GET(BalanceHistoryRoute, balanceHandler.History)

	api.POST(ComplaintsRoute, complaintsHandler.Create)
	api.GET(ComplaintsRoute, complaintsHandler.Index)

	api.GET(NotificationsRoute, notificationsHandler.Index)
	return r, nil
}
