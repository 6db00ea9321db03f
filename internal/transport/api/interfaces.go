package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type ItemServicer interface {
	Create(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetActive(ctx context.Context, page repoargs.Page) ([]domain.Item, error)
}

type OfferServicer interface {
	Create(ctx context.Context, args service.CreateOfferArgs) (*domain.Offer, error)
	Respond(ctx context.Context, sellerID, offerID int64, accept bool) (*domain.Offer, error)
	GetMine(ctx context.Context, buyerID int64, filter repoargs.OfferFilter) ([]domain.Offer, error)
	GetReceived(ctx context.Context, sellerID int64, filter repoargs.OfferFilter) ([]domain.Offer, error)
}

type TradeServicer interface {
	Create(ctx context.Context, args service.CreateTradeArgs) (*domain.Trade, error)
	Confirm(ctx context.Context, buyerID, tradeID int64) (*domain.Trade, error)
	Cancel(ctx context.Context, buyerID, tradeID int64) (*domain.Trade, error)
	Review(ctx context.Context, args service.ReviewTradeArgs) (*domain.Trade, error)
	GetPurchases(ctx context.Context, buyerID int64, filter repoargs.TradeFilter) ([]domain.Trade, error)
	GetSales(ctx context.Context, sellerID int64, filter repoargs.TradeFilter) ([]domain.Trade, error)
}

type BalanceServicer interface {
	GetUserBalance(ctx context.Context, userID int64) (*service.UserBalance, error)
	GetHistory(ctx context.Context, userID int64, page repoargs.Page) ([]domain.LedgerEntry, error)
}

type ComplaintServicer interface {
	Create(ctx context.Context, args service.CreateComplaintArgs) (*domain.Complaint, error)
	GetMine(ctx context.Context, callerID int64, page repoargs.Page) ([]domain.Complaint, error)
}

type NotificationServicer interface {
	GetByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Notification, error)
}
