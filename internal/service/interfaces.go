package service

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetCoinsForUpdate(ctx context.Context, userID int64) (decimal.Decimal, error)
	AdjustCoins(ctx context.Context, userID int64, delta decimal.Decimal) (decimal.Decimal, error)
}

type ItemRepository interface {
	CreateItem(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error)
	FindItemByID(ctx context.Context, id int64) (*domain.Item, error)
	UpdateStatusIf(ctx context.Context, args repoargs.UpdateItemStatus) (*domain.Item, error)
	GetActiveItems(ctx context.Context, page repoargs.Page) ([]domain.Item, error)
}

type OfferRepository interface {
	CreateOffer(ctx context.Context, args repoargs.CreateOffer) (*domain.Offer, error)
	FindOfferByID(ctx context.Context, id int64) (*domain.Offer, error)
	Respond(ctx context.Context, args repoargs.RespondOffer) (*domain.Offer, error)
	// Consume условно переводит оффер accepted -> consumed; для любого другого
	// текущего статуса возвращает domain.ErrRecordNotFound.
	Consume(ctx context.Context, offerID int64) (*domain.Offer, error)
	GetByBuyerID(ctx context.Context, buyerID int64, filter repoargs.OfferFilter) ([]domain.Offer, error)
	GetReceived(ctx context.Context, sellerID int64, filter repoargs.OfferFilter) ([]domain.Offer, error)
}

type TradeRepository interface {
	CreateTrade(ctx context.Context, args repoargs.CreateTrade) (*domain.Trade, error)
	FindTradeByID(ctx context.Context, id int64) (*domain.Trade, error)
	UpdateStatusIf(ctx context.Context, args repoargs.UpdateTradeStatus) (*domain.Trade, error)
	ForceStatus(ctx context.Context, tradeID int64, status domain.TradeStatusType) (*domain.Trade, error)
	SetReview(ctx context.Context, args repoargs.SetTradeReview) (*domain.Trade, error)
	GetByBuyerID(ctx context.Context, buyerID int64, filter repoargs.TradeFilter) ([]domain.Trade, error)
	GetBySellerID(ctx context.Context, sellerID int64, filter repoargs.TradeFilter) ([]domain.Trade, error)
}

type LedgerRepository interface {
	Create(ctx context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error)
	GetByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.LedgerEntry, error)
	SumByUserID(ctx context.Context, userID int64) (*repoargs.BalanceAggregation, error)
}

type ComplaintRepository interface {
	CreateComplaint(ctx context.Context, args repoargs.CreateComplaint) (*domain.Complaint, error)
	GetByComplainantID(ctx context.Context, complainantID int64, page repoargs.Page) ([]domain.Complaint, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, args repoargs.CreateNotification) (*domain.Notification, error)
	GetUndelivered(ctx context.Context, limit uint) ([]domain.Notification, error)
	MarkDelivered(ctx context.Context, ids []int64) error
	GetByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Notification, error)
}
