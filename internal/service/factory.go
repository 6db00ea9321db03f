package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/service/psswd"
	"github.com/fsdevblog/campustrade/pkg/uow"
)

type AppServices struct {
	UserService         *UserService
	ItemService         *ItemService
	OfferService        *OfferService
	TradeService        *TradeService
	BalanceService      *BalanceService
	ComplaintService    *ComplaintService
	NotificationService *NotificationService
}

type FactoryArgs struct {
	JWTSecret     []byte
	SignupGrant   decimal.Decimal
	ReviewReward  decimal.Decimal
	DepositPolicy domain.DepositPolicyType
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr :=
		NewUserService(unitOfWork, args.JWTSecret, args.SignupGrant, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	itemService, itemServiceErr := NewItemService(unitOfWork)
	if itemServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", itemServiceErr.Error())
	}

	offerService, offerServiceErr := NewOfferService(unitOfWork)
	if offerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", offerServiceErr.Error())
	}

	tradeService, tradeServiceErr := NewTradeService(unitOfWork, args.DepositPolicy, args.ReviewReward)
	if tradeServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", tradeServiceErr.Error())
	}

	balanceService, balanceServiceErr := NewBalanceService(unitOfWork)
	if balanceServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", balanceServiceErr.Error())
	}

	complaintService, complaintServiceErr := NewComplaintService(unitOfWork)
	if complaintServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", complaintServiceErr.Error())
	}

	notificationService, notificationServiceErr := NewNotificationService(unitOfWork)
	if notificationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", notificationServiceErr.Error())
	}

	return &AppServices{
		UserService:         userService,
		ItemService:         itemService,
		OfferService:        offerService,
		TradeService:        tradeService,
		BalanceService:      balanceService,
		ComplaintService:    complaintService,
		NotificationService: notificationService,
	}, nil
}
