package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
)

type ItemService struct {
	uow      uow.UOW
	itemRepo ItemRepository
}

func NewItemService(u uow.UOW) (*ItemService, error) {
	itemRepo, err := uow.GetRepositoryAs[ItemRepository](u, uow.RepositoryName(repoargs.ItemRepoName))
	if err != nil {
		return nil, err
	}
	return &ItemService{
		uow:      u,
		itemRepo: itemRepo,
	}, nil
}

// Create публикует объявление. Для аренды обязателен разумный max_rental_days, иначе
// движок цен не сможет посчитать ни одну сделку по товару.
func (s *ItemService) Create(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error) {
	if args.TransactionType == domain.TradeTypeRent && args.MaxRentalDays < 1 {
		return nil, fmt.Errorf("%w: max rental days must be positive for rent items", domain.ErrValidation)
	}

	item, err := s.itemRepo.CreateItem(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return item, nil
}

func (s *ItemService) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return item, nil
}

// GetActive возвращает активные объявления, новые первыми.
func (s *ItemService) GetActive(ctx context.Context, page repoargs.Page) ([]domain.Item, error) {
	items, err := s.itemRepo.GetActiveItems(ctx, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return items, nil
}
