package service

import (
	"context"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
)

// itemService is the concrete implementation of ItemService.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an ItemService.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *itemService) Create(ctx context.Context, in models.ItemIn) (models.Item, error) {
	if in.Name == "" {
		return models.Item{}, ErrInvalidDataProvided
	}

	return s.itemRepository.Create(ctx, in)
}

func (s *itemService) GetByID(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.GetByID(ctx, id)
}

func (s *itemService) GetAll(ctx context.Context, page, size int) (models.Page[models.Item], error) {
	items, err := s.itemRepository.GetAll(ctx)
	if err != nil {
		return models.Page[models.Item]{}, err
	}

	return paginate(items, page, size), nil
}

func (s *itemService) Update(ctx context.Context, id int64, in models.ItemIn) (models.Item, error) {
	return s.itemRepository.Update(ctx, id, in)
}

func (s *itemService) Delete(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.Delete(ctx, id)
}
