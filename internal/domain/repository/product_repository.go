package repository

import (
	"context"

	"unilagyard/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error

	// ListActive returns the whole active working set; feed filtering and
	// tier sorting happen in memory on top of it.
	ListActive(ctx context.Context) ([]*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error)
	ListBySellerID(ctx context.Context, sellerID string, status string, limit, offset int) ([]*entity.Product, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
