package repository

import (
	"context"

	"unilagyard/internal/domain/entity"
)

type SavedProductRepository interface {
	Create(ctx context.Context, saved *entity.SavedProduct) error
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.SavedProduct, error)
	Delete(ctx context.Context, id string) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.SavedProduct, int64, error)
}
