package repository

import (
	"context"

	"unilagyard/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.PaymentRecord) error
	GetByTxRef(ctx context.Context, txRef string) (*entity.PaymentRecord, error)
	Update(ctx context.Context, payment *entity.PaymentRecord) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.PaymentRecord, int64, error)
}
