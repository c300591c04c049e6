package repository

import (
	"context"

	"unilagyard/internal/domain/entity"
)

type VerificationRepository interface {
	// Upsert writes the request keyed by user ID, overwriting any previous
	// pending or rejected submission.
	Upsert(ctx context.Context, request *entity.VerificationRequest) error
	GetByUserID(ctx context.Context, userID string) (*entity.VerificationRequest, error)
	Update(ctx context.Context, request *entity.VerificationRequest) error
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.VerificationRequest, int64, error)
}
