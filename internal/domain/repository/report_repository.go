package repository

import (
	"context"

	"unilagyard/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	Update(ctx context.Context, report *entity.Report) error
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Report, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
