package usecase

import (
	"context"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/pkg/errors"
)

type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

func NewReportUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
	}
}

type CreateReportInput struct {
	ProductID string
	Reason    string
	Details   string
}

func (uc *ReportUseCase) CreateReport(ctx context.Context, reporterID string, input CreateReportInput) (*entity.Report, error) {
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}

	if product.SellerID == reporterID {
		return nil, errors.BadRequest("You cannot report your own listing", nil)
	}

	report := &entity.Report{
		ReporterID: reporterID,
		ProductID:  product.ID,
		SellerID:   product.SellerID,
		Reason:     input.Reason,
		Details:    input.Details,
		Status:     "pending",
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}
