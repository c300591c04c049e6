package usecase

import (
	"context"
	"time"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/pkg/errors"
	"unilagyard/pkg/logger"
)

type AdminUseCase struct {
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	reportRepo       repository.ReportRepository
	chatRepo         repository.ChatRepository
	verificationRepo repository.VerificationRepository
	notificationRepo repository.NotificationRepository
	firebaseAuth     FirebaseAuthClient
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	reportRepo repository.ReportRepository,
	chatRepo repository.ChatRepository,
	verificationRepo repository.VerificationRepository,
	notificationRepo repository.NotificationRepository,
	firebaseAuth FirebaseAuthClient,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:         userRepo,
		productRepo:      productRepo,
		reportRepo:       reportRepo,
		chatRepo:         chatRepo,
		verificationRepo: verificationRepo,
		notificationRepo: notificationRepo,
		firebaseAuth:     firebaseAuth,
	}
}

type DashboardStats struct {
	TotalUsers     int64 `json:"total_users"`
	ActiveProducts int64 `json:"active_products"`
	PendingReports int64 `json:"pending_reports"`
	Conversations  int64 `json:"conversations"`
}

type ReportDetail struct {
	*entity.Report
	Reporter *entity.User    `json:"reporter,omitempty"`
	Product  *entity.Product `json:"product,omitempty"`
}

// GetDashboardStats issues one count query per card; the numbers are read at
// slightly different moments and can be mutually inconsistent under load.
func (uc *AdminUseCase) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.CountByStatus(ctx, "active")
	if err != nil {
		return nil, err
	}

	reports, err := uc.reportRepo.CountByStatus(ctx, "pending")
	if err != nil {
		return nil, err
	}

	chats, err := uc.chatRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:     users,
		ActiveProducts: products,
		PendingReports: reports,
		Conversations:  chats,
	}, nil
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, filter, limit, offset)
}

func (uc *AdminUseCase) ListProducts(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.List(ctx, filter, limit, offset)
}

// ListReports enriches each report with its reporter and product, one lookup
// per report.
func (uc *AdminUseCase) ListReports(ctx context.Context, status string, limit, offset int) ([]*ReportDetail, int64, error) {
	reports, total, err := uc.reportRepo.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*ReportDetail, 0, len(reports))
	for _, report := range reports {
		detail := &ReportDetail{Report: report}

		if reporter, err := uc.userRepo.GetByID(ctx, report.ReporterID); err == nil {
			detail.Reporter = reporter
		}
		if report.ProductID != "" {
			if product, err := uc.productRepo.GetByID(ctx, report.ProductID); err == nil {
				detail.Product = product
			}
		}

		details = append(details, detail)
	}

	return details, total, nil
}

func (uc *AdminUseCase) ListConversations(ctx context.Context, limit, offset int) ([]*entity.Chat, int64, error) {
	return uc.chatRepo.ListAll(ctx, limit, offset)
}

// BanUser disables the account, then deactivates the user's active listings
// in a second wave. The waves are not atomic: a crash in between leaves a
// banned seller with live listings, cleaned up on the next ban attempt.
func (uc *AdminUseCase) BanUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == "admin" {
		return nil, errors.Forbidden("Admin accounts cannot be banned", nil)
	}

	user.Status = "banned"
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.firebaseAuth.DisableUser(ctx, userID); err != nil {
		logger.Warn("User %s banned but auth disable failed: %v", userID, err)
	}

	products, _, err := uc.productRepo.ListBySellerID(ctx, userID, "active", 500, 0)
	if err != nil {
		logger.Warn("Failed to list products for banned user %s: %v", userID, err)
		return user, nil
	}

	for _, product := range products {
		product.Status = "inactive"
		if err := uc.productRepo.Update(ctx, product); err != nil {
			logger.Warn("Failed to deactivate product %s for banned user %s: %v", product.ID, userID, err)
		}
	}

	return user, nil
}

func (uc *AdminUseCase) UnbanUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Status = "active"
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *AdminUseCase) DeactivateProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Status = "inactive"
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *AdminUseCase) ResolveReport(ctx context.Context, reportID string) (*entity.Report, error) {
	return uc.closeReport(ctx, reportID, "resolved")
}

func (uc *AdminUseCase) DismissReport(ctx context.Context, reportID string) (*entity.Report, error) {
	return uc.closeReport(ctx, reportID, "dismissed")
}

func (uc *AdminUseCase) closeReport(ctx context.Context, reportID, status string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if report.Status != "pending" {
		return nil, errors.Conflict("Report has already been handled")
	}

	now := time.Now()
	report.Status = status
	report.ResolvedAt = &now

	if err := uc.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		UserID: report.ReporterID,
		Type:   "report",
		Title:  "Report update",
		Body:   "Your report has been " + status,
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Failed to notify reporter %s: %v", report.ReporterID, err)
	}

	return report, nil
}

func (uc *AdminUseCase) ListVerifications(ctx context.Context, status string, limit, offset int) ([]*entity.VerificationRequest, int64, error) {
	return uc.verificationRepo.ListByStatus(ctx, status, limit, offset)
}

func (uc *AdminUseCase) ApproveVerification(ctx context.Context, userID string) (*entity.VerificationRequest, error) {
	return uc.decideVerification(ctx, userID, "approved", "verified",
		"Your seller verification has been approved. You can now create listings.")
}

func (uc *AdminUseCase) RejectVerification(ctx context.Context, userID string) (*entity.VerificationRequest, error) {
	return uc.decideVerification(ctx, userID, "rejected", "rejected",
		"Your seller verification was rejected. Please resubmit with a clearer document.")
}

func (uc *AdminUseCase) decideVerification(ctx context.Context, userID, requestStatus, userStatus, body string) (*entity.VerificationRequest, error) {
	request, err := uc.verificationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Status != "pending" {
		return nil, errors.Conflict("Verification request has already been decided")
	}

	request.Status = requestStatus
	if err := uc.verificationRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Verification decided but user %s not found: %v", userID, err)
		return request, nil
	}

	user.VerificationStatus = userStatus
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Verification decided but user %s status update failed: %v", userID, err)
	}

	notification := &entity.Notification{
		UserID: userID,
		Type:   "verification",
		Title:  "Verification update",
		Body:   body,
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Failed to notify user %s of verification decision: %v", userID, err)
	}

	return request, nil
}
