package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/internal/domain/service"
	"unilagyard/pkg/errors"
	"unilagyard/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo      repository.PaymentRepository
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	notificationRepo repository.NotificationRepository
	gateway          service.PaymentGatewayService
	baseURL          string
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	notificationRepo repository.NotificationRepository,
	gateway service.PaymentGatewayService,
	baseURL string,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:      paymentRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		gateway:          gateway,
		baseURL:          baseURL,
	}
}

type InitializePaymentInput struct {
	Plan      string
	ProductID string
}

type CompletePaymentInput struct {
	Status        string
	TransactionID string
	TxRef         string
}

// InitializePlanPayment records a pending payment and returns the checkout
// widget configuration for the client to open.
func (uc *PaymentUseCase) InitializePlanPayment(ctx context.Context, userID string, input InitializePaymentInput) (*service.CheckoutConfig, error) {
	plan, ok := entity.Plans[input.Plan]
	if !ok {
		return nil, errors.BadRequest("Unknown plan: "+input.Plan, nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.ProductID != "" {
		product, err := uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, errors.NotFound("Product", err)
		}
		if product.SellerID != userID {
			return nil, errors.Forbidden("You can only purchase a plan for your own listing", nil)
		}
	}

	txRef := "YARD-" + uuid.New().String()

	record := &entity.PaymentRecord{
		TxRef:     txRef,
		UserID:    userID,
		ProductID: input.ProductID,
		Plan:      plan.Name,
		Amount:    plan.Amount,
		Currency:  plan.Currency,
		Status:    "pending",
	}

	if err := uc.paymentRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	config := uc.gateway.BuildCheckoutConfig(txRef, plan.Amount, plan.Currency, service.CustomerDetails{
		Email: user.Email,
		Name:  user.DisplayName,
		Phone: user.Phone,
	}, uc.baseURL+"/payment/complete")

	return &config, nil
}

// CompletePayment handles the widget's callback or redirect. A non-successful
// widget status marks the record failed without contacting the gateway; a
// successful one is re-verified server side before any entitlement is granted.
func (uc *PaymentUseCase) CompletePayment(ctx context.Context, userID string, input CompletePaymentInput) (*entity.PaymentRecord, error) {
	record, err := uc.paymentRepo.GetByTxRef(ctx, input.TxRef)
	if err != nil {
		return nil, err
	}

	if record.UserID != userID {
		return nil, errors.Forbidden("This payment belongs to another account", nil)
	}

	if record.Status == "successful" {
		return record, nil
	}

	if input.Status != "successful" && input.Status != "completed" {
		record.Status = "failed"
		if err := uc.paymentRepo.Update(ctx, record); err != nil {
			return nil, err
		}
		return record, nil
	}

	verified, err := uc.gateway.VerifyTransaction(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if verified.TxRef != record.TxRef ||
		verified.Status != "successful" ||
		verified.Amount < record.Amount ||
		verified.Currency != record.Currency {
		record.Status = "failed"
		if err := uc.paymentRepo.Update(ctx, record); err != nil {
			logger.Warn("Failed to mark payment %s failed: %v", record.TxRef, err)
		}
		return nil, errors.BadRequest("Transaction details do not match the payment record", nil)
	}

	record.Status = "successful"
	record.TransactionID = verified.TransactionID
	if err := uc.paymentRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.applyPlan(ctx, record)

	notification := &entity.Notification{
		UserID: record.UserID,
		Type:   "payment",
		Title:  "Payment confirmed",
		Body:   "Your " + record.Plan + " plan is now active.",
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Failed to notify user %s of payment: %v", record.UserID, err)
	}

	return record, nil
}

// applyPlan grants the purchased entitlements: the user's plan field and,
// when the payment targets a listing, its visibility flags. Each write is
// best-effort; the payment record stays successful regardless.
func (uc *PaymentUseCase) applyPlan(ctx context.Context, record *entity.PaymentRecord) {
	plan, ok := entity.Plans[record.Plan]
	if !ok {
		logger.Error("Successful payment %s references unknown plan %s", record.TxRef, record.Plan)
		return
	}

	user, err := uc.userRepo.GetByID(ctx, record.UserID)
	if err == nil {
		user.Plan = plan.Name
		if err := uc.userRepo.Update(ctx, user); err != nil {
			logger.Warn("Payment %s succeeded but user plan update failed: %v", record.TxRef, err)
		}
	} else {
		logger.Warn("Payment %s succeeded but user %s not found: %v", record.TxRef, record.UserID, err)
	}

	if record.ProductID == "" {
		return
	}

	product, err := uc.productRepo.GetByID(ctx, record.ProductID)
	if err != nil {
		logger.Warn("Payment %s succeeded but product %s not found: %v", record.TxRef, record.ProductID, err)
		return
	}

	product.Featured = plan.Featured
	product.Premium = plan.Premium
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		logger.Warn("Payment %s succeeded but product %s flag update failed: %v", record.TxRef, record.ProductID, err)
	}
}

func (uc *PaymentUseCase) ListPayments(ctx context.Context, userID string, limit, offset int) ([]*entity.PaymentRecord, int64, error) {
	return uc.paymentRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *PaymentUseCase) ListPlans() map[string]entity.Plan {
	return entity.Plans
}
