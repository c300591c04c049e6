package handler

import (
	"unilagyard/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	productHandler      *ProductHandler
	adminHandler        *AdminHandler
	paymentHandler      *PaymentHandler
	reportHandler       *ReportHandler
	notificationHandler *NotificationHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	adminUseCase *usecase.AdminUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	reportUseCase *usecase.ReportUseCase,
	notificationUseCase *usecase.NotificationUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}
