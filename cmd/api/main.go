package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"unilagyard/internal/adapter/api"
	"unilagyard/internal/adapter/api/handler"
	apimiddleware "unilagyard/internal/adapter/api/middleware"
	"unilagyard/internal/adapter/api/router"
	"unilagyard/internal/adapter/repository"
	"unilagyard/internal/domain/service"
	"unilagyard/internal/infrastructure/firebase"
	"unilagyard/internal/infrastructure/imagehost"
	"unilagyard/internal/infrastructure/pubsub"
	"unilagyard/internal/infrastructure/storage"
	"unilagyard/internal/infrastructure/websocket"
	"unilagyard/internal/usecase"
	"unilagyard/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	// Prefer inline credentials in production, fall back to a key file for
	// local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)
	verificationRepo := repository.NewFirestoreVerificationRepository(firestoreClient)
	savedProductRepo := repository.NewFirestoreSavedProductRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	// Redis is optional: without it, chat events only reach clients connected
	// to this instance.
	var broker *pubsub.ChatEventBroker
	if cfg.RedisAddr != "" {
		broker = pubsub.NewChatEventBroker(cfg.RedisAddr, cfg.RedisPassword)
		if err := broker.Ping(ctx); err != nil {
			log.Printf("Redis unreachable, falling back to single-instance delivery: %v", err)
			broker = nil
		}
	}

	wsManager := websocket.NewManager(broker)
	wsManager.Start(ctx)

	imgbbClient := imagehost.NewImgbbClient(cfg.ImgbbApiKey)
	paymentGateway := service.NewFlutterwavePaymentService(cfg.FlutterwavePublicKey, cfg.FlutterwaveSecretKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, verificationRepo, imgbbClient, cfg.MaxUploadSize)
	productUseCase := usecase.NewProductUseCase(productRepo, userRepo, savedProductRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, productRepo, notificationRepo, wsManager)
	adminUseCase := usecase.NewAdminUseCase(userRepo, productRepo, reportRepo, chatRepo, verificationRepo, notificationRepo, firebaseAuthClient)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, userRepo, productRepo, notificationRepo, paymentGateway, cfg.BaseURL)
	reportUseCase := usecase.NewReportUseCase(reportRepo, productRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	handler.Setup(authUseCase, userUseCase, productUseCase, adminUseCase, paymentUseCase, reportUseCase, notificationUseCase)
	handler.SetupFileHandler(storageClient, fileMetadataRepo, cfg.MaxUploadSize)
	handler.SetupHealthHandler(broker)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo, cfg.AdminEmails)

	chatHandler := handler.NewChatHandler(chatUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
