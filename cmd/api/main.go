package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"storefront/internal/adapter/api"
	"storefront/internal/adapter/api/handler"
	apimiddleware "storefront/internal/adapter/api/middleware"
	"storefront/internal/adapter/api/router"
	"storefront/internal/adapter/repository"
	domainrepo "storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infrastructure/firebase"
	"storefront/internal/usecase"
	"storefront/pkg/config"
	"storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)

	// The product detail source is interchangeable: the remote REST API when
	// a base URL is configured, the document store otherwise.
	var productSource domainrepo.ProductSource = productRepo
	if cfg.ProductAPIBase != "" {
		logger.Info("Using remote product API at %s", cfg.ProductAPIBase)
		productSource = repository.NewHTTPProductSource(cfg.ProductAPIBase)
	}

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	authState := service.NewAuthStateNotifier()

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient, authState)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, cfg.FuzzyThreshold)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	detailUseCase := usecase.NewDetailUseCase(productSource, reviewRepo, reviewUseCase)

	handler.Setup(authUseCase, catalogUseCase, detailUseCase, reviewUseCase)

	current, events, release := authState.Subscribe()
	defer release()
	logger.Info("Auth state: %s", current.State)
	go func() {
		for event := range events {
			logger.Info("Auth state: %s", event.State)
		}
	}()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
