package app

import (
	"database/sql"
	"fmt"
	"os"

	"wb-labels/app/controller"
	"wb-labels/app/router"
	"wb-labels/db"
	"wb-labels/label"
	"wb-labels/repository"
	"wb-labels/service"
)

// Initialize wires the application together: database, repositories,
// services and routes. The returned handle must be closed at shutdown.
func Initialize() (*sql.DB, error) {
	database, err := db.InitDB()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Repositories
	brandRepo := repository.NewBrandRepository(database)
	platformRepo := repository.NewPlatformRepository(database)
	modelRepo := repository.NewModelRepository(database)
	tokenRepo := repository.NewTokenRepository(database)

	// Label rendering reads fonts and logos from the assets directory
	assets := label.NewAssets(os.Getenv("ASSETS_DIR"))
	renderer := label.NewRenderer(assets)

	// Services
	wbClient := service.NewWBClient(os.Getenv("WB_API_URL"))
	labelService := service.NewLabelService(tokenRepo, wbClient, renderer)
	archiveService := service.NewArchiveService()
	syncService := service.NewModelSyncService(tokenRepo, modelRepo, wbClient)

	// Create controllers
	controllers := &router.Controllers{
		Label:    controller.NewLabelController(labelService, archiveService),
		Brand:    controller.NewBrandController(brandRepo),
		Platform: controller.NewPlatformController(platformRepo),
		Model:    controller.NewModelController(modelRepo, syncService),
		Token:    controller.NewTokenController(tokenRepo),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return database, nil
}
