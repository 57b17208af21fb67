package router

import (
	"net/http"

	"wb-labels/app/controller"
)

type Controllers struct {
	Label    *controller.LabelController
	Brand    *controller.BrandController
	Platform *controller.PlatformController
	Model    *controller.ModelController
	Token    *controller.TokenController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Label archive production
	http.HandleFunc("/api/barcodes", controllers.Label.CreateBarcodes)

	// Brand dictionary
	http.HandleFunc("/api/brands", controllers.Brand.Collection)
	http.HandleFunc("/api/brands/", controllers.Brand.ByID)

	// Platform dictionary
	http.HandleFunc("/api/platforms", controllers.Platform.Collection)
	http.HandleFunc("/api/platforms/", controllers.Platform.ByID)

	// Registered models
	http.HandleFunc("/api/models", controllers.Model.Collection)
	http.HandleFunc("/api/models/by-brand-platform", controllers.Model.ByBrandAndPlatform)
	http.HandleFunc("/api/models/wb", controllers.Model.SyncFromWB)

	// Marketplace API tokens
	http.HandleFunc("/api/tokens", controllers.Token.Collection)
	http.HandleFunc("/api/tokens/", controllers.Token.ByID)
}
