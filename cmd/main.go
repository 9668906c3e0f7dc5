package main

import (
	"log"

	"tripweaver/internal/api"
	"tripweaver/internal/config"
	"tripweaver/internal/places"
	"tripweaver/internal/planner"
	"tripweaver/internal/redis"
	"tripweaver/internal/service/session"
	"tripweaver/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the response cache (optional)
	redis.Init(cfg.RedisUrl)

	// Initialize services and clients
	placesClient := initializeServices(cfg)

	// Start background workers
	worker.StartAllWorkers()

	// Setup and run API server
	err = runAPIServer(cfg, placesClient)

	// r.Run only returns on failure; release the cache connection before
	// exiting.
	redis.Close()
	log.Fatalf("Server stopped: %v", err)
}

func initializeServices(cfg config.Config) *places.Client {
	sessionService := session.GetSessionService()
	sessionService.InitService(planner.NewClient(cfg.PlannerUrl))

	return places.NewClient(cfg.PlacesUrl)
}

func runAPIServer(cfg config.Config, placesClient *places.Client) error {
	// Initialize Gin router
	r := gin.Default()

	// Configure API routes
	api.SetupRouter(r, placesClient)

	// Start the server
	return r.Run(cfg.Port)
}
