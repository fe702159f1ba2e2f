package routes

import (
	"time"

	"github.com/fwwkol/openalgo/client"
	"github.com/fwwkol/openalgo/config"
	"github.com/fwwkol/openalgo/controller"
	"github.com/fwwkol/openalgo/middleware"
	"github.com/fwwkol/openalgo/pricing"
	"github.com/fwwkol/openalgo/repository"
	"github.com/fwwkol/openalgo/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()

	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.RateLimiter(cfg.Config.RateLimiter))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cfgManager := config.NewConfigManager(cfg.Tables)

	// --- 1. Clients ---
	neoClient := client.NewNeoClient(cfg.Config.QuotesBaseUrl, cfg.Config.AccessToken)

	// --- 2. Repositories ---
	symbolRepo := repository.NewSymbolRepository(db)

	// --- 3. Services (Dependency Injection) ---
	quotesSvc := service.NewQuotesService(neoClient, symbolRepo)
	greeksSvc, err := service.NewGreeksService(pricing.NewBlackScholes(), quotesSvc, cfgManager)
	if err != nil {
		log.Fatal().Err(err).Msg("greeks service configuration error")
	}
	optionSymbolSvc := service.NewOptionSymbolService(quotesSvc, symbolRepo, cfgManager)

	// --- 4. Routes & Controllers ---
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)

		v1 := api.Group("/v1")
		{
			controller.NewQuotesController(quotesSvc, cfg.Config.ApiKey).RegisterRoutes(v1)
			controller.NewGreeksController(greeksSvc, cfg.Config.ApiKey).RegisterRoutes(v1)
			controller.NewOptionSymbolController(optionSymbolSvc, cfg.Config.ApiKey).RegisterRoutes(v1)
		}
	}

	return r
}
