package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/futscout/futscout/internal/api/handlers"
	"github.com/futscout/futscout/internal/dataset"
	"github.com/futscout/futscout/internal/services"
	"github.com/futscout/futscout/pkg/config"
)

// SetupRoutes configures all API routes on the given engine. All endpoints
// are read-only and public; cache may be nil when Redis is not configured.
func SetupRoutes(router *gin.Engine, store *dataset.Store, scout *services.ScoutService, cache *services.CacheService, cfg *config.Config, logger *logrus.Logger) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	metaHandler := handlers.NewMetaHandler(store)
	playerHandler := handlers.NewPlayerHandler(scout, cfg)
	compareHandler := handlers.NewCompareHandler(scout, cache, cfg, logger)

	router.GET("/health", healthHandler.GetHealth)

	meta := router.Group("/meta")
	{
		meta.GET("/leagues", metaHandler.GetLeagues)
		meta.GET("/positions", metaHandler.GetPositions)
	}

	router.GET("/players", playerHandler.ListPlayers)
	router.GET("/compare", compareHandler.Compare)
}
