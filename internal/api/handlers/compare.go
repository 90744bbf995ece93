package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/futscout/futscout/internal/models"
	"github.com/futscout/futscout/internal/services"
	"github.com/futscout/futscout/pkg/config"
	"github.com/futscout/futscout/pkg/utils"
)

type CompareHandler struct {
	scout  *services.ScoutService
	cache  *services.CacheService
	cfg    *config.Config
	logger *logrus.Logger
}

func NewCompareHandler(scout *services.ScoutService, cache *services.CacheService, cfg *config.Config, logger *logrus.Logger) *CompareHandler {
	return &CompareHandler{
		scout:  scout,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

// Compare ranks two players against the shared filtered pool. Domain
// failures (empty pool, unknown player) are soft: an {error} payload with
// HTTP 200, so the frontend can show them inline.
func (h *CompareHandler) Compare(c *gin.Context) {
	league := c.Query("league")
	playerA := c.Query("player_a")
	playerB := c.Query("player_b")
	if league == "" || playerA == "" || playerB == "" {
		utils.SendValidationError(c, "league, player_a and player_b are required", "")
		return
	}

	pos := c.DefaultQuery("pos", services.PositionAll)
	min90s, ok := parseMin90s(c, h.cfg.DefaultMin90s)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	cacheKey := services.CompareCacheKey(league, playerA, playerB, pos, min90s)
	if h.cache.Enabled() {
		var cached models.Comparison
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	result, err := h.scout.Compare(league, playerA, playerB, pos, min90s)
	if err != nil {
		if errors.Is(err, services.ErrNoPlayersMatch) || errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}
		utils.SendInternalError(c, "comparison failed")
		return
	}

	if h.cache.Enabled() {
		if err := h.cache.Set(ctx, cacheKey, result, h.cfg.CacheTTL); err != nil {
			h.logger.WithField("key", cacheKey).Warnf("Failed to cache comparison: %v", err)
		}
	}

	c.JSON(http.StatusOK, result)
}
