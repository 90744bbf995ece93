package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/futscout/futscout/internal/services"
	"github.com/futscout/futscout/pkg/config"
	"github.com/futscout/futscout/pkg/utils"
)

type PlayerHandler struct {
	scout *services.ScoutService
	cfg   *config.Config
}

func NewPlayerHandler(scout *services.ScoutService, cfg *config.Config) *PlayerHandler {
	return &PlayerHandler{
		scout: scout,
		cfg:   cfg,
	}
}

// ListPlayers returns the filtered pool as a roster listing, sorted by
// (Squad, Player).
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	league := c.Query("league")
	if league == "" {
		utils.SendValidationError(c, "league is required", "")
		return
	}

	pos := c.DefaultQuery("pos", services.PositionAll)
	min90s, ok := parseMin90s(c, h.cfg.DefaultMin90s)
	if !ok {
		return
	}
	squad := c.Query("squad")

	players := h.scout.Players(league, pos, min90s, squad)
	c.JSON(http.StatusOK, gin.H{
		"players": players,
	})
}

// parseMin90s reads the min90s query parameter, falling back on the
// configured default. An unparsable value is a 400; the response has already
// been written when ok is false.
func parseMin90s(c *gin.Context, def float64) (float64, bool) {
	raw := c.Query("min90s")
	if raw == "" {
		return def, true
	}
	min90s, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.SendValidationError(c, "invalid min90s", err.Error())
		return 0, false
	}
	return min90s, true
}
