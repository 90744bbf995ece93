package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/futscout/futscout/internal/dataset"
)

type HealthHandler struct {
	store *dataset.Store
}

func NewHealthHandler(store *dataset.Store) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

// GetHealth reports liveness plus the loaded dataset's dimensions.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"rows": snap.NumRows(),
		"cols": snap.NumCols(),
	})
}
