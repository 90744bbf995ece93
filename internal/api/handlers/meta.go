package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/futscout/futscout/internal/dataset"
)

type MetaHandler struct {
	store *dataset.Store
}

func NewMetaHandler(store *dataset.Store) *MetaHandler {
	return &MetaHandler{
		store: store,
	}
}

// GetLeagues returns the distinct competitions in the dataset.
func (h *MetaHandler) GetLeagues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"leagues": h.store.Snapshot().Leagues(),
	})
}

// GetPositions returns the distinct positions in the dataset.
func (h *MetaHandler) GetPositions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"positions": h.store.Snapshot().Positions(),
	})
}
