// README: Catalog search handler (Places-backed activity lookup).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"aura/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler accepts a nil service; search is then reported as disabled.
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

type catalogSearchReq struct {
	Region   string   `json:"region"`
	Themes   []string `json:"themes"`
	PerTheme int      `json:"perTheme"`
}

// Search handles POST /api/catalog/search.
func (h *CatalogHandler) Search(c *gin.Context) {
	if h.catalog == nil {
		writeError(c, http.StatusServiceUnavailable, "catalog search is not configured")
		return
	}

	var req catalogSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Region = strings.TrimSpace(req.Region)
	if req.Region == "" || len(req.Themes) == 0 {
		writeError(c, http.StatusBadRequest, "missing region or themes")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	activities, err := h.catalog.Search(ctx, req.Region, req.Themes, req.PerTheme)
	if err != nil {
		writeError(c, http.StatusBadGateway, "catalog search failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"availableActivities": activities})
}
