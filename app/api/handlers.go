package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/findora-hu/findora/app/category"
	"github.com/findora-hu/findora/app/database"
	"github.com/findora-hu/findora/app/partner"
	"github.com/findora-hu/findora/app/store"
)

func NewHandler(configCache *partner.ConfigCache, runRepo database.RunRepository, st *store.Store) *Handler {
	return &Handler{
		runRepo:     runRepo,
		configCache: configCache,
		store:       st,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp":       time.Now().In(time.Local).Format(time.RFC3339),
		"loaded_partners": h.configCache.GetConfigCount(),
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.runRepo.GetStats()
	if err != nil {
		slog.Error("Database error", "operation", "get_stats", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": stats})
}

func (h *Handler) ListPartners(c *gin.Context) {
	configs := h.configCache.GetConfigs()

	partners := make([]map[string]interface{}, 0, len(configs))
	for _, config := range configs {
		partners = append(partners, map[string]interface{}{
			"id":               config.ID,
			"name":             config.Name,
			"group":            config.Group,
			"enabled":          config.Settings.Enabled,
			"default_category": config.Category.Default,
		})
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *Handler) GetPartnerRuns(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.configCache.GetConfig(id); err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	runs, err := h.runRepo.GetLatestRuns(id, 20)
	if err != nil {
		slog.Error("Database error", "operation", "get_runs", "partner", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	out := make([]map[string]interface{}, 0, len(runs))
	for _, run := range runs {
		out = append(out, map[string]interface{}{
			"status":      run.Status,
			"total_items": run.TotalItems,
			"page_count":  run.PageCount,
			"duration_ms": run.Duration.Milliseconds(),
			"error":       run.Error,
			"created_at":  run.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"partner": id, "runs": out})
}

// GetItems hydrates one partner/category slice through the store, so
// repeated requests share cached loads instead of re-reading page files.
// Without a partner parameter it hydrates every enabled partner and returns
// the cross-partner merged view.
func (h *Handler) GetItems(c *gin.Context) {
	slug := c.Query("category")
	if slug != "" && !category.IsValid(slug) && slug != "akcio" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	partnerID := c.Query("partner")
	if partnerID == "" {
		h.getMergedItems(c, slug)
		return
	}
	if _, err := h.configCache.GetConfig(partnerID); err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	items, err := h.store.Load(c.Request.Context(), h.store.View(), store.Key{Partner: partnerID, Category: slug})
	if err != nil {
		slog.Error("Store load failed", "partner", partnerID, "category", slug, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"partner": partnerID, "category": slug, "count": len(items), "items": items})
}

// getMergedItems loads the slug for every enabled partner and responds with
// the merged result set. A partner whose slice cannot be loaded is skipped.
func (h *Handler) getMergedItems(c *gin.Context, slug string) {
	view := h.store.View()
	for _, config := range h.configCache.GetEnabledConfigs() {
		key := store.Key{Partner: config.ID, Category: slug}
		if _, err := h.store.Load(c.Request.Context(), view, key); err != nil {
			slog.Warn("Store load failed", "partner", config.ID, "category", slug, "error", err)
		}
	}

	items := h.store.Merged(slug)
	c.JSON(http.StatusOK, gin.H{"category": slug, "count": len(items), "items": items})
}
