package controllers

import (
	"net/http"

	"github.com/KanannSharmaa25/ai-life-analytics/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

func (h *AnalyticsController) GetInsights(c *gin.Context) {
	insights, err := h.Svc.Insights(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

func (h *AnalyticsController) GetHeatmap(c *gin.Context) {
	buckets, err := h.Svc.Heatmap(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": buckets})
}

func (h *AnalyticsController) GetBestSleepRange(c *gin.Context) {
	best, err := h.Svc.BestSleepRange(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if best == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, best)
}

func (h *AnalyticsController) GetBurnout(c *gin.Context) {
	status, err := h.Svc.Burnout(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if status == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *AnalyticsController) GetBurnoutScore(c *gin.Context) {
	score, err := h.Svc.BurnoutScore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, score)
}

func (h *AnalyticsController) GetBurnoutTrend(c *gin.Context) {
	trend, err := h.Svc.BurnoutTrend(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

func (h *AnalyticsController) GetMoodProductivityCorrelation(c *gin.Context) {
	result, err := h.Svc.MoodProductivityCorrelation(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AnalyticsController) GetRecommendations(c *gin.Context) {
	recs, err := h.Svc.Recommendations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
