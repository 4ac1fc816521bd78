package controllers

import (
	"net/http"
	"strconv"

	"github.com/KanannSharmaa25/ai-life-analytics/config"
	"github.com/KanannSharmaa25/ai-life-analytics/models"
	"github.com/KanannSharmaa25/ai-life-analytics/services"

	"github.com/gin-gonic/gin"
)

func Predict(c *gin.Context) {
	sleepHours, err := strconv.ParseFloat(c.Query("sleep_hours"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sleep_hours query parameter must be a number"})
		return
	}

	var entries []models.Entry
	if err := config.DB.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.PredictProductivity(entries, sleepHours))
}

func Clusters(c *gin.Context) {
	var entries []models.Entry
	if err := config.DB.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clusters": services.ClusterDays(entries)})
}
