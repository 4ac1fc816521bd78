package controllers

import (
	"net/http"

	"github.com/KanannSharmaa25/ai-life-analytics/config"
	"github.com/KanannSharmaa25/ai-life-analytics/models"
	"github.com/KanannSharmaa25/ai-life-analytics/services"

	"github.com/gin-gonic/gin"
)

func ExportCSV(c *gin.Context) {
	var entries []models.Entry
	if err := config.DB.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := services.EntriesCSV(entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=life_analytics_report.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

func ExportJSON(c *gin.Context) {
	var entries []models.Entry
	if err := config.DB.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": services.ToExportedEntries(entries)})
}
