package controllers

import (
	"net/http"
	"strconv"

	"github.com/KanannSharmaa25/ai-life-analytics/services"

	"github.com/gin-gonic/gin"
)

type EntryInput struct {
	Date         string  `json:"date" binding:"required"`
	SleepHours   float64 `json:"sleep_hours"`
	Mood         int     `json:"mood"`
	Productivity int     `json:"productivity"`
}

func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend running"})
}

func AddEntry(c *gin.Context) {
	var input EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := services.CreateEntry(input.Date, input.SleepHours, input.Mood, input.Productivity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry added", "id": id})
}

func GetEntries(c *gin.Context) {
	entries, err := services.GetAllEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.ToEntryResponses(entries))
}

func GetEntriesByDate(c *gin.Context) {
	entries, err := services.GetEntriesByDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, services.ToEntryResponses(entries))
}

func DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := services.DeleteEntry(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}

func DeleteAllEntries(c *gin.Context) {
	if err := services.DeleteAllEntries(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All entries deleted"})
}
