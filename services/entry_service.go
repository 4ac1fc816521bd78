package services

import (
	"time"

	"github.com/KanannSharmaa25/ai-life-analytics/config"
	"github.com/KanannSharmaa25/ai-life-analytics/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type EntryResponse struct {
	ID           uint    `json:"id"`
	Date         string  `json:"date"`
	SleepHours   float64 `json:"sleep_hours"`
	Mood         int     `json:"mood"`
	Productivity int     `json:"productivity"`
}

func CreateEntry(dateStr string, sleepHours float64, mood, productivity int) (uint, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return 0, err
	}

	entry := models.Entry{
		Date:         date,
		SleepHours:   sleepHours,
		Mood:         mood,
		Productivity: productivity,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func GetAllEntries() ([]models.Entry, error) {
	var entries []models.Entry
	err := config.DB.Order("date ASC").Find(&entries).Error
	return entries, err
}

func GetEntriesByDate(dateStr string) ([]models.Entry, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	var entries []models.Entry
	err = config.DB.Where("date = ?", date).Find(&entries).Error
	return entries, err
}

// DeleteEntry removes one entry by id. Deleting an absent id is a no-op,
// not an error.
func DeleteEntry(id uint) error {
	return config.DB.Delete(&models.Entry{}, id).Error
}

func DeleteAllEntries() error {
	return config.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Entry{}).Error
}

func ToEntryResponses(entries []models.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ID:           e.ID,
			Date:         e.Date.Format(dateLayout),
			SleepHours:   e.SleepHours,
			Mood:         e.Mood,
			Productivity: e.Productivity,
		})
	}
	return out
}
