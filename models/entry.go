package models

import "time"

// Entry is one day's self-reported record. Entries are global, not scoped
// to a user. No range validation beyond column types.
type Entry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         time.Time `gorm:"type:date;index" json:"date"`
	SleepHours   float64   `json:"sleep_hours"`
	Mood         int       `json:"mood"`
	Productivity int       `json:"productivity"`
}
