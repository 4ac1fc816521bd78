package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsActive       bool   `gorm:"default:true"`
}
