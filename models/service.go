package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // minutes, informational only
	Price    float64 `json:"price"`
	Active   bool    `json:"active" gorm:"default:true"`
}
