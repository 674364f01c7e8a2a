package model

import "time"

type Position struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IconName    string    `gorm:"size:64" json:"iconName"`
	AssemblyID  uint64    `gorm:"index" json:"assemblyId"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
