package model

import "time"

const (
	RoleAdmin     = "admin"
	RoleVolunteer = "volunteer"
)

type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Phone        string    `gorm:"size:32" json:"phone"`
	Email        string    `gorm:"uniqueIndex;size:64;not null" json:"email"`
	Role         string    `gorm:"size:16;not null;default:'volunteer'" json:"role"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
