package model

import "time"

const (
	AssemblyRegional = "regional"
	AssemblyCircuito = "circuito"
)

type Assembly struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	StartDate time.Time `gorm:"not null;index" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	Type      string    `gorm:"size:16;not null;default:'regional'" json:"type"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AssemblyVolunteer relaciona asambleas con sus voluntarios asociados.
type AssemblyVolunteer struct {
	ID          uint64    `gorm:"primaryKey"`
	AssemblyID  uint64    `gorm:"not null;index;uniqueIndex:uk_assembly_volunteer"`
	VolunteerID uint64    `gorm:"not null;index;uniqueIndex:uk_assembly_volunteer"`
	CreatedAt   time.Time
}

func (AssemblyVolunteer) TableName() string { return "assembly_volunteers" }

// PopulatedAssembly es la vista denormalizada para el panel de administración.
type PopulatedAssembly struct {
	Assembly
	VolunteerIDs []uint64 `json:"volunteerIds"`
	Volunteers   []User   `json:"volunteers"`
}
