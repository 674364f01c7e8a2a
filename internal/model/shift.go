package model

import "time"

// Estados derivados de un turno: pendiente (sin voluntario), confirmado
// (voluntario asignado), rechazado (motivo presente y sin voluntario).
const (
	ShiftPending   = "pendiente"
	ShiftConfirmed = "confirmado"
	ShiftRejected  = "rechazado"
)

type Shift struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	PositionID      uint64    `gorm:"not null;index" json:"positionId"`
	VolunteerID     *uint64   `gorm:"index" json:"volunteerId"`
	StartTime       time.Time `gorm:"not null;index" json:"startTime"`
	EndTime         time.Time `gorm:"not null" json:"endTime"`
	AssemblyID      uint64    `gorm:"not null;index" json:"assemblyId"`
	RejectionReason *string   `gorm:"size:255" json:"rejectionReason"`
	RejectedBy      *uint64   `json:"rejectedBy"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// Status deriva el estado del turno a partir de sus campos.
func (s *Shift) Status() string {
	if s.RejectionReason != nil {
		return ShiftRejected
	}
	if s.VolunteerID != nil {
		return ShiftConfirmed
	}
	return ShiftPending
}

// PopulatedShift une el turno con su posición, asamblea y voluntario para mostrar.
type PopulatedShift struct {
	Shift
	Position  Position          `json:"position"`
	Volunteer *User             `json:"volunteer"`
	Assembly  PopulatedAssembly `json:"assembly"`
}

// ShiftOutbox registra eventos de turnos pendientes de publicar.
type ShiftOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // assigned / unassigned / rejected
	ShiftID   uint64 `gorm:"not null"`
	Payload   string `gorm:"type:text;not null"`
	Status    int8   `gorm:"not null;default:0"` // 0=pending,1=sent,2=failed
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShiftOutbox) TableName() string { return "shift_outbox" }
