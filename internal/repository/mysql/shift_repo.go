package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"Asamblea_Hub/internal/model"

	"gorm.io/gorm"
)

// ErrShiftUnassigned indica un rechazo sobre un turno sin voluntario asignado.
var ErrShiftUnassigned = errors.New("shift has no assigned volunteer")

type ShiftRepository struct {
	DB *gorm.DB
}

func (r *ShiftRepository) Create(ctx context.Context, s *model.Shift) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *ShiftRepository) FindByID(ctx context.Context, id uint64) (*model.Shift, error) {
	var shift model.Shift
	err := r.DB.WithContext(ctx).First(&shift, id).Error
	return &shift, err
}

// ListPopulated une cada turno con su posición, asamblea y voluntario,
// ordenado por hora de inicio. Los turnos con referencias rotas se
// descartan en lugar de fallar.
func (r *ShiftRepository) ListPopulated(ctx context.Context) ([]model.PopulatedShift, error) {
	db := r.DB.WithContext(ctx)

	var shifts []model.Shift
	if err := db.Order("start_time").Find(&shifts).Error; err != nil {
		return nil, err
	}

	var positions []model.Position
	if err := db.Find(&positions).Error; err != nil {
		return nil, err
	}
	positionByID := make(map[uint64]model.Position, len(positions))
	for _, p := range positions {
		positionByID[p.ID] = p
	}

	var assemblies []model.Assembly
	if err := db.Find(&assemblies).Error; err != nil {
		return nil, err
	}
	assemblyByID := make(map[uint64]model.Assembly, len(assemblies))
	for _, a := range assemblies {
		assemblyByID[a.ID] = a
	}

	var users []model.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	userByID := make(map[uint64]model.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	var links []model.AssemblyVolunteer
	if err := db.Find(&links).Error; err != nil {
		return nil, err
	}
	volunteerIDsByAssembly := make(map[uint64][]uint64)
	for _, l := range links {
		volunteerIDsByAssembly[l.AssemblyID] = append(volunteerIDsByAssembly[l.AssemblyID], l.VolunteerID)
	}
	for _, ids := range volunteerIDsByAssembly {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	populated := make([]model.PopulatedShift, 0, len(shifts))
	for _, s := range shifts {
		position, ok := positionByID[s.PositionID]
		if !ok {
			continue
		}
		assembly, ok := assemblyByID[s.AssemblyID]
		if !ok {
			continue
		}

		var volunteer *model.User
		if s.VolunteerID != nil {
			if u, ok := userByID[*s.VolunteerID]; ok {
				volunteer = &u
			}
		}

		populated = append(populated, model.PopulatedShift{
			Shift:     s,
			Position:  position,
			Volunteer: volunteer,
			Assembly: model.PopulatedAssembly{
				Assembly:     assembly,
				VolunteerIDs: volunteerIDsByAssembly[assembly.ID],
			},
		})
	}
	return populated, nil
}

// Assign establece (o quita, con nil) el voluntario del turno y limpia
// siempre el estado de rechazo previo. Registra el evento en el outbox
// dentro de la misma transacción.
func (r *ShiftRepository) Assign(ctx context.Context, shiftID uint64, volunteerID *uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shift model.Shift
		if err := tx.First(&shift, shiftID).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Shift{}).Where("id = ?", shiftID).
			Updates(map[string]any{
				"volunteer_id":     volunteerID,
				"rejection_reason": nil,
				"rejected_by":      nil,
			}).Error; err != nil {
			return err
		}

		eventType := "unassigned"
		if volunteerID != nil {
			eventType = "assigned"
		}
		return insertOutbox(tx, eventType, shiftID, volunteerID, nil)
	})
}

// Reject exige un voluntario asignado: lo desasigna y registra motivo y autor.
func (r *ShiftRepository) Reject(ctx context.Context, shiftID uint64, reason string) (*model.Shift, error) {
	var shift model.Shift
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&shift, shiftID).Error; err != nil {
			return err
		}
		if shift.VolunteerID == nil {
			return ErrShiftUnassigned
		}

		rejecter := *shift.VolunteerID
		if err := tx.Model(&model.Shift{}).Where("id = ?", shiftID).
			Updates(map[string]any{
				"volunteer_id":     nil,
				"rejection_reason": reason,
				"rejected_by":      rejecter,
			}).Error; err != nil {
			return err
		}

		shift.VolunteerID = nil
		shift.RejectionReason = &reason
		shift.RejectedBy = &rejecter

		return insertOutbox(tx, "rejected", shiftID, &rejecter, &reason)
	})
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func insertOutbox(tx *gorm.DB, eventType string, shiftID uint64, volunteerID *uint64, reason *string) error {
	payload, err := json.Marshal(map[string]any{
		"event":        eventType,
		"shift_id":     shiftID,
		"volunteer_id": volunteerID,
		"reason":       reason,
	})
	if err != nil {
		return err
	}
	return tx.Create(&model.ShiftOutbox{
		EventType: eventType,
		ShiftID:   shiftID,
		Payload:   string(payload),
	}).Error
}
