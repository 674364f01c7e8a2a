package mysql

import (
	"Asamblea_Hub/internal/model"

	"gorm.io/gorm"
)

const positionDeletedNote = "Posición eliminada"

type PositionRepository struct {
	DB *gorm.DB
}

func (r *PositionRepository) Create(p *model.Position) error {
	return r.DB.Create(p).Error
}

func (r *PositionRepository) FindByID(id uint64) (*model.Position, error) {
	var position model.Position
	err := r.DB.First(&position, id).Error
	return &position, err
}

func (r *PositionRepository) List() ([]model.Position, error) {
	var list []model.Position
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *PositionRepository) Updates(id uint64, fields map[string]any) error {
	if err := r.DB.First(&model.Position{}, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&model.Position{}).Where("id = ?", id).Updates(fields).Error
}

// Delete elimina la posición. Los turnos que la referencian quedan sin
// voluntario y con una nota de rechazo que explica la baja.
func (r *PositionRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Position{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&model.Shift{}).
			Where("position_id = ?", id).
			Updates(map[string]any{
				"volunteer_id":     nil,
				"rejection_reason": positionDeletedNote,
			}).Error
	})
}
