package mysql

import (
	"Asamblea_Hub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssemblyRepository struct {
	DB *gorm.DB
}

func (r *AssemblyRepository) Create(a *model.Assembly) error {
	return r.DB.Create(a).Error
}

func (r *AssemblyRepository) FindByID(id uint64) (*model.Assembly, error) {
	var assembly model.Assembly
	err := r.DB.First(&assembly, id).Error
	return &assembly, err
}

// List devuelve las asambleas ordenadas por fecha de inicio descendente.
func (r *AssemblyRepository) List() ([]model.Assembly, error) {
	var list []model.Assembly
	err := r.DB.Order("start_date desc").Find(&list).Error
	return list, err
}

func (r *AssemblyRepository) Updates(id uint64, fields map[string]any) error {
	if err := r.DB.First(&model.Assembly{}, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&model.Assembly{}).Where("id = ?", id).Updates(fields).Error
}

func (r *AssemblyRepository) VolunteerIDs(assemblyID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.AssemblyVolunteer{}).
		Where("assembly_id = ?", assemblyID).
		Order("volunteer_id").
		Pluck("volunteer_id", &ids).Error
	return ids, err
}

// Associate añade un voluntario a la asamblea de forma idempotente.
func (r *AssemblyRepository) Associate(assemblyID, volunteerID uint64) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AssemblyVolunteer{AssemblyID: assemblyID, VolunteerID: volunteerID}).Error
}

// ReplaceVolunteers sustituye la lista completa de voluntarios asociados.
func (r *AssemblyRepository) ReplaceVolunteers(assemblyID uint64, volunteerIDs []uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assembly_id = ?", assemblyID).
			Delete(&model.AssemblyVolunteer{}).Error; err != nil {
			return err
		}
		for _, vid := range volunteerIDs {
			av := model.AssemblyVolunteer{AssemblyID: assemblyID, VolunteerID: vid}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&av).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListPopulated une cada asamblea con sus voluntarios para el panel.
func (r *AssemblyRepository) ListPopulated() ([]model.PopulatedAssembly, error) {
	assemblies, err := r.List()
	if err != nil {
		return nil, err
	}

	populated := make([]model.PopulatedAssembly, 0, len(assemblies))
	for _, a := range assemblies {
		ids, err := r.VolunteerIDs(a.ID)
		if err != nil {
			return nil, err
		}

		var volunteers []model.User
		if len(ids) > 0 {
			if err := r.DB.Where("id IN ?", ids).Order("id").Find(&volunteers).Error; err != nil {
				return nil, err
			}
		}

		populated = append(populated, model.PopulatedAssembly{
			Assembly:     a,
			VolunteerIDs: ids,
			Volunteers:   volunteers,
		})
	}
	return populated, nil
}
