package mysql

import (
	"Asamblea_Hub/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) Updates(id uint64, fields map[string]any) error {
	if err := r.DB.First(&model.User{}, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

// Delete elimina al usuario y limpia sus referencias: lo desasigna de los
// turnos, lo quita de las listas de voluntarios de asambleas y de las
// conversaciones en las que participa.
func (r *UserRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&model.Shift{}).
			Where("volunteer_id = ?", id).
			Update("volunteer_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("volunteer_id = ?", id).
			Delete(&model.AssemblyVolunteer{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", id).
			Delete(&model.ConversationParticipant{}).Error
	})
}
