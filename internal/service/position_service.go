package service

import (
	"errors"

	"Asamblea_Hub/internal/model"
	"Asamblea_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

var ErrPositionNotFound = errors.New("No se pudo encontrar la posición.")

type PositionService struct {
	repo *mysql.PositionRepository
}

func NewPositionService(db *gorm.DB) *PositionService {
	return &PositionService{
		repo: &mysql.PositionRepository{DB: db},
	}
}

func (s *PositionService) List() ([]model.Position, error) {
	return s.repo.List()
}

func (s *PositionService) Add(name, description, iconName string, assemblyID uint64) (*model.Position, error) {
	position := &model.Position{
		Name:        name,
		Description: description,
		IconName:    iconName,
		AssemblyID:  assemblyID,
	}
	if err := s.repo.Create(position); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *PositionService) Update(id uint64, name, description, iconName string) error {
	err := s.repo.Updates(id, map[string]any{
		"name":        name,
		"description": description,
		"icon_name":   iconName,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPositionNotFound
	}
	return err
}

func (s *PositionService) Delete(id uint64) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPositionNotFound
	}
	return err
}
