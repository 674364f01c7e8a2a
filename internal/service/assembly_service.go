package service

import (
	"errors"
	"time"

	"Asamblea_Hub/internal/model"
	"Asamblea_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var (
	ErrAssemblyNotFound = errors.New("No se pudo encontrar la asamblea.")
	ErrAssemblyDates    = errors.New("La fecha de fin debe ser posterior o igual a la de inicio.")
	ErrInvalidDate      = errors.New("Datos no válidos.")
)

type AssemblyService struct {
	repo *mysql.AssemblyRepository
}

func NewAssemblyService(db *gorm.DB) *AssemblyService {
	return &AssemblyService{
		repo: &mysql.AssemblyRepository{DB: db},
	}
}

func (s *AssemblyService) List() ([]model.Assembly, error) {
	return s.repo.List()
}

func (s *AssemblyService) ListPopulated() ([]model.PopulatedAssembly, error) {
	return s.repo.ListPopulated()
}

func (s *AssemblyService) Get(id uint64) (*model.Assembly, error) {
	assembly, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssemblyNotFound
	}
	return assembly, err
}

func (s *AssemblyService) Add(title, startDate, endDate, assemblyType string) (*model.Assembly, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	if assemblyType == "" {
		assemblyType = model.AssemblyRegional
	}
	assembly := &model.Assembly{
		Title:     title,
		StartDate: start,
		EndDate:   end,
		Type:      assemblyType,
	}
	if err := s.repo.Create(assembly); err != nil {
		return nil, err
	}
	return assembly, nil
}

// Update reemplaza título, fechas y la lista de voluntarios asociados.
func (s *AssemblyService) Update(id uint64, title, startDate, endDate string, volunteerIDs []uint64) error {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return err
	}

	err = s.repo.Updates(id, map[string]any{
		"title":      title,
		"start_date": start,
		"end_date":   end,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAssemblyNotFound
	}
	if err != nil {
		return err
	}

	if volunteerIDs == nil {
		volunteerIDs = []uint64{}
	}
	return s.repo.ReplaceVolunteers(id, volunteerIDs)
}

func (s *AssemblyService) AssociateVolunteer(assemblyID, volunteerID uint64) error {
	if _, err := s.Get(assemblyID); err != nil {
		return err
	}
	return s.repo.Associate(assemblyID, volunteerID)
}

// parseDateRange valida el formato y el orden de las fechas del formulario.
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrAssemblyDates
	}
	return start, end, nil
}
