package service

import (
	"errors"

	"Asamblea_Hub/internal/model"
	"Asamblea_Hub/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Contraseña inicial de los voluntarios dados de alta por un administrador.
const defaultVolunteerPassword = "password"

var ErrUserNotFound = errors.New("No se pudo encontrar al usuario.")

type UserService struct {
	repo *mysql.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo: &mysql.UserRepository{DB: db},
	}
}

func (s *UserService) List() ([]model.User, error) {
	return s.repo.List()
}

func (s *UserService) Get(id uint64) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) AddVolunteer(name, email, phone, role string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultVolunteerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateVolunteer(id uint64, name, email, phone, role string) error {
	err := s.repo.Updates(id, map[string]any{
		"name":  name,
		"email": email,
		"phone": phone,
		"role":  role,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

// UpdateProfile actualiza los datos de contacto del propio usuario y
// devuelve el registro actualizado.
func (s *UserService) UpdateProfile(id uint64, name, email, phone string) (*model.User, error) {
	err := s.repo.Updates(id, map[string]any{
		"name":  name,
		"email": email,
		"phone": phone,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *UserService) Delete(id uint64) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
