package service

import (
	"errors"

	"Asamblea_Hub/internal/model"
	"Asamblea_Hub/internal/pkg"
	"Asamblea_Hub/internal/repository/mysql"
	"Asamblea_Hub/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrBadCredentials cubre tanto email desconocido como contraseña incorrecta.
var ErrBadCredentials = errors.New("Email o contraseña incorrectos.")

type AuthService struct {
	users    *mysql.UserRepository
	sessions *redis.SessionRepository
	jwt      *pkg.JWTManager
}

func NewAuthService(db *gorm.DB, sessions *redis.SessionRepository, jwt *pkg.JWTManager) *AuthService {
	return &AuthService{
		users:    &mysql.UserRepository{DB: db},
		sessions: sessions,
		jwt:      jwt,
	}
}

func (s *AuthService) Login(email, password string) (*model.User, *pkg.Pair, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, nil, ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrBadCredentials
	}

	pair, err := s.jwt.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}
	if err := s.sessions.AddUserToken(user.ID, pair.AccessToken); err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *AuthService) Logout(userID uint64) error {
	return s.sessions.DeleteUserToken(userID)
}

// Refresh emite un nuevo par y reemplaza la sesión vigente.
func (s *AuthService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := s.jwt.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}

	claims, err := s.jwt.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}
