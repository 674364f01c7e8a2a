package mysql

import (
	"fmt"

	"Asamblea_Hub/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB abre la base según el driver configurado: MySQL en despliegue,
// SQLite embebida para desarrollo y pruebas.
func InitDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate crea las tablas de todas las entidades.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Position{},
		&model.Assembly{},
		&model.AssemblyVolunteer{},
		&model.Shift{},
		&model.ShiftOutbox{},
		&model.Conversation{},
		&model.ConversationParticipant{},
		&model.Message{},
	)
}
