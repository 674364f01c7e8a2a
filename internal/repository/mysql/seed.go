package mysql

import (
	"time"

	"Asamblea_Hub/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

func ptr[T any](v T) *T { return &v }

// Seed carga los datos iniciales si la tabla de usuarios está vacía.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("adminpassword"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	volunteerHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []model.User{
			{ID: 1, Name: "Admin User", Phone: "123-456-7890", Email: "admin@example.com", Role: model.RoleAdmin, PasswordHash: string(adminHash)},
			{ID: 2, Name: "Ana García", Phone: "234-567-8901", Email: "ana@example.com", Role: model.RoleVolunteer, PasswordHash: string(volunteerHash)},
			{ID: 3, Name: "Carlos Rodriguez", Phone: "345-678-9012", Email: "carlos@example.com", Role: model.RoleVolunteer, PasswordHash: string(volunteerHash)},
			{ID: 4, Name: "Beatriz López", Phone: "456-789-0123", Email: "beatriz@example.com", Role: model.RoleVolunteer, PasswordHash: string(volunteerHash)},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		assemblies := []model.Assembly{
			{ID: 1, Title: "Asamblea General Anual 2024", StartDate: date("2024-10-26T00:00:00"), EndDate: date("2024-10-27T23:59:59"), Type: model.AssemblyRegional},
			{ID: 2, Title: "Encuentro de Verano", StartDate: date("2024-08-15T00:00:00"), EndDate: date("2024-08-15T23:59:59"), Type: model.AssemblyCircuito},
		}
		if err := tx.Create(&assemblies).Error; err != nil {
			return err
		}

		links := []model.AssemblyVolunteer{
			{AssemblyID: 1, VolunteerID: 2},
			{AssemblyID: 1, VolunteerID: 3},
			{AssemblyID: 1, VolunteerID: 4},
			{AssemblyID: 2, VolunteerID: 2},
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		positions := []model.Position{
			{ID: 1, Name: "Registro y Bienvenida", Description: "Recibir a los asistentes y entregar materiales.", IconName: "Handshake", AssemblyID: 1},
			{ID: 2, Name: "Punto de Información", Description: "Resolver dudas y orientar a los participantes.", IconName: "MapPin", AssemblyID: 1},
			{ID: 3, Name: "Logística de Escenario", Description: "Apoyo en el montaje y desmontaje del escenario.", IconName: "ClipboardList", AssemblyID: 1},
			{ID: 4, Name: "Comunicación y Redes", Description: "Cubrir el evento en redes sociales.", IconName: "Megaphone", AssemblyID: 1},
			{ID: 5, Name: "Coordinación de Voluntarios", Description: "Gestionar equipos de voluntarios en el terreno.", IconName: "Users", AssemblyID: 1},
			{ID: 6, Name: "Atención a Ponentes", Description: "Asistir a los ponentes con sus necesidades.", IconName: "HeartHandshake", AssemblyID: 1},
			{ID: 7, Name: "Catering", Description: "Apoyo en la zona de comidas y bebidas.", IconName: "Utensils", AssemblyID: 1},
			{ID: 8, Name: "Control de Acceso", Description: "Verificar entradas y acreditaciones.", IconName: "Ticket", AssemblyID: 2},
		}
		if err := tx.Create(&positions).Error; err != nil {
			return err
		}

		shifts := []model.Shift{
			{ID: 1, PositionID: 1, VolunteerID: ptr(uint64(2)), StartTime: date("2024-10-26T08:00:00"), EndTime: date("2024-10-26T12:00:00"), AssemblyID: 1},
			{ID: 2, PositionID: 2, VolunteerID: ptr(uint64(3)), StartTime: date("2024-10-26T08:00:00"), EndTime: date("2024-10-26T12:00:00"), AssemblyID: 1},
			{ID: 3, PositionID: 3, VolunteerID: ptr(uint64(4)), StartTime: date("2024-10-26T09:00:00"), EndTime: date("2024-10-26T13:00:00"), AssemblyID: 1},
			{ID: 4, PositionID: 7, StartTime: date("2024-10-27T10:00:00"), EndTime: date("2024-10-27T14:00:00"), AssemblyID: 1},
			{ID: 5, PositionID: 1, StartTime: date("2024-10-27T12:00:00"), EndTime: date("2024-10-27T16:00:00"), AssemblyID: 1},
			{ID: 6, PositionID: 2, VolunteerID: ptr(uint64(2)), StartTime: date("2024-10-27T12:00:00"), EndTime: date("2024-10-27T16:00:00"), AssemblyID: 1},
			{ID: 7, PositionID: 8, StartTime: date("2024-08-15T13:00:00"), EndTime: date("2024-08-15T17:00:00"), AssemblyID: 2},
			{ID: 8, PositionID: 4, StartTime: date("2024-10-26T14:00:00"), EndTime: date("2024-10-26T18:00:00"), AssemblyID: 1,
				RejectionReason: ptr("Tengo otro compromiso"), RejectedBy: ptr(uint64(3))},
		}
		if err := tx.Create(&shifts).Error; err != nil {
			return err
		}

		conversations := []model.Conversation{
			{ID: 1, Name: "Equipo Asamblea 2024"},
			{ID: 2, Name: ""},
		}
		if err := tx.Create(&conversations).Error; err != nil {
			return err
		}

		participants := []model.ConversationParticipant{
			{ConversationID: 1, UserID: 1},
			{ConversationID: 1, UserID: 2},
			{ConversationID: 1, UserID: 3},
			{ConversationID: 1, UserID: 4},
			{ConversationID: 2, UserID: 1},
			{ConversationID: 2, UserID: 2},
		}
		if err := tx.Create(&participants).Error; err != nil {
			return err
		}

		messages := []model.Message{
			{ConversationID: 1, SenderID: 1, Text: "¡Bienvenidos al equipo! Aquí coordinamos los turnos de la asamblea.", Timestamp: date("2024-10-20T10:00:00")},
			{ConversationID: 1, SenderID: 2, Text: "Gracias, ya revisé mi turno del sábado.", Timestamp: date("2024-10-20T10:05:00")},
			{ConversationID: 2, SenderID: 2, Text: "Hola, ¿puedo cambiar mi turno de registro?", Timestamp: date("2024-10-21T09:30:00")},
		}
		return tx.Create(&messages).Error
	})
}
