package mysql

import (
	"testing"

	"Asamblea_Hub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserDelete_CascadesReferences(t *testing.T) {
	db := newTestDB(t)
	repo := &UserRepository{DB: db}

	ana := seedUser(t, db, 2, "Ana García", "ana@example.com")
	seedUser(t, db, 3, "Carlos Rodriguez", "carlos@example.com")
	assembly := seedAssembly(t, db, 1, "Asamblea General", mustTime(t, "2024-10-26T00:00:00"), mustTime(t, "2024-10-27T23:59:59"))
	position := seedPosition(t, db, 1, assembly.ID, "Registro y Bienvenida")

	require.NoError(t, db.Create(&model.AssemblyVolunteer{AssemblyID: assembly.ID, VolunteerID: ana.ID}).Error)
	require.NoError(t, db.Create(&model.Shift{
		ID: 1, PositionID: position.ID, VolunteerID: &ana.ID, AssemblyID: assembly.ID,
		StartTime: mustTime(t, "2024-10-26T08:00:00"), EndTime: mustTime(t, "2024-10-26T12:00:00"),
	}).Error)
	require.NoError(t, db.Create(&model.Conversation{ID: 1, Name: "Equipo"}).Error)
	require.NoError(t, db.Create(&model.ConversationParticipant{ConversationID: 1, UserID: ana.ID}).Error)
	require.NoError(t, db.Create(&model.ConversationParticipant{ConversationID: 1, UserID: 3}).Error)

	require.NoError(t, repo.Delete(ana.ID))

	_, err := repo.FindByID(ana.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var shift model.Shift
	require.NoError(t, db.First(&shift, 1).Error)
	assert.Nil(t, shift.VolunteerID)

	var links int64
	require.NoError(t, db.Model(&model.AssemblyVolunteer{}).Where("volunteer_id = ?", ana.ID).Count(&links).Error)
	assert.Zero(t, links)

	var participants []model.ConversationParticipant
	require.NoError(t, db.Find(&participants).Error)
	require.Len(t, participants, 1)
	assert.Equal(t, uint64(3), participants[0].UserID)
}

func TestUserDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &UserRepository{DB: db}

	assert.ErrorIs(t, repo.Delete(99), gorm.ErrRecordNotFound)
}

func TestUserUpdates_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &UserRepository{DB: db}

	err := repo.Updates(42, map[string]any{"name": "Nadie"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
