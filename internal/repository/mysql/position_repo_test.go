package mysql

import (
	"testing"

	"Asamblea_Hub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPositionDelete_TagsAffectedShifts(t *testing.T) {
	db := newTestDB(t)
	repo := &PositionRepository{DB: db}

	ana := seedUser(t, db, 2, "Ana García", "ana@example.com")
	assembly := seedAssembly(t, db, 1, "Asamblea General", mustTime(t, "2024-10-26T00:00:00"), mustTime(t, "2024-10-27T23:59:59"))
	doomed := seedPosition(t, db, 1, assembly.ID, "Catering")
	kept := seedPosition(t, db, 2, assembly.ID, "Registro y Bienvenida")

	require.NoError(t, db.Create(&model.Shift{
		ID: 1, PositionID: doomed.ID, VolunteerID: &ana.ID, AssemblyID: assembly.ID,
		StartTime: mustTime(t, "2024-10-26T08:00:00"), EndTime: mustTime(t, "2024-10-26T12:00:00"),
	}).Error)
	require.NoError(t, db.Create(&model.Shift{
		ID: 2, PositionID: kept.ID, VolunteerID: &ana.ID, AssemblyID: assembly.ID,
		StartTime: mustTime(t, "2024-10-26T12:00:00"), EndTime: mustTime(t, "2024-10-26T16:00:00"),
	}).Error)

	require.NoError(t, repo.Delete(doomed.ID))

	_, err := repo.FindByID(doomed.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var affected model.Shift
	require.NoError(t, db.First(&affected, 1).Error)
	assert.Nil(t, affected.VolunteerID)
	require.NotNil(t, affected.RejectionReason)
	assert.Equal(t, positionDeletedNote, *affected.RejectionReason)

	var untouched model.Shift
	require.NoError(t, db.First(&untouched, 2).Error)
	assert.NotNil(t, untouched.VolunteerID)
	assert.Nil(t, untouched.RejectionReason)
}

func TestPositionDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &PositionRepository{DB: db}

	assert.ErrorIs(t, repo.Delete(99), gorm.ErrRecordNotFound)
}
