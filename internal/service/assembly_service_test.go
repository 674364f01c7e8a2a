package service

import (
	"testing"

	"Asamblea_Hub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblyAdd_ValidRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	assembly, err := svc.Add("Asamblea General Anual 2024", "2024-10-26", "2024-10-27", "regional")
	require.NoError(t, err)
	assert.Equal(t, "Asamblea General Anual 2024", assembly.Title)
	assert.Equal(t, model.AssemblyRegional, assembly.Type)
}

func TestAssemblyAdd_SameDayAllowed(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	// fin igual a inicio es válido: "posterior o igual"
	_, err := svc.Add("Encuentro de Verano", "2024-08-15", "2024-08-15", "circuito")
	require.NoError(t, err)
}

func TestAssemblyAdd_EndBeforeStart(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	_, err := svc.Add("Asamblea invertida", "2024-10-27", "2024-10-26", "")
	require.ErrorIs(t, err, ErrAssemblyDates)
	assert.EqualError(t, err, "La fecha de fin debe ser posterior o igual a la de inicio.")
}

func TestAssemblyAdd_BadDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	_, err := svc.Add("Asamblea", "26/10/2024", "27/10/2024", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAssemblyUpdate_ReplacesVolunteers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	seedUser(t, db, 2, "Ana García", "ana@example.com")
	seedUser(t, db, 3, "Carlos Rodriguez", "carlos@example.com")
	seedAssembly(t, db, 1, "Asamblea General", "2024-10-26T00:00:00", "2024-10-27T23:59:59")

	require.NoError(t, svc.AssociateVolunteer(1, 2))
	require.NoError(t, svc.Update(1, "Asamblea General", "2024-10-26", "2024-10-27", []uint64{3}))

	populated, err := svc.ListPopulated()
	require.NoError(t, err)
	require.Len(t, populated, 1)
	assert.Equal(t, []uint64{3}, populated[0].VolunteerIDs)
	require.Len(t, populated[0].Volunteers, 1)
	assert.Equal(t, "Carlos Rodriguez", populated[0].Volunteers[0].Name)
}

func TestAssemblyUpdate_ClearsVolunteersWithEmptyList(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	seedUser(t, db, 2, "Ana García", "ana@example.com")
	seedAssembly(t, db, 1, "Asamblea General", "2024-10-26T00:00:00", "2024-10-27T23:59:59")
	require.NoError(t, svc.AssociateVolunteer(1, 2))

	require.NoError(t, svc.Update(1, "Asamblea General", "2024-10-26", "2024-10-27", nil))

	populated, err := svc.ListPopulated()
	require.NoError(t, err)
	assert.Empty(t, populated[0].VolunteerIDs)
}

func TestAssemblyAssociate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	seedUser(t, db, 2, "Ana García", "ana@example.com")
	seedAssembly(t, db, 1, "Asamblea General", "2024-10-26T00:00:00", "2024-10-27T23:59:59")

	require.NoError(t, svc.AssociateVolunteer(1, 2))
	require.NoError(t, svc.AssociateVolunteer(1, 2))

	populated, err := svc.ListPopulated()
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, populated[0].VolunteerIDs)
}

func TestAssemblyAssociate_UnknownAssembly(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	err := svc.AssociateVolunteer(99, 2)
	assert.ErrorIs(t, err, ErrAssemblyNotFound)
}

func TestAssemblyList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssemblyService(db)

	seedAssembly(t, db, 1, "Encuentro de Verano", "2024-08-15T00:00:00", "2024-08-15T23:59:59")
	seedAssembly(t, db, 2, "Asamblea General", "2024-10-26T00:00:00", "2024-10-27T23:59:59")

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Asamblea General", list[0].Title)
}
