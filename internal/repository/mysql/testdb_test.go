package mysql

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"Asamblea_Hub/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB abre una base SQLite en memoria aislada por test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func seedUser(t *testing.T, db *gorm.DB, id uint64, name, email string) model.User {
	t.Helper()
	user := model.User{ID: id, Name: name, Email: email, Role: model.RoleVolunteer, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedAssembly(t *testing.T, db *gorm.DB, id uint64, title string, start, end time.Time) model.Assembly {
	t.Helper()
	assembly := model.Assembly{ID: id, Title: title, StartDate: start, EndDate: end, Type: model.AssemblyRegional}
	require.NoError(t, db.Create(&assembly).Error)
	return assembly
}

func seedPosition(t *testing.T, db *gorm.DB, id, assemblyID uint64, name string) model.Position {
	t.Helper()
	position := model.Position{ID: id, Name: name, Description: "d", IconName: "Users", AssemblyID: assemblyID}
	require.NoError(t, db.Create(&position).Error)
	return position
}
