package database

import (
	"testing"

	"gamesync/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMigrate_EnforcesUniqueAppID(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: NewLogger()})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Game{}))
	assert.True(t, db.Migrator().HasColumn(&models.Game{}, "hltb_id"))

	appID := int64(620)
	require.NoError(t, db.Create(&models.Game{AppID: &appID, Name: "Portal 2"}).Error)
	assert.Error(t, db.Create(&models.Game{AppID: &appID, Name: "Portal 2 again"}).Error)

	// Rows keyed by name carry no appid and do not collide.
	require.NoError(t, db.Create(&models.Game{Name: "A"}).Error)
	require.NoError(t, db.Create(&models.Game{Name: "B"}).Error)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: NewLogger()})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
