package service

import (
	"testing"

	"mediahub/internal/http-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Film{},
		&models.Book{},
		&models.Music{},
		&models.Feedback{},
	))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
