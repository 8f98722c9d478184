package dao

import (
	"context"
	"testing"

	"Blog/config"
	"Blog/models"
	"Blog/pkg/database"
	"Blog/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 内存 SQLite，单连接保证所有查询落在同一个库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Database{
		Driver:       config.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedPost(t *testing.T, db *gorm.DB, author string) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:          "hello",
		Body:           "world",
		AuthorUsername: author,
		PostDatetime:   utils.Now(),
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
