package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Blog/config"
	"Blog/models"
	"Blog/pkg/log"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接，cleanup 负责关闭连接池
func NewDB(conf *config.Config) (*gorm.DB, func(), error) {
	db, err := Open(conf.Database)
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, nil, err
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.L.Info("database closed")
	}
	return db, cleanup, nil
}

// Open 按 driver 打开 gorm 连接并设置连接池
func Open(conf *config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverSQLite:
		if conf.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(conf.Path), 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		dialector = sqlite.Open(conf.Path)
	case config.DriverMySQL, "":
		dsn, err := conf.Dsn()
		if err != nil {
			return nil, err
		}
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	level := logger.Silent
	if conf.LogSQL {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	if conf.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)
	}
	return db, nil
}

// Migrate 建表
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostReaction{},
		&models.CommentReaction{},
	)
}

// Ping 检查数据库是否可用
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
