package database

import (
	"fmt"
	"log"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ShouldMigrate release 模式不自动迁移表结构，需通过 -migrate 显式开启；
// 其余模式启动即迁移
func ShouldMigrate(mode string, force bool) bool {
	return mode != "release" || force
}

func InitDB(cfg *config.DatabaseConfig, mode string, forceMigrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if ShouldMigrate(mode, forceMigrate) {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

// Migrate 同步全部模型结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Resource{},
		&model.LearningPath{},
		&model.PathNode{},
	)
}
