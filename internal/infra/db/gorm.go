package db

import (
	"app/internal/domain/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBファイルに接続して *gorm.DB を返す。
// debug のときだけSQLをログに出す。
func Connect(path string, debug bool) (*gorm.DB, error) {
	cfg := &gorm.Config{}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}
	return gorm.Open(sqlite.Open(path), cfg)
}

// Migrate は全テーブルを作成する。
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Review{},
		&model.Feedback{},
		&model.Order{},
		&model.OrderItem{},
	)
}
