package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to PostgreSQL when a DSN is given, otherwise to a local
// SQLite file, and migrates the schema. TranslateError is on so unique-index
// violations arrive as gorm.ErrDuplicatedKey regardless of driver.
func Open(databaseURL, sqlitePath string) (*gorm.DB, error) {
	config := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var (
		conn *gorm.DB
		err  error
	)
	if databaseURL != "" {
		conn, err = gorm.Open(postgres.Open(databaseURL), config)
	} else {
		conn, err = gorm.Open(sqlite.Open(sqlitePath), config)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := conn.AutoMigrate(&UserModel{}, &SubjectModel{}, &TeachingFacultyModel{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return conn, nil
}
