package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewPostgresConnection opens a GORM connection using the configured
// database URL. Query logging stays off outside development.
func NewPostgresConnection(databaseURL, environment string) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if environment == "development" {
		logLevel = gormlogger.Warn
	}

	return gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
}
