package storage

import (
	"os"
	"sync"

	"planboard-backend/internal/config"
	"planboard-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the process-wide database handle. It is opened on first
// use and reused by every repository; Close tears it down at shutdown.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func Close() error {
	if db == nil {
		return nil
	}

	sqlDb, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDb.Close()
}

func connect() {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         gorm_logger.Default.LogMode(gorm_logger.Silent),
	}

	var err error
	if config.GetEnv().IsTesting {
		// In-memory database shared across the test binary's connections
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormConfig)
	} else {
		db, err = gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), gormConfig)
	}

	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if config.GetEnv().IsTesting {
		if err := migrateTestDb(db); err != nil {
			log.Error("Failed to migrate test database", "error", err)
			os.Exit(1)
		}
	}
}
