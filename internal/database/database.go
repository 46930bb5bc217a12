package database

import (
	"fmt"
	"time"

	"fitness_backend/internal/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Options - параметры подключения
type Options struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	Logger       gormlogger.Interface
	// Attempts - сколько раз пробовать подключиться (postgres/mysql в docker стартуют не сразу)
	Attempts int
}

// Dialector выбирает драйвер GORM по имени
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "postgresql":
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite, "sqlite3", "":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// Open подключается к БД с повторными попытками и проверяет соединение
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := Dialector(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	gormCfg := &gorm.Config{
		Logger:         opts.Logger,
		TranslateError: true,
	}

	var db *gorm.DB
	for i := 1; i <= attempts; i++ {
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				return nil, fmt.Errorf("failed to get *sql.DB: %w", dbErr)
			}
			if err = sqlDB.Ping(); err == nil {
				configurePool(db, opts)
				logger.Info("Database connected", "driver", dialector.Name(), "attempt", i)
				return db, nil
			}
		}

		logger.Warn("Database connection attempt failed", "attempt", i, "error", err)
		if i < attempts {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			if wait > 10*time.Second {
				wait = 10 * time.Second
			}
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func configurePool(db *gorm.DB, opts Options) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	// sqlite пишет одним соединением, иначе ловим "database is locked"
	if db.Dialector.Name() == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		return
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
}

// Ping - проверка для /api/health
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
