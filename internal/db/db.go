package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Querier runs parameterized statements. Placeholders are written as "?" and bound by
// the driver; values are never spliced into the statement text.
type Querier interface {
	Query(ctx context.Context, dest any, query string, args ...any) error
	Exec(ctx context.Context, query string, args ...any) (int64, error)
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	Logger          *zap.SugaredLogger
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string, cfg PoolConfig) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 newLogger(cfg.Logger, cfg.LogLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("get sql db conn: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &PostgresDB{
		DB: db,
	}, nil
}

// Query scans every row returned by query into dest, which must be a pointer to a
// struct or a slice of structs.
func (p *PostgresDB) Query(ctx context.Context, dest any, query string, args ...any) error {
	if err := p.DB.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

// Exec runs a statement that returns no rows and reports how many rows it touched.
func (p *PostgresDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tx := p.DB.WithContext(ctx).Exec(query, args...)
	if tx.Error != nil {
		return 0, fmt.Errorf("exec: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

// Transaction runs fn inside a single database transaction. The transaction commits
// when fn returns nil and rolls back when it returns an error or panics.
func (p *PostgresDB) Transaction(ctx context.Context, fn func(tx Querier) error) error {
	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresDB{DB: tx})
	})
	if err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	return nil
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (p *PostgresDB) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
