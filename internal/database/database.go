package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emilythestrangee/like-me/backend/internal/models"
)

// Row is one result row keyed by column name.
type Row = map[string]any

// Querier executes a single parameterized statement. Placeholders are positional ($1, $2, ...).
type Querier interface {
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
}

// Service represents a service that interacts with a database.
type Service interface {
	Querier

	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error
	GetDB() *gorm.DB
}

// QueryError wraps every failure coming back from the store.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

type Options struct {
	// MaxConns bounds the number of statements in flight; zero keeps the driver default.
	MaxConns int32
	// StatementTimeout is sent as postgres statement_timeout; zero keeps the server default.
	StatementTimeout time.Duration
}

type service struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
	db    *gorm.DB
	name  string
}

// Open connects to postgres, verifies the connection and migrates the posts table.
func Open(ctx context.Context, dsn string, opts Options) (Service, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("error parsing database config: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.StatementTimeout > 0 {
		cfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(opts.StatementTimeout.Milliseconds(), 10)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	// Configure GORM logger
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// gorm shares the pgx pool so the connection limit covers both
	sqlDB := stdlib.OpenDBFromPool(pool)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("error opening gorm: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&models.Post{}); err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	log.Println("✅ Database migrations completed")

	return &service{
		pool:  pool,
		sqlDB: sqlDB,
		db:    db,
		name:  cfg.ConnConfig.Database,
	}, nil
}

// Query runs one statement on a pooled connection. The connection goes back to the pool
// once the rows are collected, whether or not the statement failed.
func (s *service) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	result, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	return result, nil
}

func (s *service) GetDB() *gorm.DB {
	return s.db
}

// Health checks the health of the database connection by pinging the database.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := make(map[string]string)

	// Ping the database
	if err := s.pool.Ping(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	// Database is up
	stats["status"] = "up"
	stats["message"] = "It's healthy"

	poolStats := s.pool.Stat()
	stats["max_connections"] = fmt.Sprintf("%d", poolStats.MaxConns())
	stats["open_connections"] = fmt.Sprintf("%d", poolStats.TotalConns())
	stats["in_use"] = fmt.Sprintf("%d", poolStats.AcquiredConns())
	stats["idle"] = fmt.Sprintf("%d", poolStats.IdleConns())
	stats["wait_count"] = fmt.Sprintf("%d", poolStats.EmptyAcquireCount())

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	err := s.sqlDB.Close()
	s.pool.Close()

	log.Printf("Disconnected from database: %s", s.name)
	return err
}
