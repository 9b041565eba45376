package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Quuxplusone/xword/internal/models"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Store holds the service's persistence handles: postgres for the fill
// history and redis for the rate limiter.
type Store struct {
	DB    *sql.DB
	Redis *redis.Client
}

func New(postgresURL, redisURL string) (*Store, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

func (s *Store) Close() error {
	if err := s.DB.Close(); err != nil {
		return err
	}
	return s.Redis.Close()
}

// InitSchema creates the fill history table.
func (s *Store) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS fills (
		id VARCHAR(36) PRIMARY KEY,
		grid JSONB NOT NULL,
		solution_count INTEGER NOT NULL,
		elapsed_ms BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_fills_created_at ON fills(created_at DESC);
	`
	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveFill records one completed fill request.
func (s *Store) SaveFill(rec *models.FillRecord) error {
	gridJSON, err := json.Marshal(rec.Grid)
	if err != nil {
		return fmt.Errorf("failed to marshal grid: %w", err)
	}
	_, err = s.DB.Exec(
		`INSERT INTO fills (id, grid, solution_count, elapsed_ms, created_at) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, gridJSON, rec.SolutionCount, rec.ElapsedMs, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save fill: %w", err)
	}
	return nil
}

// RecentFills returns the newest fill records, newest first.
func (s *Store) RecentFills(limit int) ([]models.FillRecord, error) {
	rows, err := s.DB.Query(
		`SELECT id, grid, solution_count, elapsed_ms, created_at FROM fills ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query fills: %w", err)
	}
	defer rows.Close()

	var recs []models.FillRecord
	for rows.Next() {
		var rec models.FillRecord
		var gridJSON []byte
		if err := rows.Scan(&rec.ID, &gridJSON, &rec.SolutionCount, &rec.ElapsedMs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fill: %w", err)
		}
		if err := json.Unmarshal(gridJSON, &rec.Grid); err != nil {
			return nil, fmt.Errorf("failed to unmarshal grid: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
