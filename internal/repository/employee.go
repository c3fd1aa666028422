package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/staff-api/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateEmployee inserts a new employee row and returns the persisted record
// with its server-assigned identifier.
func (r *Repository) CreateEmployee(ctx context.Context, name string) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_employee").Observe(duration)
	}()
	query := `INSERT INTO employees (name) VALUES ($1) RETURNING id, name`

	err := r.db.QueryRow(ctx, query, name).Scan(&result.ID, &result.Name)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
// It returns ErrEmployeeNotFound when no row matches.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()
	query := `SELECT id, name FROM employees WHERE id=$1`

	err := r.db.QueryRow(ctx, query, identifier).Scan(&result.ID, &result.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// EnsureSchema creates the employees table and its indexes if they do not exist.
// It never drops or alters existing objects, so running it against a populated
// database is safe.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("ensure_schema").Observe(duration)
	}()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_employees_name ON employees (name);`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}

// Ping performs a single trivial round trip to confirm the database is alive.
func (r *Repository) Ping(ctx context.Context) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("ping").Observe(duration)
	}()

	var one int
	if err := r.db.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}
