package repository

import (
	"context"
	"errors"

	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/Houeta/staff-api/internal/models"
)

// ErrEmployeeNotFound is returned when a lookup by primary key matches no row.
var ErrEmployeeNotFound = errors.New("employee not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, name string) (models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}
