package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Houeta/staff-api/internal/lib/logger/sl"
	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/Houeta/staff-api/internal/models"
	"github.com/Houeta/staff-api/internal/repository"
	"github.com/gin-gonic/gin"
)

// EmployeeStore represents the persistence operations the handlers need.
type EmployeeStore interface {
	CreateEmployee(ctx context.Context, name string) (models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
}

type EmployeeHandler struct {
	store   EmployeeStore
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewEmployeeHandler(store EmployeeStore, mtr *metrics.Metrics, log *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{store: store, metrics: mtr, log: log}
}

type createEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
}

// Root returns a static informational message. No database access.
func (h *EmployeeHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "staff-api is running. Check /health."})
}

// Create inserts one employee and returns the persisted record. Binding
// rejects a missing or empty name before any handler logic runs.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "name is required"})
		return
	}

	employee, err := h.store.CreateEmployee(c.Request.Context(), req.Name)
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "Failed to create employee", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	h.metrics.EmployeesCreated.Inc()
	c.JSON(http.StatusCreated, employee)
}

// GetByID looks up an employee by primary key. The path parameter must be a
// positive integer.
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	identifier, err := strconv.Atoi(c.Param("id"))
	if err != nil || identifier <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid employee id"})
		return
	}

	employee, err := h.store.GetEmployeeByID(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Employee not found"})
			return
		}
		h.log.ErrorContext(c.Request.Context(), "Failed to get employee", "id", identifier, sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, employee)
}
