package server_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/Houeta/staff-api/internal/models"
	"github.com/Houeta/staff-api/internal/repository"
	"github.com/Houeta/staff-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// mockStore is an in-memory EmployeeStore assigning sequential IDs.
type mockStore struct {
	employees map[int]models.Employee
	nextID    int
	err       error
}

func newMockStore() *mockStore {
	return &mockStore{employees: make(map[int]models.Employee)}
}

func (m *mockStore) CreateEmployee(_ context.Context, name string) (models.Employee, error) {
	if m.err != nil {
		return models.Employee{}, m.err
	}
	m.nextID++
	employee := models.Employee{ID: m.nextID, Name: name}
	m.employees[employee.ID] = employee
	return employee, nil
}

func (m *mockStore) GetEmployeeByID(_ context.Context, identifier int) (models.Employee, error) {
	if m.err != nil {
		return models.Employee{}, m.err
	}
	employee, ok := m.employees[identifier]
	if !ok {
		return models.Employee{}, repository.ErrEmployeeNotFound
	}
	return employee, nil
}

func newTestRouter(store server.EmployeeStore, pinger server.DBPinger) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	return server.NewRouter(logger, store, pinger, metrics.NewMetrics(reg), reg)
}

func TestRoot(t *testing.T) {
	router := newTestRouter(newMockStore(), &MockDBPinger{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "staff-api is running")
}

func TestCreateEmployee(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		router := newTestRouter(newMockStore(), &MockDBPinger{})

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"Alice"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.JSONEq(t, `{"id":1,"name":"Alice"}`, rr.Body.String())
	})

	t.Run("missing name", func(t *testing.T) {
		router := newTestRouter(newMockStore(), &MockDBPinger{})

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newTestRouter(newMockStore(), &MockDBPinger{})

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("database error", func(t *testing.T) {
		store := newMockStore()
		store.err = errors.New("mock db error")
		router := newTestRouter(store, &MockDBPinger{})

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"Alice"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetEmployee(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := newMockStore()
		_, err := store.CreateEmployee(context.Background(), "Alice")
		require.NoError(t, err)
		router := newTestRouter(store, &MockDBPinger{})

		req := httptest.NewRequest(http.MethodGet, "/employees/1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.JSONEq(t, `{"id":1,"name":"Alice"}`, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(newMockStore(), &MockDBPinger{})

		req := httptest.NewRequest(http.MethodGet, "/employees/999", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		require.JSONEq(t, `{"detail":"Employee not found"}`, rr.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		router := newTestRouter(newMockStore(), &MockDBPinger{})

		for _, path := range []string{"/employees/abc", "/employees/0", "/employees/-1"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code, "path %s", path)
		}
	})
}

// TestCreateThenGet verifies that a created employee is readable under the
// returned identifier with the same name.
func TestCreateThenGet(t *testing.T) {
	router := newTestRouter(newMockStore(), &MockDBPinger{})

	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.JSONEq(t, `{"id":1,"name":"Alice"}`, rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/employees/1", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"id":1,"name":"Alice"}`, rr.Body.String())
}
