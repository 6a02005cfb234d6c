// Package console holds the employee list and the form state behind the web
// console. Backend failures are logged and never surfaced to the user.
package console

import (
	"context"
	"log/slog"
	"sync"

	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/ports"
)

// Store is the in-memory employee list and the boundary to the backend.
// Every successful mutation is followed by a full refresh instead of a local
// patch.
type Store struct {
	backend ports.EmployeeBackend
	log     *slog.Logger

	mu        sync.RWMutex
	employees []domain.Employee
}

func NewStore(backend ports.EmployeeBackend, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{backend: backend, log: log}
}

// Employees returns a copy of the current list.
func (s *Store) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Employee(nil), s.employees...)
}

// Find returns the listed employee with the given id.
func (s *Store) Find(id string) (domain.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Employee{}, false
}

// FetchAll replaces the list with the backend's. On failure the previous
// list is kept.
func (s *Store) FetchAll(ctx context.Context) bool {
	list, err := s.backend.ListEmployees(ctx)
	if err != nil {
		s.log.Error("error fetching employees", "err", err)
		return false
	}
	s.mu.Lock()
	s.employees = list
	s.mu.Unlock()
	s.log.Debug("employees refreshed", "count", len(list))
	return true
}

// Create sends a draft to the backend and refreshes on success.
func (s *Store) Create(ctx context.Context, draft domain.Employee) bool {
	if err := s.backend.CreateEmployee(ctx, draft); err != nil {
		s.log.Error("error submitting employee", "op", "create", "err", err)
		return false
	}
	s.FetchAll(ctx)
	return true
}

// Update replaces a persisted record and refreshes on success.
func (s *Store) Update(ctx context.Context, record domain.Employee) bool {
	if err := s.backend.UpdateEmployee(ctx, record); err != nil {
		s.log.Error("error submitting employee", "op", "update", "id", record.ID, "err", err)
		return false
	}
	s.FetchAll(ctx)
	return true
}

// Delete removes a record and refreshes on success.
func (s *Store) Delete(ctx context.Context, id string) bool {
	if err := s.backend.DeleteEmployee(ctx, id); err != nil {
		s.log.Error("error deleting employee", "id", id, "err", err)
		return false
	}
	s.FetchAll(ctx)
	return true
}
