// Package api serves the employee REST API used by the console during
// development. Records are kept in a ports.EmployeeRepository.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/ports"
)

type Handler struct {
	repo ports.EmployeeRepository
	log  *slog.Logger
}

func New(repo ports.EmployeeRepository, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{repo: repo, log: log}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /employees", h.listEmployees)
	mux.HandleFunc("POST /employees", h.createEmployee)
	mux.HandleFunc("GET /employees/{id}", h.getEmployee)
	mux.HandleFunc("PUT /employees/{id}", h.updateEmployee)
	mux.HandleFunc("DELETE /employees/{id}", h.deleteEmployee)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return mux
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		h.fail(w, "list employees", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.repo.GetEmployee(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, "get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	e, ok := decodeEmployee(w, r)
	if !ok {
		return
	}
	if err := h.repo.CreateEmployee(r.Context(), e); err != nil {
		h.fail(w, "create employee", err)
		return
	}
	h.log.Info("employee created", "id", e.ID)
	writeJSON(w, http.StatusCreated, e)
}

// updateEmployee replaces the record at the path id; any id in the body is
// ignored.
func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	e, ok := decodeEmployee(w, r)
	if !ok {
		return
	}
	e.ID = r.PathValue("id")
	if err := h.repo.UpdateEmployee(r.Context(), e); err != nil {
		h.fail(w, "update employee", err)
		return
	}
	h.log.Info("employee updated", "id", e.ID)
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.repo.DeleteEmployee(r.Context(), id); err != nil {
		h.fail(w, "delete employee", err)
		return
	}
	h.log.Info("employee deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ports.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.log.Error(op+" failed", "err", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func decodeEmployee(w http.ResponseWriter, r *http.Request) (*domain.Employee, bool) {
	var e domain.Employee
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&e); err != nil {
		http.Error(w, "invalid employee json: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	e.ID = ""
	return &e, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
