package handlers_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	csvexport "github.com/csg33k/employee-manager/internal/adapters/csv"
	"github.com/csg33k/employee-manager/internal/adapters/pdf"
	"github.com/csg33k/employee-manager/internal/console"
	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/handlers"
)

type memBackend struct {
	mu      sync.Mutex
	records []domain.Employee
	seq     int
	ops     []string
}

func (m *memBackend) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "GET /employees")
	return append([]domain.Employee(nil), m.records...), nil
}

func (m *memBackend) CreateEmployee(ctx context.Context, e domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "POST /employees")
	m.seq++
	e.ID = fmt.Sprint(m.seq)
	m.records = append(m.records, e)
	return nil
}

func (m *memBackend) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "PUT /employees/"+e.ID)
	for i := range m.records {
		if m.records[i].ID == e.ID {
			m.records[i] = e
		}
	}
	return nil
}

func (m *memBackend) DeleteEmployee(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "DELETE /employees/"+id)
	var kept []domain.Employee
	for _, e := range m.records {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.records = kept
	return nil
}

func (m *memBackend) takeOps() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ops := m.ops
	m.ops = nil
	return ops
}

func setup(t *testing.T, records ...domain.Employee) (http.Handler, *memBackend) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	be := &memBackend{records: records, seq: 10}
	ctrl := console.NewController(console.NewStore(be, log), log)
	h := handlers.New(ctrl, log, pdf.New(""), csvexport.New())
	return h.Routes(), be
}

func do(t *testing.T, h http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex_MountFetchesList(t *testing.T) {
	h, be := setup(t, domain.Employee{ID: "1", Name: "Ada"})

	rec := do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, rec.Body.String(), "Ada")
	assert.Equal(t, []string{"GET /employees"}, be.takeOps())
}

func TestSubmit_InvalidDraftIsBlocked(t *testing.T) {
	h, be := setup(t)
	do(t, h, http.MethodGet, "/", nil)
	be.takeOps()

	rec := do(t, h, http.MethodPost, "/form/submit", url.Values{
		"name": {"Jo"}, "email": {"bad-email"}, "department": {"Eng"}, "company": {"Acme"}, "city": {"NYC"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email format")
	assert.NotContains(t, rec.Body.String(), "Name is required")
	assert.Empty(t, be.takeOps())
}

func TestSubmit_ValidDraftCreatesAndRefreshes(t *testing.T) {
	h, be := setup(t)
	do(t, h, http.MethodGet, "/", nil)
	be.takeOps()

	for field, v := range map[string]string{"name": "Jo", "email": "jo@acme.co", "department": "Eng", "company": "Acme", "city": "NYC"} {
		rec := do(t, h, http.MethodPost, "/form/fields/"+field, url.Values{field: {v}})
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
	rec := do(t, h, http.MethodPost, "/form/submit", url.Values{})
	assert.Equal(t, []string{"POST /employees", "GET /employees"}, be.takeOps())
	body := rec.Body.String()
	assert.Contains(t, body, "Add Employee")
	assert.Contains(t, body, "<h3>Jo</h3>")
	assert.Contains(t, body, `name="name" placeholder="Name" value=""`)
}

func TestSelectThenUpdate_SkipsValidation(t *testing.T) {
	h, be := setup(t, domain.Employee{ID: "1", Name: "X", Email: "x@y.io"})
	do(t, h, http.MethodGet, "/", nil)
	be.takeOps()

	rec := do(t, h, http.MethodPost, "/employees/1/select", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Edit Employee")

	rec = do(t, h, http.MethodPost, "/form/submit", url.Values{"name": {""}})
	assert.Equal(t, []string{"PUT /employees/1", "GET /employees"}, be.takeOps())
	assert.Contains(t, rec.Body.String(), "Add Employee")
	assert.Equal(t, "", be.records[0].Name)
}

func TestDeleteSelected(t *testing.T) {
	h, be := setup(t, domain.Employee{ID: "1", Name: "X"})
	do(t, h, http.MethodGet, "/", nil)
	do(t, h, http.MethodPost, "/employees/1/select", nil)
	be.takeOps()

	rec := do(t, h, http.MethodPost, "/form/delete", nil)
	assert.Equal(t, []string{"DELETE /employees/1", "GET /employees"}, be.takeOps())
	assert.Contains(t, rec.Body.String(), "Add Employee")
	assert.NotContains(t, rec.Body.String(), "<h3>X</h3>")
}

func TestSelectUnknownIs404(t *testing.T) {
	h, _ := setup(t)
	rec := do(t, h, http.MethodPost, "/employees/nope/select", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetUnknownFieldIs400(t *testing.T) {
	h, _ := setup(t)
	rec := do(t, h, http.MethodPost, "/form/fields/id", url.Values{"id": {"9"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportRoster(t *testing.T) {
	h, _ := setup(t, domain.Employee{ID: "1", Name: "Ada"})
	do(t, h, http.MethodGet, "/", nil)

	rec := do(t, h, http.MethodGet, "/export/roster.csv", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, rec.Body.String(), "1,Ada,,,,")

	rec = do(t, h, http.MethodGet, "/export/roster.pdf", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	rec = do(t, h, http.MethodGet, "/export/roster.xlsx", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIndex_ReloadResetsForm(t *testing.T) {
	h, _ := setup(t, domain.Employee{ID: "1", Name: "X"})
	do(t, h, http.MethodGet, "/", nil)
	do(t, h, http.MethodPost, "/employees/1/select", nil)

	rec := do(t, h, http.MethodGet, "/", nil)
	body := rec.Body.String()
	assert.Contains(t, body, "Add Employee")
	assert.NotContains(t, body, "Edit Employee")
	assert.NotContains(t, body, `hx-post="/form/delete"`)
}
