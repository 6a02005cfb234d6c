package console_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/csg33k/employee-manager/internal/domain"
)

var errBackend = errors.New("backend unavailable")

type call struct {
	op string
	id string
	e  domain.Employee
}

// fakeBackend keeps records in memory and records every request.
type fakeBackend struct {
	mu      sync.Mutex
	records []domain.Employee
	nextID  int
	calls   []call
	fail    map[string]bool
	// gate, when set, blocks CreateEmployee until it is closed.
	gate    chan struct{}
	entered chan struct{}
}

func newFakeBackend(records ...domain.Employee) *fakeBackend {
	return &fakeBackend{records: records, nextID: 100, fail: map[string]bool{}}
}

func (f *fakeBackend) record(c call) error {
	f.calls = append(f.calls, c)
	if f.fail[c.op] {
		return errBackend
	}
	return nil
}

func (f *fakeBackend) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{op: "list"}); err != nil {
		return nil, err
	}
	return append([]domain.Employee(nil), f.records...), nil
}

func (f *fakeBackend) CreateEmployee(ctx context.Context, e domain.Employee) error {
	if f.gate != nil {
		close(f.entered)
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{op: "create", e: e}); err != nil {
		return err
	}
	f.nextID++
	e.ID = fmt.Sprint(f.nextID)
	f.records = append(f.records, e)
	return nil
}

func (f *fakeBackend) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{op: "update", id: e.ID, e: e}); err != nil {
		return err
	}
	for i := range f.records {
		if f.records[i].ID == e.ID {
			f.records[i] = e
		}
	}
	return nil
}

func (f *fakeBackend) DeleteEmployee(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{op: "delete", id: id}); err != nil {
		return err
	}
	kept := f.records[:0]
	for _, e := range f.records {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.records = kept
	return nil
}

func (f *fakeBackend) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		out = append(out, c.op)
	}
	return out
}

func (f *fakeBackend) reset() {
	f.mu.Lock()
	f.calls = nil
	f.mu.Unlock()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
