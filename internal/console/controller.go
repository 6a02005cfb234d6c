package console

import (
	"context"
	"log/slog"
	"sync"

	"github.com/csg33k/employee-manager/internal/domain"
)

// View is a consistent snapshot of everything the page renders.
type View struct {
	Employees []domain.Employee
	Form      domain.FormState
	// Errors is only populated in create mode.
	Errors domain.ValidationErrors
}

// Controller owns the form state and drives the Store. The lock guards form
// state only; it is never held across a backend call, so overlapping submits
// are possible and the last refresh to land wins.
type Controller struct {
	store *Store
	log   *slog.Logger

	mu     sync.Mutex
	form   domain.FormState
	errors domain.ValidationErrors
	// draft is the create-mode record parked while a selection is edited.
	draft domain.Employee
}

func NewController(store *Store, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{store: store, log: log, form: domain.Creating(domain.Employee{})}
}

// Mount starts a fresh page: an empty draft in create mode, no errors, and
// one fetch of the list.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	c.form = domain.Creating(domain.Employee{})
	c.draft = domain.Employee{}
	c.errors = domain.ValidationErrors{}
	c.mu.Unlock()
	c.store.FetchAll(ctx)
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View{Employees: c.store.Employees(), Form: c.form}
	if c.form.Mode() == domain.ModeCreate {
		v.Errors = c.errors
	}
	return v
}

// SetField edits one field of whichever record the form is bound to.
func (c *Controller) SetField(field, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Set(field, value)
}

// Select binds the form to a copy of the listed employee with the given id.
// Validation errors are discarded on the mode switch.
func (c *Controller) Select(id string) bool {
	e, ok := c.store.Find(id)
	if !ok {
		c.log.Warn("select unknown employee", "id", id)
		return false
	}
	c.mu.Lock()
	if c.form.Mode() == domain.ModeCreate {
		c.draft = c.form.Record()
	}
	c.form = domain.Editing(e)
	c.errors = domain.ValidationErrors{}
	c.mu.Unlock()
	return true
}

// Submit validates and creates the draft, or updates the selected copy
// without validation. It reports whether a backend call succeeded.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	form := c.form
	switch form.Mode() {
	case domain.ModeCreate:
		errs, ok := domain.Validate(form.Record())
		c.errors = errs
		c.mu.Unlock()
		if !ok {
			c.log.Debug("draft rejected by validation", "errors", errs)
			return false
		}
		if !c.store.Create(ctx, form.Record()) {
			return false
		}
		// A record selected while the request was in flight stays selected;
		// only the draft is reset.
		c.mu.Lock()
		if c.form.Mode() == domain.ModeCreate {
			c.form = domain.Creating(domain.Employee{})
		}
		c.draft = domain.Employee{}
		c.errors = domain.ValidationErrors{}
		c.mu.Unlock()
		return true
	case domain.ModeEdit:
		c.mu.Unlock()
		if !c.store.Update(ctx, form.Record()) {
			return false
		}
		c.mu.Lock()
		c.form = domain.Creating(domain.Employee{})
		c.draft = domain.Employee{}
		c.errors = domain.ValidationErrors{}
		c.mu.Unlock()
		return true
	default:
		c.mu.Unlock()
		return false
	}
}

// Delete removes the selected record and returns to the parked draft. It is
// a no-op in create mode.
func (c *Controller) Delete(ctx context.Context) bool {
	c.mu.Lock()
	id := c.form.SelectedID()
	c.mu.Unlock()
	if id == "" {
		return false
	}
	if !c.store.Delete(ctx, id) {
		return false
	}
	c.mu.Lock()
	c.form = domain.Creating(c.draft)
	c.mu.Unlock()
	return true
}
