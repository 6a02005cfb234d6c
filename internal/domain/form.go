package domain

import "regexp"

// FormMode tags which record the employee form is bound to.
type FormMode int

const (
	// ModeCreate binds the form to a blank draft.
	ModeCreate FormMode = iota
	// ModeEdit binds the form to a copy of an existing record.
	ModeEdit
)

func (m FormMode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	}
	return "unknown"
}

// FormState is the record bound to the employee form: either a draft being
// composed (Creating) or a copy of a persisted record (Editing).
// The zero value is an empty draft.
type FormState struct {
	mode   FormMode
	record Employee
}

// Creating returns a form bound to the given draft. Any id is dropped.
func Creating(draft Employee) FormState {
	draft.ID = ""
	return FormState{mode: ModeCreate, record: draft}
}

// Editing returns a form bound to a copy of a persisted record.
func Editing(selected Employee) FormState {
	return FormState{mode: ModeEdit, record: selected}
}

func (f FormState) Mode() FormMode { return f.mode }

// Record returns a copy of the bound record.
func (f FormState) Record() Employee { return f.record }

// SelectedID is the id of the record being edited, or "" in create mode.
func (f FormState) SelectedID() string {
	if f.mode == ModeEdit && f.record.Persisted() {
		return f.record.ID
	}
	return ""
}

// Set edits one field of the bound record.
func (f *FormState) Set(field, value string) bool {
	return f.record.Set(field, value)
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks a draft before it is sent to the backend. Every field is
// checked so that a fresh error set replaces the previous one.
func Validate(e Employee) (ValidationErrors, bool) {
	var errs ValidationErrors
	if e.Name == "" {
		errs.NameError = "Name is required"
	}
	switch {
	case e.Email == "":
		errs.EmailError = "Email is required"
	case !ValidEmail(e.Email):
		errs.EmailError = "Invalid email format"
	}
	if e.Department == "" {
		errs.DepartmentError = "Department is required"
	}
	if e.Company == "" {
		errs.CompanyError = "Company is required"
	}
	if e.City == "" {
		errs.CityError = "City is required"
	}
	return errs, errs.Empty()
}
