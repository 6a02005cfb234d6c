package domain

// Field names used by forms, validation errors and the field-edit route.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldDepartment = "department"
	FieldCompany    = "company"
	FieldCity       = "city"
)

// Fields lists the editable employee fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldDepartment, FieldCompany, FieldCity}

// Employee is the sole entity managed by the console.
// ID is assigned by the backend and is empty on an unsaved draft.
type Employee struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Company    string `json:"company"`
	City       string `json:"city"`
}

// Persisted reports whether the backend has assigned an id.
func (e Employee) Persisted() bool { return e.ID != "" }

// Get returns the value of the named field, or "" for an unknown name.
func (e Employee) Get(field string) string {
	switch field {
	case FieldName:
		return e.Name
	case FieldEmail:
		return e.Email
	case FieldDepartment:
		return e.Department
	case FieldCompany:
		return e.Company
	case FieldCity:
		return e.City
	}
	return ""
}

// Set assigns value to the named field. It reports false for an unknown
// field name. The id is never settable from a form.
func (e *Employee) Set(field, value string) bool {
	switch field {
	case FieldName:
		e.Name = value
	case FieldEmail:
		e.Email = value
	case FieldDepartment:
		e.Department = value
	case FieldCompany:
		e.Company = value
	case FieldCity:
		e.City = value
	default:
		return false
	}
	return true
}

// ValidationErrors holds one message per field; an empty string means the
// field passed.
type ValidationErrors struct {
	NameError       string
	EmailError      string
	DepartmentError string
	CompanyError    string
	CityError       string
}

// Empty reports whether no field has a message.
func (v ValidationErrors) Empty() bool {
	return v == ValidationErrors{}
}

// For returns the message recorded for the named field.
func (v ValidationErrors) For(field string) string {
	switch field {
	case FieldName:
		return v.NameError
	case FieldEmail:
		return v.EmailError
	case FieldDepartment:
		return v.DepartmentError
	case FieldCompany:
		return v.CompanyError
	case FieldCity:
		return v.CityError
	}
	return ""
}
