package templates

import (
	"strings"

	"github.com/csg33k/employee-manager/internal/domain"
)

// fieldLabel turns a field name into its display label, e.g. "department"
// to "Department".
func fieldLabel(field string) string {
	if field == "" {
		return ""
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// inputType picks the HTML input type for a field.
func inputType(field string) string {
	if field == domain.FieldEmail {
		return "email"
	}
	return "text"
}
