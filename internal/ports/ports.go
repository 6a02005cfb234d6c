package ports

import (
	"context"
	"errors"
	"io"

	"github.com/csg33k/employee-manager/internal/domain"
)

// ErrNotFound is returned by repositories when no record has the given id.
var ErrNotFound = errors.New("employee not found")

// EmployeeBackend is the console's boundary to the employee REST API.
type EmployeeBackend interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, e domain.Employee) error
	UpdateEmployee(ctx context.Context, e domain.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

// EmployeeRepository defines persistence operations for the development
// backend.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	// CreateEmployee stores e and sets e.ID.
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

// RosterExporter renders a list of employees into a downloadable document.
type RosterExporter interface {
	// Export writes the roster to w.
	Export(ctx context.Context, employees []domain.Employee, w io.Writer) error

	// ContentType and Extension describe the produced file.
	ContentType() string
	Extension() string
}
