package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/ports"
)

//go:embed schema.sql
var schema string

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the SQLite database. Call Migrate before first use on a fresh
// file.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, now: time.Now}, nil
}

// Migrate creates the employees table if it does not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *Repository) Close() error { return r.db.Close() }

func (r *Repository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, department, company, city
		FROM employees ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Company, &e.City); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *Repository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	now := r.now()
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, email, department, company, city, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		id, e.Name, e.Email, e.Department, e.Company, e.City, now, now,
	)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *Repository) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, department, company, city
		FROM employees WHERE id=?`, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Department, &e.Company, &e.City,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repository) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name=?, email=?, department=?, company=?, city=?, updated_at=?
		WHERE id=?`,
		e.Name, e.Email, e.Department, e.Company, e.City, r.now(), e.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *Repository) DeleteEmployee(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}
