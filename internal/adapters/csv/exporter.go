// Package csv writes the employee roster as RFC 4180 CSV.
package csv

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/csg33k/employee-manager/internal/domain"
)

var header = []string{"id", "name", "email", "department", "company", "city"}

// Exporter implements ports.RosterExporter.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (Exporter) ContentType() string { return "text/csv; charset=utf-8" }
func (Exporter) Extension() string   { return "csv" }

func (Exporter) Export(ctx context.Context, employees []domain.Employee, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range employees {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write([]string{e.ID, e.Name, e.Email, e.Department, e.Company, e.City}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
