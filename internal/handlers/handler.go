package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-manager/internal/console"
	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/ports"
	"github.com/csg33k/employee-manager/internal/templates"
)

type Handler struct {
	ctrl      *console.Controller
	exporters map[string]ports.RosterExporter
	log       *slog.Logger
}

// New wires the console routes. Exporters are keyed by their file
// extension.
func New(ctrl *console.Controller, log *slog.Logger, exporters ...ports.RosterExporter) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{ctrl: ctrl, log: log, exporters: map[string]ports.RosterExporter{}}
	for _, x := range exporters {
		h.exporters[x.Extension()] = x
	}
	return h
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("POST /form/fields/{field}", h.setField)
	mux.HandleFunc("POST /form/submit", h.submit)
	mux.HandleFunc("POST /form/delete", h.deleteSelected)
	mux.HandleFunc("POST /employees/{id}/select", h.selectEmployee)
	mux.HandleFunc("GET /export/{file}", h.exportRoster)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return mux
}

// index mounts the page: every full load starts a fresh create-mode form
// and fetches the list once.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Mount(r.Context())
	render(w, r, templates.Page(appView(h.ctrl.View())))
}

// setField applies a single input change to the bound record.
func (h *Handler) setField(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	field := r.PathValue("field")
	if !h.ctrl.SetField(field, r.FormValue(field)) {
		http.Error(w, "unknown field", 400)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// submit applies any posted fields, then creates or updates depending on the
// form mode. The result is always the re-rendered #app region.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	for _, f := range domain.Fields {
		if vals, ok := r.PostForm[f]; ok && len(vals) > 0 {
			h.ctrl.SetField(f, vals[0])
		}
	}
	h.ctrl.Submit(r.Context())
	render(w, r, templates.App(appView(h.ctrl.View())))
}

func (h *Handler) selectEmployee(w http.ResponseWriter, r *http.Request) {
	if !h.ctrl.Select(r.PathValue("id")) {
		http.Error(w, "employee not found", 404)
		return
	}
	render(w, r, templates.App(appView(h.ctrl.View())))
}

func (h *Handler) deleteSelected(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Delete(r.Context())
	render(w, r, templates.App(appView(h.ctrl.View())))
}

// exportRoster downloads the currently loaded list; it does not re-fetch.
func (h *Handler) exportRoster(w http.ResponseWriter, r *http.Request) {
	ext, found := strings.CutPrefix(r.PathValue("file"), "roster.")
	x, ok := h.exporters[ext]
	if !found || !ok {
		http.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := x.Export(r.Context(), h.ctrl.View().Employees, &buf); err != nil {
		h.log.Error("roster export failed", "format", x.Extension(), "err", err)
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("employees_%s.%s", time.Now().Format("20060102"), x.Extension())
	w.Header().Set("Content-Type", x.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

func appView(v console.View) templates.AppView {
	return templates.AppView{
		Editing:   v.Form.Mode() == domain.ModeEdit,
		Record:    v.Form.Record(),
		Errors:    v.Errors,
		Employees: v.Employees,
	}
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
