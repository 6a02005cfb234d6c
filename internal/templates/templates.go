// Package templates renders the console page and its HTMX fragments.
// Markup lives in html/template definitions and is exposed as templ
// components so handlers render everything through templ.Component.
package templates

import (
	"html/template"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-manager/internal/domain"
)

// AppView is the data behind the #app region: the form and the list.
type AppView struct {
	Editing   bool
	Record    domain.Employee
	Errors    domain.ValidationErrors
	Employees []domain.Employee
}

// FieldView is one labelled input of the form.
type FieldView struct {
	Name  string
	Value string
	Error string
}

// Fields returns the form inputs in display order. Errors are only shown
// while creating.
func (v AppView) Fields() []FieldView {
	out := make([]FieldView, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		fv := FieldView{Name: f, Value: v.Record.Get(f)}
		if !v.Editing {
			fv.Error = v.Errors.For(f)
		}
		out = append(out, fv)
	}
	return out
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"label":     fieldLabel,
	"inputType": inputType,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Employee Management</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
  body { font-family: Arial, sans-serif; background: linear-gradient(to right, #f0f4f8, #cce7ff); min-height: 100vh; margin: 0; padding: 20px; }
  #app { display: flex; flex-direction: column; align-items: center; gap: 30px; }
  h1 { color: #333; font-size: 36px; text-align: center; }
  .panel { background: #fff; padding: 30px; border-radius: 12px; box-shadow: 0 6px 15px rgba(0,0,0,0.1); width: 80%; }
  .form-panel { max-width: 600px; }
  .list-panel { max-width: 900px; }
  .panel h2 { text-align: center; color: #333; font-size: 26px; margin-bottom: 20px; }
  .form-row { display: flex; flex-direction: column; gap: 15px; }
  .form-row input { padding: 12px; border-radius: 8px; border: 1px solid #ccc; font-size: 16px; }
  .error-text { color: red; font-size: 14px; margin-top: 5px; }
  .button-group { display: flex; justify-content: space-between; }
  .btn { color: #fff; padding: 12px 24px; border: none; border-radius: 8px; cursor: pointer; font-size: 16px; margin-top: 15px; width: 48%; }
  .btn-primary { background: #4CAF50; }
  .btn-danger { background: #e74c3c; }
  .btn-edit { background: #3498db; color: #fff; padding: 8px 16px; border: none; border-radius: 5px; cursor: pointer; font-size: 14px; margin-top: 10px; }
  .cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 20px; margin-top: 20px; }
  .card { padding: 20px; border-radius: 10px; box-shadow: 0 4px 10px rgba(0,0,0,0.1); }
  .card h3 { font-size: 22px; color: #333; margin: 0 0 10px; }
  .card p { font-size: 16px; color: #555; margin: 5px 0; }
  .exports { text-align: right; font-size: 14px; }
</style>
</head>
<body>
<h1>Employee Management</h1>
{{template "app" .}}
</body>
</html>
{{define "app"}}
<div id="app">
  <div class="panel form-panel">
    <h2>{{if .Editing}}Edit Employee{{else}}Add Employee{{end}}</h2>
    <form id="employee-form" class="form-row" onsubmit="return false;">
      {{range .Fields}}
      <input type="{{inputType .Name}}" name="{{.Name}}" placeholder="{{label .Name}}" value="{{.Value}}"
        hx-post="/form/fields/{{.Name}}" hx-trigger="input" hx-swap="none">
      {{if .Error}}<div class="error-text" data-field="{{.Name}}">{{.Error}}</div>{{end}}
      {{end}}
      <div class="button-group">
        <button type="button" class="btn btn-primary"
          hx-post="/form/submit" hx-include="#employee-form" hx-target="#app" hx-swap="outerHTML">
          {{if .Editing}}Update{{else}}Add{{end}}
        </button>
        {{if .Editing}}
        <button type="button" class="btn btn-danger"
          hx-post="/form/delete" hx-target="#app" hx-swap="outerHTML">Delete</button>
        {{end}}
      </div>
    </form>
  </div>

  <div class="panel list-panel">
    <h2>Employee List</h2>
    <div class="exports">
      <a href="/export/roster.csv">CSV</a> · <a href="/export/roster.pdf">PDF</a>
    </div>
    <div class="cards">
      {{range .Employees}}
      <div class="card" id="employee-{{.ID}}">
        <h3>{{.Name}}</h3>
        <p>{{.Email}}</p>
        <p>{{.Department}}</p>
        <p>{{.Company}}</p>
        <p>{{.City}}</p>
        <button type="button" class="btn-edit"
          hx-post="/employees/{{.ID}}/select" hx-target="#app" hx-swap="outerHTML">Edit</button>
      </div>
      {{end}}
    </div>
  </div>
</div>
{{end}}`))

// Page renders the full console document.
func Page(v AppView) templ.Component {
	return templ.FromGoHTML(pageTmpl, v)
}

// App renders only the #app region for HTMX swaps.
func App(v AppView) templ.Component {
	return templ.FromGoHTML(pageTmpl.Lookup("app"), v)
}
