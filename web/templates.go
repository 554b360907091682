package web

import (
	"html/template"
)

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"eq": func(a, b string) bool { return a == b },
	}
	return template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{if .Title}}{{.Title}} · {{end}}Todo Tracker</title>
  <style>
    :root {
      color-scheme: light;
    }
    body {
      margin: 0;
      font-family: "Charter", "Georgia", serif;
      color: #2b2520;
      background: radial-gradient(circle at top left, #f4efe3 0%, #fcfaf6 55%, #f6f2e8 100%);
    }
    header {
      padding: 16px 24px;
      border-bottom: 1px solid #d7cdbd;
      background: rgba(255, 255, 255, 0.72);
    }
    header h1 {
      margin: 0;
      font-size: 20px;
      letter-spacing: 0.02em;
    }
    header a {
      color: inherit;
      text-decoration: none;
    }
    main {
      max-width: 720px;
      margin: 0 auto;
      padding: 24px;
    }
    .flash {
      padding: 10px 14px;
      border-radius: 8px;
      margin-bottom: 16px;
    }
    .flash.success {
      background: #e6f1e1;
      border: 1px solid #b7d3ab;
    }
    .flash.error {
      background: #f7e1dc;
      border: 1px solid #dfab9f;
    }
    ul.lists, ul.todos {
      list-style: none;
      padding: 0;
    }
    ul.lists li, ul.todos li {
      display: flex;
      justify-content: space-between;
      align-items: center;
      padding: 10px 0;
      border-bottom: 1px solid #e5dccd;
    }
    li.complete .name {
      text-decoration: line-through;
      color: #8c8276;
    }
    .actions {
      display: flex;
      gap: 8px;
    }
    form.inline {
      display: inline;
    }
  </style>
</head>
<body>
  <header>
    <h1><a href="/lists">Todo Tracker</a></h1>
  </header>
  <main>
    {{if .Flash.Success}}<div class="flash success">{{.Flash.Success}}</div>{{end}}
    {{if .Flash.Error}}<div class="flash error">{{.Flash.Error}}</div>{{end}}
    {{if .Error}}<div class="flash error">{{.Error}}</div>{{end}}
    {{if eq .View "lists"}}{{template "lists" .}}
    {{else if eq .View "new_list"}}{{template "new_list" .}}
    {{else if eq .View "list"}}{{template "list" .}}
    {{else if eq .View "edit_list"}}{{template "edit_list" .}}
    {{end}}
  </main>
</body>
</html>
{{define "lists"}}
    <h2>Lists</h2>
    <ul class="lists">
      {{range .Lists}}
      <li class="{{if .Complete}}complete{{end}}">
        <a class="name" href="/lists/{{.ID}}">{{.Name}}</a>
        <span class="progress">{{.Progress}}</span>
      </li>
      {{else}}
      <li>No lists yet.</li>
      {{end}}
    </ul>
    <p><a href="/lists/new">New List</a></p>
{{end}}
{{define "new_list"}}
    <h2>New List</h2>
    <form method="post" action="/lists">
      <label for="list_name">Enter the name for your new list:</label>
      <input id="list_name" name="list_name" type="text" value="{{.Form.ListName}}">
      <button type="submit">Save</button>
    </form>
    <p><a href="/lists">Cancel</a></p>
{{end}}
{{define "list"}}
    <h2 class="{{if .List.Complete}}complete{{end}}">{{.List.Name}}</h2>
    <p class="progress">{{.List.Progress}}</p>
    <div class="actions">
      <a href="/lists/{{.List.ID}}/edit">Edit List</a>
      <form class="inline" method="post" action="/lists/{{.List.ID}}/complete_all">
        <button type="submit">Complete All</button>
      </form>
    </div>
    <ul class="todos">
      {{range .List.Todos}}
      <li class="{{if .Completed}}complete{{end}}">
        <form class="inline" method="post" action="/lists/{{$.List.ID}}/todos/{{.ID}}">
          <input type="hidden" name="completed" value="{{if .Completed}}false{{else}}true{{end}}">
          <button type="submit">{{if .Completed}}Undo{{else}}Done{{end}}</button>
        </form>
        <span class="name">{{.Name}}</span>
        <form class="inline" method="post" action="/lists/{{$.List.ID}}/todos/{{.ID}}/destroy">
          <button type="submit">Delete</button>
        </form>
      </li>
      {{end}}
    </ul>
    <form method="post" action="/lists/{{.List.ID}}/todos">
      <label for="todo">Enter a new todo item:</label>
      <input id="todo" name="todo" type="text" value="{{.Form.TodoName}}">
      <button type="submit">Add</button>
    </form>
    <p><a href="/lists">All Lists</a></p>
{{end}}
{{define "edit_list"}}
    <h2>Editing '{{.List.Name}}'</h2>
    <form method="post" action="/lists/{{.List.ID}}">
      <label for="list_name">Enter the new name for the list:</label>
      <input id="list_name" name="list_name" type="text" value="{{.Form.ListName}}">
      <button type="submit">Save</button>
    </form>
    <form method="post" action="/lists/{{.List.ID}}/destroy">
      <button type="submit">Delete List</button>
    </form>
    <p><a href="/lists/{{.List.ID}}">Cancel</a></p>
{{end}}
`
