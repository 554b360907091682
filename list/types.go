// Package list implements the session-scoped todo list domain.
//
// A Store holds the lists of a single session. Lists and todos are addressed
// by stable integer IDs that are unique within their parent collection.
//
// The public API mirrors the request layer:
//   - CreateList, RenameList, DeleteList for lists
//   - CreateTodo, DeleteTodo, SetTodoCompletion, CompleteAll for todos
//   - Load, LoadTodo, Lists for querying
//   - RemainingCount, IsComplete, SortedLists, SortedTodos for display state
package list

// Name length bounds, in characters, for both lists and todos.
const (
	MinNameLength = 1
	MaxNameLength = 100
)

// Todo is a named task with a completion flag.
type Todo struct {
	// ID is unique within the parent list.
	ID int `json:"id"`

	// Name is the task text (1-100 characters).
	Name string `json:"name"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`
}

// List is a named, ordered collection of todos.
type List struct {
	// ID is unique within the store.
	ID int `json:"id"`

	// Name is unique within the store (1-100 characters).
	Name string `json:"name"`

	// Todos holds the todos in insertion order.
	Todos []Todo `json:"todos"`
}

func (l List) clone() List {
	l.Todos = append([]Todo(nil), l.Todos...)
	return l
}

func cloneLists(lists []List) []List {
	cloned := make([]List, len(lists))
	for i, item := range lists {
		cloned[i] = item.clone()
	}
	return cloned
}
