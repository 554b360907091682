package list

import "fmt"

// Indexed pairs an item with its position in the canonical sequence.
type Indexed[T any] struct {
	Item  T
	Index int
}

// RemainingCount returns the number of todos not yet completed.
func RemainingCount(l List) int {
	count := 0
	for _, item := range l.Todos {
		if !item.Completed {
			count++
		}
	}
	return count
}

// IsComplete reports whether the list has todos and all of them are completed.
// An empty list is never complete.
func IsComplete(l List) bool {
	return len(l.Todos) > 0 && RemainingCount(l) == 0
}

// Progress formats the remaining and total todo counts as "remaining / total".
func Progress(l List) string {
	return fmt.Sprintf("%d / %d", RemainingCount(l), len(l.Todos))
}

// SortedLists orders lists incomplete first, complete second. Relative order
// within each group is preserved.
func SortedLists(lists []List) []Indexed[List] {
	return partition(lists, IsComplete)
}

// SortedTodos orders todos incomplete first, complete second. Relative order
// within each group is preserved.
func SortedTodos(todos []Todo) []Indexed[Todo] {
	return partition(todos, func(t Todo) bool { return t.Completed })
}

func partition[T any](items []T, done func(T) bool) []Indexed[T] {
	if len(items) == 0 {
		return nil
	}
	ordered := make([]Indexed[T], 0, len(items))
	var finished []Indexed[T]
	for i, item := range items {
		entry := Indexed[T]{Item: item, Index: i}
		if done(item) {
			finished = append(finished, entry)
			continue
		}
		ordered = append(ordered, entry)
	}
	return append(ordered, finished...)
}
