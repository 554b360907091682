package list

// nextElementID returns one more than the largest id in the collection, or 1
// when it is empty. IDs freed by deletion are only reused when no higher id
// remains.
func nextElementID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}

func listID(l List) int { return l.ID }

func todoID(t Todo) int { return t.ID }
