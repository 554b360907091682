package list

import "sync"

// Store owns the lists of one session. It is safe for concurrent use; each
// operation is applied atomically. Values returned by a Store are copies.
type Store struct {
	mu    sync.Mutex
	lists []List
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of lists.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lists)
}

// Lists returns all lists in insertion order.
func (s *Store) Lists() []List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLists(s.lists)
}

// Load returns the list with the given id.
func (s *Store) Load(listID int) (List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.find(listID)
	if err != nil {
		return List{}, err
	}
	return l.clone(), nil
}

// LoadTodo returns a single todo from the given list.
func (s *Store) LoadTodo(listID, todoID int) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.findTodo(listID, todoID)
	if err != nil {
		return Todo{}, err
	}
	return *t, nil
}

// CreateList validates name and appends a new empty list.
func (s *Store) CreateList(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ValidateListName(name, s.lists); err != nil {
		return 0, err
	}
	id := nextElementID(s.lists, listID)
	s.lists = append(s.lists, List{ID: id, Name: name, Todos: []Todo{}})
	return id, nil
}

// RenameList replaces the name of an existing list.
func (s *Store) RenameList(listID int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.find(listID)
	if err != nil {
		return err
	}
	if err := ValidateListRename(listID, name, s.lists); err != nil {
		return err
	}
	l.Name = name
	return nil
}

// DeleteList removes a list and all of its todos.
func (s *Store) DeleteList(listID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(listID)
	if i < 0 {
		return listNotFound()
	}
	s.lists = append(s.lists[:i], s.lists[i+1:]...)
	return nil
}

// CreateTodo validates name and appends an incomplete todo to the list.
func (s *Store) CreateTodo(listID int, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.find(listID)
	if err != nil {
		return 0, err
	}
	if err := ValidateTodoName(name); err != nil {
		return 0, err
	}
	id := nextElementID(l.Todos, todoID)
	l.Todos = append(l.Todos, Todo{ID: id, Name: name})
	return id, nil
}

// DeleteTodo removes a todo from the list.
func (s *Store) DeleteTodo(listID, todoID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.find(listID)
	if err != nil {
		return err
	}
	for i := range l.Todos {
		if l.Todos[i].ID == todoID {
			l.Todos = append(l.Todos[:i], l.Todos[i+1:]...)
			return nil
		}
	}
	return todoNotFound()
}

// SetTodoCompletion sets the completion flag of a todo.
func (s *Store) SetTodoCompletion(listID, todoID int, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.findTodo(listID, todoID)
	if err != nil {
		return err
	}
	t.Completed = completed
	return nil
}

// CompleteAll marks every todo in the list completed.
func (s *Store) CompleteAll(listID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.find(listID)
	if err != nil {
		return err
	}
	for i := range l.Todos {
		l.Todos[i].Completed = true
	}
	return nil
}

// find returns a pointer into s.lists. Callers must hold s.mu.
func (s *Store) find(listID int) (*List, error) {
	i := s.indexOf(listID)
	if i < 0 {
		return nil, listNotFound()
	}
	return &s.lists[i], nil
}

func (s *Store) findTodo(listID, todoID int) (*Todo, error) {
	l, err := s.find(listID)
	if err != nil {
		return nil, err
	}
	for i := range l.Todos {
		if l.Todos[i].ID == todoID {
			return &l.Todos[i], nil
		}
	}
	return nil, todoNotFound()
}

func (s *Store) indexOf(listID int) int {
	for i := range s.lists {
		if s.lists[i].ID == listID {
			return i
		}
	}
	return -1
}
