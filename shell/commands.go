package shell

import (
	"fmt"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/lists/internal/strings"
	"github.com/amonks/lists/internal/ui"
	"github.com/amonks/lists/list"
)

type usageError struct{}

func (*usageError) Error() string { return "usage" }

var errUsage = &usageError{}

func (s *Shell) showLists(args string) error {
	if args != "" {
		return errUsage
	}
	lists := s.store.Lists()
	if len(lists) == 0 {
		s.println(s.styles.paint(s.styles.muted, "No lists yet. Create one with: new <name>"))
		return nil
	}
	table := ui.NewTableBuilder([]string{"ID", "DONE", "PROGRESS", "LIST"}, len(lists))
	for _, entry := range list.SortedLists(lists) {
		l := entry.Item
		name := ui.TruncateTableCell(l.Name)
		if list.IsComplete(l) {
			name = s.styles.paint(s.styles.complete, name)
		}
		table.AddRow(strconv.Itoa(l.ID), checkbox(list.IsComplete(l)), list.Progress(l), name)
	}
	fmt.Fprint(s.out, s.header(table))
	return nil
}

func (s *Shell) showList(args string) error {
	listID, rest, err := listArg(args)
	if err != nil {
		return err
	}
	if rest != "" {
		return errUsage
	}
	l, err := s.store.Load(listID)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s (%s)", l.Name, list.Progress(l))
	s.println(s.styles.paint(s.styles.header, s.wrap(title)))
	if len(l.Todos) == 0 {
		s.println(s.styles.paint(s.styles.muted, fmt.Sprintf("No todos yet. Add one with: add %d <name>", l.ID)))
		return nil
	}
	table := ui.NewTableBuilder([]string{"ID", "DONE", "TODO"}, len(l.Todos))
	for _, entry := range list.SortedTodos(l.Todos) {
		todo := entry.Item
		name := ui.TruncateTableCell(todo.Name)
		if todo.Completed {
			name = s.styles.paint(s.styles.complete, name)
		}
		table.AddRow(strconv.Itoa(todo.ID), checkbox(todo.Completed), name)
	}
	fmt.Fprint(s.out, s.header(table))
	return nil
}

func (s *Shell) createList(args string) error {
	id, err := s.store.CreateList(args)
	if err != nil {
		return err
	}
	s.succeed(fmt.Sprintf("The list has been created. (id %d)", id))
	return nil
}

func (s *Shell) renameList(args string) error {
	listID, name, err := listArg(args)
	if err != nil {
		return err
	}
	if err := s.store.RenameList(listID, name); err != nil {
		return err
	}
	s.succeed("The list has been updated.")
	return nil
}

func (s *Shell) deleteList(args string) error {
	listID, rest, err := listArg(args)
	if err != nil {
		return err
	}
	if rest != "" {
		return errUsage
	}
	if err := s.store.DeleteList(listID); err != nil {
		return err
	}
	s.succeed("The list has been deleted.")
	return nil
}

func (s *Shell) createTodo(args string) error {
	listID, name, err := listArg(args)
	if err != nil {
		return err
	}
	id, err := s.store.CreateTodo(listID, name)
	if err != nil {
		return err
	}
	s.succeed(fmt.Sprintf("The todo was added. (id %d)", id))
	return nil
}

func (s *Shell) checkTodo(args string) error {
	return s.setCompletion(args, true)
}

func (s *Shell) uncheckTodo(args string) error {
	return s.setCompletion(args, false)
}

func (s *Shell) setCompletion(args string, completed bool) error {
	listID, todoID, err := todoArgs(args)
	if err != nil {
		return err
	}
	if err := s.store.SetTodoCompletion(listID, todoID, completed); err != nil {
		return err
	}
	s.succeed("The todo has been updated.")
	return nil
}

func (s *Shell) deleteTodo(args string) error {
	listID, todoID, err := todoArgs(args)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTodo(listID, todoID); err != nil {
		return err
	}
	s.succeed("The todo has been deleted.")
	return nil
}

func (s *Shell) completeAll(args string) error {
	listID, rest, err := listArg(args)
	if err != nil {
		return err
	}
	if rest != "" {
		return errUsage
	}
	if err := s.store.CompleteAll(listID); err != nil {
		return err
	}
	s.succeed("All todos have been completed.")
	return nil
}

func (s *Shell) header(table *ui.TableBuilder) string {
	rendered := table.String()
	if !s.styles.enabled {
		return rendered
	}
	head, body, _ := strings.Cut(rendered, "\n")
	return s.styles.paint(s.styles.header, head) + "\n" + body
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// listArg parses the leading list id. Ids that are not integers cannot name a
// list, so they report the list as not found.
func listArg(args string) (int, string, error) {
	word, rest := internalstrings.CutWord(args)
	if word == "" {
		return 0, "", errUsage
	}
	id, err := strconv.Atoi(word)
	if err != nil {
		return 0, "", &list.NotFoundError{Message: list.MsgListNotFound}
	}
	return id, rest, nil
}

func todoArgs(args string) (int, int, error) {
	listID, rest, err := listArg(args)
	if err != nil {
		return 0, 0, err
	}
	word, extra := internalstrings.CutWord(rest)
	if word == "" || extra != "" {
		return 0, 0, errUsage
	}
	todoID, err := strconv.Atoi(word)
	if err != nil {
		return 0, 0, &list.NotFoundError{Message: list.MsgTodoNotFound}
	}
	return listID, todoID, nil
}
