// Package shell runs a line-oriented session against a single list store.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amonks/lists/internal/markdown"
	internalstrings "github.com/amonks/lists/internal/strings"
	"github.com/amonks/lists/internal/ui"
	"github.com/amonks/lists/list"
	"github.com/muesli/reflow/wordwrap"
)

// Options configures a Shell.
type Options struct {
	// Prompt is written before each line is read. Empty disables it.
	Prompt string
	// Color enables lipgloss styling.
	Color bool
	// Width is the wrap width for messages and help; zero means ui.DefaultWidth.
	Width int
}

// Shell executes commands against one store.
type Shell struct {
	store  *list.Store
	out    io.Writer
	opts   Options
	styles styles
}

type command struct {
	usage string
	run   func(s *Shell, args string) error
}

var commands = map[string]command{
	"lists":    {"lists", (*Shell).showLists},
	"show":     {"show <list>", (*Shell).showList},
	"new":      {"new <name>", (*Shell).createList},
	"rename":   {"rename <list> <name>", (*Shell).renameList},
	"delete":   {"delete <list>", (*Shell).deleteList},
	"add":      {"add <list> <name>", (*Shell).createTodo},
	"check":    {"check <list> <todo>", (*Shell).checkTodo},
	"uncheck":  {"uncheck <list> <todo>", (*Shell).uncheckTodo},
	"remove":   {"remove <list> <todo>", (*Shell).deleteTodo},
	"complete": {"complete <list>", (*Shell).completeAll},
	"help":     {"help", (*Shell).help},
}

// New creates a shell writing to out. A nil store starts an empty session.
func New(store *list.Store, out io.Writer, opts Options) *Shell {
	if store == nil {
		store = list.NewStore()
	}
	if out == nil {
		out = io.Discard
	}
	if opts.Width <= 0 {
		opts.Width = ui.DefaultWidth
	}
	return &Shell{
		store:  store,
		out:    out,
		opts:   opts,
		styles: newStyles(out, opts.Color),
	}
}

// Store returns the session's store.
func (s *Shell) Store() *list.Store {
	return s.store
}

// Run reads commands from in until EOF, quit, or ctx is done. Lines of any
// length are accepted; oversized names fail validation like any other.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.opts.Prompt != "" {
			fmt.Fprint(s.out, s.opts.Prompt)
		}
		line, err := reader.ReadString('\n')
		if line != "" {
			if quit := s.Exec(internalstrings.TrimTrailingNewlines(line)); quit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			if s.opts.Prompt != "" {
				fmt.Fprintln(s.out)
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Exec runs a single command line and reports whether the session should end.
// Command failures are written to the output; they never stop the session.
func (s *Shell) Exec(line string) bool {
	name, args := internalstrings.CutWord(internalstrings.TrimTrailingCarriageReturn(line))
	if name == "" || strings.HasPrefix(name, "#") {
		return false
	}
	name = strings.ToLower(name)
	if name == "quit" || name == "exit" {
		return true
	}
	cmd, ok := commands[name]
	if !ok {
		s.fail(fmt.Errorf("unknown command %q; type help for a list of commands", name))
		return false
	}
	if err := cmd.run(s, args); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			err = fmt.Errorf("usage: %s", cmd.usage)
		}
		s.fail(err)
	}
	return false
}

func (s *Shell) fail(err error) {
	message := err.Error()
	var validation *list.ValidationError
	var notFound *list.NotFoundError
	switch {
	case errors.As(err, &validation):
		message = validation.Message
	case errors.As(err, &notFound):
		message = notFound.Message
	}
	s.println(s.styles.paint(s.styles.failure, s.wrap("error: "+message)))
}

func (s *Shell) succeed(message string) {
	s.println(s.styles.paint(s.styles.success, s.wrap(message)))
}

func (s *Shell) println(value string) {
	fmt.Fprintln(s.out, value)
}

func (s *Shell) wrap(value string) string {
	return wordwrap.String(value, s.opts.Width)
}

func (s *Shell) help(string) error {
	rendered := markdown.SafeRender(s.opts.Width, 0, []byte(helpText))
	s.println(string(rendered))
	return nil
}
