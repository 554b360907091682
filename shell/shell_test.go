package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/amonks/lists/list"
	"github.com/google/go-cmp/cmp"
)

func newTestShell() (*Shell, *bytes.Buffer) {
	var out bytes.Buffer
	return New(list.NewStore(), &out, Options{}), &out
}

// run executes each line and returns what the last one printed.
func run(t *testing.T, sh *Shell, out *bytes.Buffer, lines ...string) string {
	t.Helper()
	for _, line := range lines {
		out.Reset()
		if sh.Exec(line) {
			t.Fatalf("unexpected quit on %q", line)
		}
	}
	return out.String()
}

func TestShellTodoLifecycle(t *testing.T) {
	sh, out := newTestShell()

	if got := run(t, sh, out, "new Groceries"); got != "The list has been created. (id 1)\n" {
		t.Fatalf("unexpected create output %q", got)
	}
	if got := run(t, sh, out, "add 1 milk"); got != "The todo was added. (id 1)\n" {
		t.Fatalf("unexpected add output %q", got)
	}
	run(t, sh, out, "add 1 eggs", "check 1 1")

	got := run(t, sh, out, "show 1")
	want := "" +
		"Groceries (1 / 2)\n" +
		"ID  DONE  TODO\n" +
		"2   [ ]   eggs\n" +
		"1   [x]   milk\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("show output mismatch (-want +got):\n%s", diff)
	}

	run(t, sh, out, "uncheck 1 1")
	got = run(t, sh, out, "show 1")
	want = "" +
		"Groceries (2 / 2)\n" +
		"ID  DONE  TODO\n" +
		"1   [ ]   milk\n" +
		"2   [ ]   eggs\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("show output mismatch (-want +got):\n%s", diff)
	}

	if got := run(t, sh, out, "remove 1 2"); got != "The todo has been deleted.\n" {
		t.Fatalf("unexpected remove output %q", got)
	}
	if got := run(t, sh, out, "complete 1"); got != "All todos have been completed.\n" {
		t.Fatalf("unexpected complete output %q", got)
	}
	l, err := sh.Store().Load(1)
	if err != nil {
		t.Fatalf("load list: %v", err)
	}
	if !list.IsComplete(l) || len(l.Todos) != 1 {
		t.Fatalf("expected one completed todo, got %+v", l.Todos)
	}
}

func TestShellListsSortsCompleteLast(t *testing.T) {
	sh, out := newTestShell()
	run(t, sh, out,
		"new Done",
		"add 1 sweep",
		"complete 1",
		"new Groceries",
		"add 2 milk",
		"new Empty",
	)

	got := run(t, sh, out, "lists")
	want := "" +
		"ID  DONE  PROGRESS  LIST\n" +
		"2   [ ]   1 / 1     Groceries\n" +
		"3   [ ]   0 / 0     Empty\n" +
		"1   [x]   0 / 1     Done\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lists output mismatch (-want +got):\n%s", diff)
	}
}

func TestShellRenameAndDelete(t *testing.T) {
	sh, out := newTestShell()
	run(t, sh, out, "new Work", "new Home")

	if got := run(t, sh, out, "rename 1 Work"); got != "The list has been updated.\n" {
		t.Fatalf("renaming to the same name should succeed, got %q", got)
	}
	if got := run(t, sh, out, "rename 1 Home"); got != "error: List name must be unique.\n" {
		t.Fatalf("unexpected duplicate rename output %q", got)
	}
	if got := run(t, sh, out, "rename 1   Office  "); got != "The list has been updated.\n" {
		t.Fatalf("unexpected rename output %q", got)
	}
	l, err := sh.Store().Load(1)
	if err != nil || l.Name != "Office" {
		t.Fatalf("expected list renamed to Office, got %+v (err %v)", l, err)
	}

	if got := run(t, sh, out, "delete 1"); got != "The list has been deleted.\n" {
		t.Fatalf("unexpected delete output %q", got)
	}
	if got := run(t, sh, out, "show 1"); got != "error: The specified list was not found.\n" {
		t.Fatalf("unexpected show output %q", got)
	}
}

func TestShellErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"empty list name", "new", "error: List name must be between 1 and 100 characters.\n"},
		{"long list name", "new " + strings.Repeat("x", 101), "error: List name must be between 1 and 100 characters.\n"},
		{"duplicate list", "new Groceries", "error: List name must be unique.\n"},
		{"empty todo", "add 1", "error: Todo name must be between 1 and 100 characters.\n"},
		{"missing list", "add 9 milk", "error: The specified list was not found.\n"},
		{"non-integer list", "show abc", "error: The specified list was not found.\n"},
		{"missing todo", "check 1 9", "error: The specified todo was not found.\n"},
		{"non-integer todo", "remove 1 abc", "error: The specified todo was not found.\n"},
		{"usage", "check 1", "error: usage: check <list> <todo>\n"},
		{"extra args", "delete 1 2", "error: usage: delete <list>\n"},
		{"unknown", "frobnicate", "error: unknown command \"frobnicate\"; type help for a list of commands\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, out := newTestShell()
			run(t, sh, out, "new Groceries")
			before := sh.Store().Lists()

			got := run(t, sh, out, tt.line)
			if got != tt.want {
				t.Fatalf("output = %q, want %q", got, tt.want)
			}
			if diff := cmp.Diff(before, sh.Store().Lists()); diff != "" {
				t.Fatalf("failed command changed the store (-before +after):\n%s", diff)
			}
		})
	}
}

func TestShellEmptyViews(t *testing.T) {
	sh, out := newTestShell()
	if got := run(t, sh, out, "lists"); !strings.HasPrefix(got, "No lists yet.") {
		t.Fatalf("unexpected empty lists output %q", got)
	}
	got := run(t, sh, out, "new Groceries", "show 1")
	if !strings.HasPrefix(got, "Groceries (0 / 0)\nNo todos yet.") {
		t.Fatalf("unexpected empty list output %q", got)
	}
}

func TestShellHelp(t *testing.T) {
	sh, out := newTestShell()
	got := run(t, sh, out, "help")
	for _, want := range []string{"Commands", "rename", "uncheck", "quit"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected help to mention %q, got %q", want, got)
		}
	}
}

func TestShellRunStopsAtQuit(t *testing.T) {
	var out bytes.Buffer
	sh := New(nil, &out, Options{Prompt: "> "})
	input := strings.NewReader("# comment\n\nnew Groceries\r\nquit\nnew Ignored\n")

	if err := sh.Run(context.Background(), input); err != nil {
		t.Fatalf("run: %v", err)
	}
	if sh.Store().Len() != 1 {
		t.Fatalf("expected commands after quit to be ignored, got %d lists", sh.Store().Len())
	}
	if got := strings.Count(out.String(), "> "); got != 4 {
		t.Fatalf("expected 4 prompts, got %d in %q", got, out.String())
	}
}

func TestShellRunEndsAtEOF(t *testing.T) {
	sh, out := newTestShell()
	if err := sh.Run(context.Background(), strings.NewReader("new A\nEXIT\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := sh.Run(context.Background(), strings.NewReader("new B")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if sh.Store().Len() != 2 {
		t.Fatalf("expected two lists, got %d: %s", sh.Store().Len(), out.String())
	}
}

func TestShellRunHonorsContext(t *testing.T) {
	sh, _ := newTestShell()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sh.Run(ctx, strings.NewReader("new A\n")); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if sh.Store().Len() != 0 {
		t.Fatal("expected no commands to run after cancel")
	}
}

func TestShellColorStylesOutput(t *testing.T) {
	var out bytes.Buffer
	sh := New(nil, &out, Options{Color: true})
	sh.Exec("new Groceries")
	if !strings.Contains(out.String(), "The list has been created.") {
		t.Fatalf("expected message text to survive styling, got %q", out.String())
	}
}

func TestShellRunHandlesOversizedLines(t *testing.T) {
	var out bytes.Buffer
	sh := New(nil, &out, Options{})
	input := "new " + strings.Repeat("x", 70000) + "\n" +
		"add 1 " + strings.Repeat("y", 70000) + "\n" +
		"new Groceries\n" +
		"add 1 milk\n"

	if err := sh.Run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "" +
		"error: List name must be between 1 and 100 characters.\n" +
		"error: The specified list was not found.\n" +
		"The list has been created. (id 1)\n" +
		"The todo was added. (id 1)\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestShellRunRejectsOversizedTodoName(t *testing.T) {
	sh, out := newTestShell()
	input := "new Groceries\nadd 1 " + strings.Repeat("y", 70000) + "\nshow 1\n"

	if err := sh.Run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "error: Todo name must be between 1 and 100 characters.\n") {
		t.Fatalf("expected todo length error, got %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "Groceries (0 / 0)\nNo todos yet. Add one with: add 1 <name>\n") {
		t.Fatalf("expected the session to continue, got %q", out.String())
	}
}
