package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20

	rendererMu.Lock()
	prev, hadPrev := renderers[renderWidth]
	renderers[renderWidth] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[renderWidth] = prev
		} else {
			delete(renderers, renderWidth)
		}
		rendererMu.Unlock()
	}()

	out := SafeRender(renderWidth, 0, []byte("hello\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to unformatted markdown, got %q", string(out))
	}
}

func TestRender_BlankInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \r\n"} {
		if out := Render(40, 0, []byte(input)); out != nil {
			t.Fatalf("expected nil for %q, got %q", input, string(out))
		}
	}
}

func TestRender_KeepsTextAndIndents(t *testing.T) {
	out := string(Render(60, 2, []byte("# Commands\n\n- lists\n- quit\n")))
	if !strings.Contains(out, "Commands") {
		t.Fatalf("expected heading text, got %q", out)
	}
	if !strings.Contains(out, "lists") || !strings.Contains(out, "quit") {
		t.Fatalf("expected list items, got %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if line != "" && !strings.HasPrefix(line, "  ") {
			t.Fatalf("expected indented line, got %q", line)
		}
	}
}
