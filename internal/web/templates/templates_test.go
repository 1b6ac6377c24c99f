package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, r *Renderer, name string, data PageData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Page(name, data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String()
}

func TestNew_ParsesAllPages(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"list", "detail", "confirm", "stats", "playground", "login", "journal", "dashboard"} {
		if !r.Has(name) {
			t.Fatalf("expected page %q", name)
		}
	}
}

func TestPage_EscapesAndInjectsTheme(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := render(t, r, "confirm", PageData{
		Title: "Delete",
		Theme: ResolveTheme("dark"),
		Error: "<script>x</script>",
		Body: map[string]any{
			"prompt":      "Delete <b>chat</b>?",
			"action":      "/models/chats/1/delete",
			"cancel_href": "/models/chats",
		},
	})

	if !strings.Contains(out, `data-theme="dark"`) || !strings.Contains(out, "#60a5fa") {
		t.Fatalf("expected dark theme injected")
	}
	if strings.Contains(out, "<script>x</script>") || !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected error banner escaped")
	}
	if !strings.Contains(out, "Delete &lt;b&gt;chat&lt;/b&gt;?") {
		t.Fatalf("expected prompt escaped, got %s", out)
	}
}

func TestPage_UnknownTemplate(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Page("nope", PageData{}).Render(context.Background(), &buf); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}

func TestResolveTheme_Fallback(t *testing.T) {
	if got := ResolveTheme("neon"); got != DefaultTheme {
		t.Fatalf("expected default theme, got %+v", got)
	}
}
