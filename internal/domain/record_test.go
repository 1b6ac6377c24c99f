package domain

import (
	"errors"
	"testing"
)

func TestRecordClone_IsDeep(t *testing.T) {
	orig := Record{
		"operators": Ints(1, 2),
		"usage":     map[string]any{"total_tokens": float64(10)},
	}
	cp := orig.Clone()
	cp["operators"].([]any)[0] = float64(99)
	cp["usage"].(map[string]any)["total_tokens"] = float64(0)

	if orig["operators"].([]any)[0] != float64(1) {
		t.Fatalf("expected original list untouched, got %v", orig["operators"])
	}
	if orig["usage"].(map[string]any)["total_tokens"] != float64(10) {
		t.Fatalf("expected original map untouched, got %v", orig["usage"])
	}
}

func TestRecordText(t *testing.T) {
	r := Record{"s": "abc", "n": float64(42), "f": 0.5, "b": true, "l": Ints(1), "nil": nil}
	cases := map[string]string{"s": "abc", "n": "42", "f": "0.5", "b": "true", "l": "", "nil": "", "missing": ""}
	for field, want := range cases {
		if got := r.Text(field); got != want {
			t.Fatalf("field %q: expected %q, got %q", field, want, got)
		}
	}
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	if len(reg.All()) != 9 {
		t.Fatalf("expected 9 resources, got %d", len(reg.All()))
	}
	if _, err := reg.Get("nope"); !errors.Is(err, ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
	chats, err := reg.Get(ResourceChats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chats.Remote() {
		t.Fatalf("expected chats to be served from seed data")
	}
	if got := len(chats.SeedRecords()); got != 9 {
		t.Fatalf("expected 9 chat seeds, got %d", got)
	}
}

func TestSeedRecords_AreFresh(t *testing.T) {
	res := Chats()
	first := res.SeedRecords()
	first[0]["payment"] = "changed"

	if got := res.SeedRecords()[0]["payment"]; got != "hgate_card" {
		t.Fatalf("expected fresh seed, got %v", got)
	}
}
