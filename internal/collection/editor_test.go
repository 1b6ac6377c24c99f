package collection

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"

	"rb-admin-console/internal/domain"
)

func TestEditor_OpenNewUsesDefaults(t *testing.T) {
	ed := NewEditor(seededChats(t))
	if ed.State() != Browsing {
		t.Fatalf("expected browsing, got %s", ed.State())
	}

	d := ed.Open(nil)
	if ed.State() != Editing || !d.IsNew() {
		t.Fatalf("expected editing a new draft")
	}
	if d.Get("template") != "with_file" {
		t.Fatalf("expected default template, got %q", d.Get("template"))
	}
	if d.Get("operators") != "" || d.Get("payment") != "" {
		t.Fatalf("expected empty defaults, got %+v", d.Values)
	}

	ed.Close()
	if ed.State() != Browsing || ed.Draft() != nil {
		t.Fatalf("expected browsing after close")
	}
}

func TestEditor_OpenExistingSerializesLists(t *testing.T) {
	s := seededChats(t)
	ed := NewEditor(s)

	d := ed.Open(s.Find("3"))
	if d.ID != "3" {
		t.Fatalf("expected draft id 3, got %q", d.ID)
	}
	if d.Get("operators") != "101,104,105" {
		t.Fatalf("expected comma-joined operators, got %q", d.Get("operators"))
	}
}

func TestEditor_RoundTripLeavesRecordUnchanged(t *testing.T) {
	s := seededChats(t)
	ed := NewEditor(s)
	before := s.Find("3").Clone()

	d := ed.Open(s.Find("3"))
	if _, err := ed.Commit(context.Background(), "", d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := s.Find("3").Clone()
	delete(before, "updated_at")
	delete(after, "updated_at")
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected content unchanged, got %v, want %v", after, before)
	}
	if ed.State() != Browsing {
		t.Fatalf("expected editor closed after commit")
	}
}

func TestEditor_CommitParsesIntList(t *testing.T) {
	s := seededChats(t)
	ed := NewEditor(s)

	d := ed.Open(s.Find("1"))
	ed.Apply(d, url.Values{"operators": {" 7, x ,8abc,, 9 "}})
	rec, err := ed.Commit(context.Background(), "", d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []any{float64(7), float64(8), float64(9)}
	if !reflect.DeepEqual(rec["operators"], want) {
		t.Fatalf("expected %v, got %v", want, rec["operators"])
	}
	if rec["payment"] != "hgate_card" {
		t.Fatalf("expected untouched field kept, got %v", rec["payment"])
	}
}

func TestEditor_CreateNew(t *testing.T) {
	s := seededChats(t)
	ed := NewEditor(s)

	d := ed.Open(nil)
	ed.Apply(d, url.Values{"payment": {"X"}, "chatId": {"-100"}, "operators": {"1,2"}})
	rec, err := ed.Commit(context.Background(), "", d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.IDString("id") != "10" || rec["template"] != "with_file" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if len(s.Snapshot().Items) != 10 {
		t.Fatalf("expected record appended")
	}
}

func TestEditor_RequiredFieldBlocksCommit(t *testing.T) {
	s := seededChats(t)
	ed := NewEditor(s)

	d := ed.Open(nil)
	ed.Apply(d, url.Values{"payment": {"  "}, "chatId": {"-100"}})
	_, err := ed.Commit(context.Background(), "", d)

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "payment" {
		t.Fatalf("expected validation error on payment, got %v", err)
	}
	if !errors.Is(err, ErrRequiredField) {
		t.Fatalf("expected ErrRequiredField, got %v", err)
	}
	if ed.State() != Editing {
		t.Fatalf("expected panel to stay open")
	}
	if len(s.Snapshot().Items) != 9 {
		t.Fatalf("expected no record created")
	}
}

func TestEditor_CheckboxAndFloat(t *testing.T) {
	tags := NewStore(domain.Tags(), nil, nil, nil)
	tags.Refresh(context.Background(), "", nil)
	ed := NewEditor(tags)

	d := ed.Open(tags.Find("65f1a0c2e4b0a1b2c3d4e602"))
	if d.Get("excludeInProcess") != "true" {
		t.Fatalf("expected checkbox checked, got %q", d.Get("excludeInProcess"))
	}
	ed.Apply(d, url.Values{"name": {"sbp_withdrawal"}})
	rec, err := ed.Commit(context.Background(), "", d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec["excludeInProcess"] != false {
		t.Fatalf("expected unchecked box to clear flag, got %v", rec["excludeInProcess"])
	}

	aliases := NewStore(domain.PaymentAliases(), nil, nil, nil)
	aliases.Refresh(context.Background(), "", nil)
	aed := NewEditor(aliases)
	ad := aed.Open(nil)
	aed.Apply(ad, url.Values{"paymentId": {"p"}, "alias": {"a"}, "weight": {"heavy"}})
	arec, err := aed.Commit(context.Background(), "", ad)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arec["weight"] != float64(0) {
		t.Fatalf("expected unparsable weight to become 0, got %v", arec["weight"])
	}
}

func TestParseIntPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{" 12abc", 12, true},
		{"-3", -3, true},
		{"abc", 0, false},
		{"", 0, false},
		{"+", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseIntPrefix(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseIntPrefix(%q): expected %d/%v, got %d/%v", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestParseStringList(t *testing.T) {
	got := ParseStringList(" a, b,,c ")
	want := []any{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
