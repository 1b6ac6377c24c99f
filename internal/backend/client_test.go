package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"rb-admin-console/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0, NewMetrics(prometheus.NewRegistry()))
}

func TestTokenFromCookieHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"rb_admin_token=abc", "abc"},
		{"theme=dark; rb_admin_token=abc.def; other=1", "abc.def"},
		{"theme=dark", ""},
		{"", ""},
		{"x_rb_admin_token=nope", ""},
		{"rb_admin_token=a%20b", "a%20b"},
		{"rb_admin_token=one; rb_admin_token=two", ""},
	}
	for _, tt := range tests {
		if got := TokenFromCookieHeader(tt.header, "rb_admin_token"); got != tt.want {
			t.Fatalf("header %q: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}

func TestNormalize_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantTotal int
	}{
		{"bare array", `[{"id":1},{"id":2}]`, 2, 2},
		{"data with total", `{"data":[{"id":1}],"total":40}`, 1, 40},
		{"data with count", `{"data":[{"id":1}],"count":7}`, 1, 7},
		{"data without total", `{"data":[{"id":1},{"id":2},{"id":3}]}`, 3, 3},
		{"items with total", `{"items":[{"id":1}],"total":12}`, 1, 12},
		{"data preferred over items", `{"data":[{"id":1}],"items":[{"id":2},{"id":3}]}`, 1, 1},
		{"non-object elements dropped", `[{"id":1}, 5, "x"]`, 1, 3},
	}
	for _, tt := range tests {
		items, total, err := Normalize([]byte(tt.body))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if len(items) != tt.wantLen || total != tt.wantTotal {
			t.Fatalf("%s: expected %d items / total %d, got %d / %d", tt.name, tt.wantLen, tt.wantTotal, len(items), total)
		}
	}

	if _, _, err := Normalize([]byte(`{"rows":[]}`)); !errors.Is(err, ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape, got %v", err)
	}
	if _, _, err := Normalize([]byte(`not json`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCanonicalize(t *testing.T) {
	aliases := domain.TicketData().Aliases
	raw := map[string]any{
		"_id":         "abc",
		"ticket_id":   float64(5),
		"ticketId":    float64(6),
		"projectName": "casino",
		"createdAt":   "2024-01-01",
		"extra":       "kept",
		"tag_id":      nil,
		"tagId":       "t1",
	}
	rec := Canonicalize(raw, aliases)

	if rec["id"] != "abc" {
		t.Fatalf("expected id from _id, got %v", rec["id"])
	}
	if rec["ticketId"] != float64(5) {
		t.Fatalf("expected snake_case to win, got %v", rec["ticketId"])
	}
	if rec["projectName"] != "casino" || rec["created_at"] != "2024-01-01" {
		t.Fatalf("expected camelCase fallback, got %v / %v", rec["projectName"], rec["created_at"])
	}
	if rec["tagId"] != "t1" {
		t.Fatalf("expected null snake_case to fall through, got %v", rec["tagId"])
	}
	if rec["updated_at"] != "" {
		t.Fatalf("expected literal default, got %v", rec["updated_at"])
	}
	if rec["extra"] != "kept" {
		t.Fatalf("expected unknown fields kept")
	}
	for _, k := range []string{"_id", "ticket_id", "createdAt", "tag_id"} {
		if _, ok := rec[k]; ok {
			t.Fatalf("expected alternate key %q removed", k)
		}
	}
	if list, ok := rec["transactionIds"].([]any); !ok || len(list) != 0 {
		t.Fatalf("expected empty list default, got %v", rec["transactionIds"])
	}
}

func TestLoad_HeadersAndNormalization(t *testing.T) {
	var gotAuth, gotType, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotQuery = r.URL.RawQuery
		if r.URL.Path != "/gateways" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"items":[{"_id":"g1","name":"hgate","payment_id":"p1"}],"total":31}`))
	})

	coll, err := client.Load(context.Background(), domain.Gateways(), "tok", url.Values{"page": {"2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok" || gotType != "application/json" {
		t.Fatalf("unexpected headers: %q %q", gotAuth, gotType)
	}
	if gotQuery != "page=2" {
		t.Fatalf("expected query page=2, got %q", gotQuery)
	}
	if coll.Total != 31 || len(coll.Items) != 1 {
		t.Fatalf("expected 1 item / total 31, got %d / %d", len(coll.Items), coll.Total)
	}
	if coll.Items[0]["id"] != "g1" || coll.Items[0]["payment"] != "p1" {
		t.Fatalf("unexpected canonical record: %v", coll.Items[0])
	}
}

func TestLoad_NoTokenNoAuthorizationHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Errorf("expected no Authorization header")
		}
		w.Write([]byte(`[]`))
	})
	if _, err := client.Load(context.Background(), domain.Tags(), "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_UnauthorizedIsEmptyNotError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	coll, err := client.Load(context.Background(), domain.Tags(), "expired", nil)
	if err != nil {
		t.Fatalf("expected no error on 401, got %v", err)
	}
	if len(coll.Items) != 0 || coll.Items == nil {
		t.Fatalf("expected empty non-nil collection, got %v", coll.Items)
	}
}

func TestLoad_ServerErrorCarriesStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	coll, err := client.Load(context.Background(), domain.Tags(), "tok", nil)
	if !IsStatus(err, http.StatusBadGateway) {
		t.Fatalf("expected status error 502, got %v", err)
	}
	if len(coll.Items) != 0 {
		t.Fatalf("expected empty collection on error")
	}
}

func TestLoad_NetworkErrorIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, 0, nil)

	coll, err := client.Load(context.Background(), domain.Tags(), "", nil)
	if err == nil {
		t.Fatalf("expected network error")
	}
	if len(coll.Items) != 0 {
		t.Fatalf("expected empty collection on network error")
	}
}

func TestGet_NotFoundIsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tags/known":
			w.Write([]byte(`{"data":{"_id":"known","name":"card","exclude_in_process":true}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	rec, err := client.Get(context.Background(), domain.Tags(), "", "missing")
	if err != nil || rec != nil {
		t.Fatalf("expected nil, nil for 404, got %v, %v", rec, err)
	}

	rec, err = client.Get(context.Background(), domain.Tags(), "", "known")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec["id"] != "known" || rec["excludeInProcess"] != true {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestCreate_ReturnsServerRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"srv-1","name":"new"}`))
	})
	rec, err := client.Create(context.Background(), domain.Gateways(), "tok", domain.Record{"name": "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec["id"] != "srv-1" {
		t.Fatalf("expected server id, got %v", rec["id"])
	}
}

func TestExtract_Multipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart content type, got %s", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.FormValue("ticket_id") != "48210" || r.FormValue("link") != "https://x/receipt.png" {
			t.Errorf("unexpected form: %v", r.MultipartForm.Value)
		}
		w.Write([]byte(`{"amount":150}`))
	})

	out, err := client.Extract(context.Background(), "tok", ExtractRequest{TicketID: "48210", Link: "https://x/receipt.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"amount":150}` {
		t.Fatalf("unexpected body %s", out)
	}
}

func TestExtractRequest_Validate(t *testing.T) {
	if err := (ExtractRequest{Link: "x"}).Validate(); !errors.Is(err, ErrTicketIDRequired) {
		t.Fatalf("expected ErrTicketIDRequired, got %v", err)
	}
	if err := (ExtractRequest{TicketID: "1"}).Validate(); !errors.Is(err, ErrFileOrLink) {
		t.Fatalf("expected ErrFileOrLink, got %v", err)
	}
	both := ExtractRequest{TicketID: "1", Link: "x", File: strings.NewReader("f")}
	if err := both.Validate(); !errors.Is(err, ErrFileOrLink) {
		t.Fatalf("expected ErrFileOrLink, got %v", err)
	}
}

func TestStats_UnwrapsData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"total_tokens":1200}}`))
	})
	out, err := client.Stats(context.Background(), "", "/stats/openai/total", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["total_tokens"] != float64(1200) {
		t.Fatalf("unexpected stats: %v", out)
	}
}

func TestNotConfigured(t *testing.T) {
	client := NewClient("", 0, nil)
	if client.Configured() {
		t.Fatalf("expected unconfigured client")
	}
	if _, err := client.Load(context.Background(), domain.Tags(), "", nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
