package listquery

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"rb-admin-console/internal/domain"
)

func chatsSpec() Spec {
	return SpecFor(domain.Chats())
}

func TestFilter_MatchesAnyWhitelistedField(t *testing.T) {
	source := []domain.Record{
		{"id": float64(1), "payment": "HGate", "chatId": "x"},
		{"id": float64(2), "payment": "paycore", "chatId": "hgate-room"},
		{"id": float64(3), "payment": "monetix", "chatId": "y", "template": "hgate"},
		{"id": float64(14), "payment": "tinkoff", "chatId": "z"},
	}
	fields := []string{"id", "payment", "chatId"}

	tests := []struct {
		search string
		want   []float64
	}{
		{"", []float64{1, 2, 3, 14}},
		{"hgate", []float64{1, 2}},
		{"HGATE", []float64{1, 2}},
		{"4", []float64{14}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		got := Filter(source, tt.search, fields)
		if len(got) != len(tt.want) {
			t.Fatalf("search %q: expected %d rows, got %d", tt.search, len(tt.want), len(got))
		}
		for i, r := range got {
			if r["id"] != tt.want[i] {
				t.Fatalf("search %q: expected id %v at %d, got %v", tt.search, tt.want[i], i, r["id"])
			}
		}
	}
}

func TestSort_IsStable(t *testing.T) {
	source := []domain.Record{
		{"id": float64(1), "template": "with_url"},
		{"id": float64(2), "template": "with_file"},
		{"id": float64(3), "template": "with_url"},
		{"id": float64(4), "template": "with_file"},
		{"id": float64(5), "template": "with_url"},
	}
	keys := map[string]domain.SortKind{"template": domain.SortString}

	asc := Sort(source, "template", Asc, keys)
	wantAsc := []float64{2, 4, 1, 3, 5}
	for i, r := range asc {
		if r["id"] != wantAsc[i] {
			t.Fatalf("asc: expected id %v at %d, got %v", wantAsc[i], i, r["id"])
		}
	}

	desc := Sort(source, "template", Desc, keys)
	wantDesc := []float64{1, 3, 5, 2, 4}
	for i, r := range desc {
		if r["id"] != wantDesc[i] {
			t.Fatalf("desc: expected id %v at %d, got %v", wantDesc[i], i, r["id"])
		}
	}

	again := Sort(asc, "template", Asc, keys)
	for i := range again {
		if again[i]["id"] != asc[i]["id"] {
			t.Fatalf("re-sort changed order at %d", i)
		}
	}
}

func TestSort_Projections(t *testing.T) {
	source := []domain.Record{
		{"id": float64(10), "operators": domain.Ints(1, 2, 3), "flag": true},
		{"id": float64(9), "operators": domain.Ints(), "flag": false},
		{"id": float64(100), "operators": domain.Ints(7), "flag": false},
	}
	keys := map[string]domain.SortKind{
		"id":        domain.SortNumber,
		"operators": domain.SortLength,
		"flag":      domain.SortBool,
	}

	ids := func(rows []domain.Record) string {
		parts := make([]string, len(rows))
		for i, r := range rows {
			parts[i] = r.Text("id")
		}
		return strings.Join(parts, ",")
	}

	if got := ids(Sort(source, "id", Asc, keys)); got != "9,10,100" {
		t.Fatalf("numeric sort: expected 9,10,100, got %s", got)
	}
	if got := ids(Sort(source, "operators", Desc, keys)); got != "10,100,9" {
		t.Fatalf("length sort: expected 10,100,9, got %s", got)
	}
	if got := ids(Sort(source, "flag", Asc, keys)); got != "9,100,10" {
		t.Fatalf("bool sort: expected 9,100,10, got %s", got)
	}
	if got := ids(Sort(source, "unknown", Asc, keys)); got != "10,9,100" {
		t.Fatalf("unknown field: expected source order, got %s", got)
	}
}

func TestToggleSort(t *testing.T) {
	q := Query{SortField: "payment", SortDir: Asc, Page: 3}

	once := q.ToggleSort("payment")
	if once.SortDir != Desc {
		t.Fatalf("expected desc after first toggle, got %s", once.SortDir)
	}
	twice := once.ToggleSort("payment")
	if twice.SortDir != Asc {
		t.Fatalf("expected asc after second toggle, got %s", twice.SortDir)
	}

	other := once.ToggleSort("chatId")
	if other.SortField != "chatId" || other.SortDir != Asc {
		t.Fatalf("expected chatId asc, got %s %s", other.SortField, other.SortDir)
	}
	if other.Page != 1 {
		t.Fatalf("expected page reset to 1, got %d", other.Page)
	}
}

func TestPagination_Invariant(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 40} {
		source := make([]domain.Record, n)
		for i := range source {
			source[i] = domain.Record{"id": float64(i), "payment": fmt.Sprintf("p%03d", i)}
		}
		spec := Spec{SearchFields: []string{"payment"}, SortKeys: map[string]domain.SortKind{"id": domain.SortNumber}, PageSize: 10}

		first := Render(source, Query{SortField: "id", SortDir: Asc, Page: 1}, spec)
		wantPages := (n + 9) / 10
		if wantPages < 1 {
			wantPages = 1
		}
		if first.TotalPages != wantPages {
			t.Fatalf("n=%d: expected %d pages, got %d", n, wantPages, first.TotalPages)
		}

		var all []domain.Record
		for p := 1; p <= first.TotalPages; p++ {
			all = append(all, Render(source, Query{SortField: "id", SortDir: Asc, Page: p}, spec).Rows...)
		}
		if len(all) != n {
			t.Fatalf("n=%d: expected %d rows across pages, got %d", n, n, len(all))
		}
		for i, r := range all {
			if r["id"] != float64(i) {
				t.Fatalf("n=%d: expected id %d at %d, got %v", n, i, i, r["id"])
			}
		}
	}
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	source := make([]domain.Record, 15)
	for i := range source {
		source[i] = domain.Record{"id": float64(i)}
	}
	spec := Spec{PageSize: 10}

	high := Render(source, Query{Page: 99}, spec)
	if high.Page != 2 || len(high.Rows) != 5 {
		t.Fatalf("expected clamp to page 2 with 5 rows, got page %d with %d rows", high.Page, len(high.Rows))
	}
	low := Render(source, Query{Page: -3}, spec)
	if low.Page != 1 || len(low.Rows) != 10 {
		t.Fatalf("expected clamp to page 1 with 10 rows, got page %d with %d rows", low.Page, len(low.Rows))
	}
	if low.HasPrev() || !low.HasNext() {
		t.Fatalf("expected prev disabled and next enabled on first page")
	}
}

func TestRender_ChatsScenario(t *testing.T) {
	source := domain.Chats().SeedRecords()

	res := Render(source, Query{Search: "hgate", SortField: "payment", SortDir: Asc, Page: 1}, chatsSpec())

	want := []string{"alfa_hgate", "hgate_card", "hgate_p2p", "HGATE_sbp"}
	if len(res.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(res.Rows))
	}
	for i, r := range res.Rows {
		if r["payment"] != want[i] {
			t.Fatalf("expected %s at %d, got %v", want[i], i, r["payment"])
		}
	}
	if res.TotalPages != 1 || res.HasNext() {
		t.Fatalf("expected a single page with next disabled, got %d pages", res.TotalPages)
	}
}

func TestRender_DoesNotMutateSource(t *testing.T) {
	source := domain.Chats().SeedRecords()
	before := make([]any, len(source))
	for i, r := range source {
		before[i] = r["id"]
	}

	Render(source, Query{SortField: "payment", SortDir: Desc, Page: 1}, chatsSpec())

	for i, r := range source {
		if r["id"] != before[i] {
			t.Fatalf("source order changed at %d", i)
		}
	}
}

func TestRenderServer(t *testing.T) {
	rows := []domain.Record{{"id": "a"}, {"id": "b"}}
	res := RenderServer(rows, 45, Query{Page: 2}, 20)
	if res.TotalPages != 3 || res.Page != 2 || len(res.Rows) != 2 {
		t.Fatalf("unexpected result: pages=%d page=%d rows=%d", res.TotalPages, res.Page, len(res.Rows))
	}
}

func TestQueryValuesRoundTrip(t *testing.T) {
	q := Query{Search: "hgate", SortField: "payment", SortDir: Desc, Page: 2}
	back := QueryFromValues(q.Values(), "id")
	if back != q {
		t.Fatalf("expected %+v, got %+v", q, back)
	}

	def := QueryFromValues(url.Values{"page": {"abc"}}, "id")
	if def.SortField != "id" || def.SortDir != Asc || def.Page != 1 {
		t.Fatalf("unexpected defaults: %+v", def)
	}
}

func TestServerParams(t *testing.T) {
	q := Query{Search: "hg", SortField: "created_at", SortDir: Desc, Page: 0}
	v := q.ServerParams(20)
	if v.Get("page") != "1" || v.Get("limit") != "20" {
		t.Fatalf("unexpected paging params: %v", v)
	}
	if v.Get("search") != "hg" || v.Get("sort") != "created_at" || v.Get("order") != "desc" {
		t.Fatalf("unexpected query params: %v", v)
	}
}
