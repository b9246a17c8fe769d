package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/eventscout/pkg/api"
)

type fakeBackend struct {
	mu           sync.Mutex
	eventQueries []api.Query
	statsQueries []api.Query
	imports      []string

	events    []api.EventRecord
	page      api.Pagination
	stats     *api.Stats
	eventsErr error
	statsErr  error
	importErr error
}

func (f *fakeBackend) DashboardEvents(_ context.Context, q api.Query) ([]api.EventRecord, api.Pagination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eventQueries = append(f.eventQueries, q)
	if f.eventsErr != nil {
		return nil, api.Pagination{}, f.eventsErr
	}
	return f.events, f.page, nil
}

func (f *fakeBackend) DashboardStats(_ context.Context, q api.Query) (*api.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsQueries = append(f.statsQueries, q)
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeBackend) ImportEvent(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imports = append(f.imports, id)
	return f.importErr
}

func records(ids ...string) []api.EventRecord {
	out := make([]api.EventRecord, len(ids))
	for i, id := range ids {
		out[i] = api.EventRecord{ID: id, Title: "Event " + id, Status: api.StatusNew}
	}
	return out
}

// deliver executes a command tree and feeds every produced message back into
// the model, returning any follow-up commands' messages too.
func deliver(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range collect(cmd) {
		_, next := m.Update(msg)
		deliver(t, m, next)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
	}
}

func newTestModel(t *testing.T, backend *fakeBackend) *Model {
	t.Helper()
	m := New(backend, api.Query{City: "Sydney", Limit: 50}, "Ada")
	deliver(t, m, m.Init())
	return m
}

func TestInitLoadsEventsAndStats(t *testing.T) {
	backend := &fakeBackend{
		events: records("a", "b"),
		page:   api.Pagination{Page: 1, Limit: 50, Total: 2, Pages: 1},
		stats:  &api.Stats{Total: 2, ByStatus: map[api.Status]int{api.StatusNew: 2}},
	}
	m := newTestModel(t, backend)

	if len(m.events) != 2 || m.stats == nil || m.stats.Total != 2 {
		t.Fatalf("initial load incomplete: %d events, stats %#v", len(m.events), m.stats)
	}
	if got := backend.eventQueries[0]; got.City != "Sydney" || got.Page != 1 || got.Limit != 50 {
		t.Fatalf("initial query = %#v", got)
	}
}

func TestStatsFetchHonorsCityOnly(t *testing.T) {
	backend := &fakeBackend{stats: &api.Stats{}}
	m := New(backend, api.Query{City: "Sydney", Keyword: "jazz", Status: api.StatusNew, Limit: 50}, "")
	deliver(t, m, m.Init())

	sq := backend.statsQueries[0]
	if sq.City != "Sydney" {
		t.Fatalf("stats city = %q", sq.City)
	}
	if sq.Keyword != "" || sq.Status != "" || sq.StartDate != "" || sq.EndDate != "" {
		t.Fatalf("stats query carried filters: %#v", sq)
	}
}

func TestSearchResetsPageToOne(t *testing.T) {
	backend := &fakeBackend{
		events: records("a"),
		page:   api.Pagination{Page: 1, Limit: 50, Total: 300, Pages: 6},
	}
	m := newTestModel(t, backend)
	m.query.Page = 4

	m.Update(key("/"))
	m.input.SetValue("festival")
	_, cmd := m.Update(key("enter"))
	deliver(t, m, cmd)

	last := backend.eventQueries[len(backend.eventQueries)-1]
	if last.Page != 1 {
		t.Fatalf("search issued page %d, want 1", last.Page)
	}
	if last.Keyword != "festival" {
		t.Fatalf("search keyword = %q", last.Keyword)
	}
}

func TestKeywordEditsAreInertUntilSearch(t *testing.T) {
	backend := &fakeBackend{events: records("a"), page: api.Pagination{Page: 1, Pages: 1}}
	m := newTestModel(t, backend)
	before := len(backend.eventQueries)

	m.Update(key("/"))
	for _, ch := range "jazz" {
		m.Update(tea.KeyPressMsg{Text: string(ch), Code: ch})
	}
	if len(backend.eventQueries) != before {
		t.Fatalf("typing in the keyword box issued %d fetches",
			len(backend.eventQueries)-before)
	}
	if m.query.Keyword != "" {
		t.Fatalf("keyword applied before search: %q", m.query.Keyword)
	}
}

func TestStaleGenerationResultsAreDiscarded(t *testing.T) {
	backend := &fakeBackend{}
	m := New(backend, api.Query{City: "Sydney", Limit: 50}, "")

	m.gen = 1 // a refresh was issued
	staleGen := m.gen
	m.gen = 2 // and then superseded

	m.Update(eventsLoadedMsg{gen: staleGen, events: records("old"), page: api.Pagination{Page: 9}})
	if len(m.events) != 0 {
		t.Fatal("stale events applied")
	}

	m.Update(statsLoadedMsg{gen: staleGen, stats: &api.Stats{Total: 99}})
	if m.stats != nil {
		t.Fatal("stale stats applied")
	}

	m.Update(eventsLoadedMsg{gen: m.gen, events: records("new"), page: api.Pagination{Page: 1}})
	if len(m.events) != 1 || m.events[0].ID != "new" {
		t.Fatalf("current generation not applied: %#v", m.events)
	}
}

func TestFetchFailureKeepsDisplayedData(t *testing.T) {
	backend := &fakeBackend{
		events: records("a", "b"),
		page:   api.Pagination{Page: 1, Limit: 50, Total: 2, Pages: 2},
		stats:  &api.Stats{Total: 2},
	}
	m := newTestModel(t, backend)

	backend.eventsErr = errors.New("boom")
	backend.statsErr = errors.New("boom")
	_, cmd := m.Update(key("n")) // next page triggers a refresh
	deliver(t, m, cmd)

	if len(m.events) != 2 || m.stats == nil {
		t.Fatal("failed fetch cleared displayed data")
	}
	if m.status == "" {
		t.Fatal("failure not surfaced on the status line")
	}
}

func TestCityAndStatusChangesTriggerRefresh(t *testing.T) {
	backend := &fakeBackend{events: records("a"), page: api.Pagination{Page: 1, Pages: 1}}
	m := newTestModel(t, backend)
	before := len(backend.eventQueries)

	_, cmd := m.Update(key("f"))
	deliver(t, m, cmd)
	if len(backend.eventQueries) != before+1 {
		t.Fatal("status change did not refresh")
	}
	if got := backend.eventQueries[len(backend.eventQueries)-1].Status; got != api.StatusNew {
		t.Fatalf("status filter = %q, want new", got)
	}

	_, cmd = m.Update(key("c"))
	deliver(t, m, cmd)
	if len(backend.eventQueries) != before+2 {
		t.Fatal("city change did not refresh")
	}
	if got := backend.eventQueries[len(backend.eventQueries)-1].City; got != "" {
		t.Fatalf("city = %q, want all-cities", got)
	}
}

func TestPagingStopsAtBounds(t *testing.T) {
	backend := &fakeBackend{events: records("a"), page: api.Pagination{Page: 1, Pages: 1}}
	m := newTestModel(t, backend)
	before := len(backend.eventQueries)

	_, cmd := m.Update(key("n"))
	deliver(t, m, cmd)
	_, cmd = m.Update(key("p"))
	deliver(t, m, cmd)

	if len(backend.eventQueries) != before {
		t.Fatal("paging past the bounds issued fetches")
	}
}

func TestSelectionIsClearedWhenRecordDisappears(t *testing.T) {
	backend := &fakeBackend{events: records("a", "b"), page: api.Pagination{Page: 1, Pages: 1}}
	m := newTestModel(t, backend)

	m.Update(key("enter")) // select the row under the cursor
	if m.selectedID != "a" {
		t.Fatalf("selectedID = %q", m.selectedID)
	}

	m.Update(eventsLoadedMsg{gen: m.gen, events: records("b", "c"), page: m.page})
	if m.selectedID != "" {
		t.Fatalf("selection survived the record vanishing: %q", m.selectedID)
	}
}

func TestImportConfirmAndRefresh(t *testing.T) {
	backend := &fakeBackend{events: records("a", "b"), page: api.Pagination{Page: 1, Pages: 1}}
	m := newTestModel(t, backend)
	m.Update(key("enter")) // select "a"
	fetchesBefore := len(backend.eventQueries)

	m.Update(key("i"))
	if m.mode != modeConfirm || m.confirmID != "a" {
		t.Fatalf("confirm not armed: mode=%v id=%q", m.mode, m.confirmID)
	}

	_, cmd := m.Update(key("y"))
	deliver(t, m, cmd)

	if len(backend.imports) != 1 || backend.imports[0] != "a" {
		t.Fatalf("imports = %v", backend.imports)
	}
	if len(backend.eventQueries) != fetchesBefore+1 {
		t.Fatal("successful import did not refresh")
	}
	if m.selectedID != "" {
		t.Fatal("selection not cleared after importing the selected event")
	}
}

func TestImportDeclinedIsSideEffectFree(t *testing.T) {
	backend := &fakeBackend{events: records("a"), page: api.Pagination{Page: 1, Pages: 1}}
	m := newTestModel(t, backend)
	fetchesBefore := len(backend.eventQueries)

	m.Update(key("i"))
	_, cmd := m.Update(key("n"))
	deliver(t, m, cmd)

	if len(backend.imports) != 0 {
		t.Fatalf("imports = %v after decline", backend.imports)
	}
	if len(backend.eventQueries) != fetchesBefore {
		t.Fatal("declined import refreshed anyway")
	}
}

func TestImportedRecordCannotBeImportedAgain(t *testing.T) {
	backend := &fakeBackend{
		events: []api.EventRecord{{ID: "a", Title: "Done", Status: api.StatusImported}},
		page:   api.Pagination{Page: 1, Pages: 1},
	}
	m := newTestModel(t, backend)

	m.Update(key("i"))
	if m.mode == modeConfirm {
		t.Fatal("confirm armed for an already-imported record")
	}
	if len(backend.imports) != 0 {
		t.Fatalf("imports = %v", backend.imports)
	}
}

func TestImportFailureChangesNothing(t *testing.T) {
	backend := &fakeBackend{events: records("a", "b"), page: api.Pagination{Page: 1, Pages: 1}}
	m := newTestModel(t, backend)
	m.Update(key("enter"))
	fetchesBefore := len(backend.eventQueries)

	backend.importErr = &api.Error{Status: 409, Message: "already being imported"}
	m.Update(key("i"))
	_, cmd := m.Update(key("y"))
	deliver(t, m, cmd)

	if len(backend.eventQueries) != fetchesBefore {
		t.Fatal("failed import triggered a refresh")
	}
	if m.selectedID != "a" {
		t.Fatal("failed import touched the selection")
	}
	if m.status == "" || m.status == "Importing…" {
		t.Fatalf("server message not surfaced: %q", m.status)
	}
}

func TestViewRendersWithoutData(t *testing.T) {
	m := New(&fakeBackend{}, api.Query{City: "Sydney", Limit: 50}, "Ada")
	if m.View() == "" {
		t.Fatal("empty view")
	}
}
