// Package dashboard hosts the Bubble Tea program for the operator dashboard.
package dashboard

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/tui/theme"
)

// Backend is the slice of the API client the dashboard drives.
type Backend interface {
	DashboardEvents(ctx context.Context, q api.Query) ([]api.EventRecord, api.Pagination, error)
	DashboardStats(ctx context.Context, q api.Query) (*api.Stats, error)
	ImportEvent(ctx context.Context, id string) error
}

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeConfirm
)

// statusCycle is the order the status filter steps through; "" is all.
var statusCycle = []api.Status{"", api.StatusNew, api.StatusUpdated, api.StatusUnchanged, api.StatusInactive, api.StatusImported}

// Model keeps the event list and stats consistent with the latest
// (city, status, page) triple and the latest successful import.
type Model struct {
	backend Backend
	ctx     context.Context
	cancel  context.CancelFunc

	query api.Query
	home  string // the configured city, restored when cycling back from "all"

	events []api.EventRecord
	page   api.Pagination
	stats  *api.Stats

	// gen is the refresh generation counter; see messages.go.
	gen     int
	loading bool

	cursor     int
	selectedID string
	confirmID  string

	mode   mode
	input  textinput.Model
	status string

	userName string

	// sessionEvents delivers notifications from store.WatchToken when set.
	sessionEvents <-chan struct{}

	termWidth  int
	termHeight int

	theme theme.Theme
}

// Option tweaks optional model wiring.
type Option func(*Model)

// WithSessionEvents surfaces external sign-in and sign-out activity on the
// status line.
func WithSessionEvents(ch <-chan struct{}) Option {
	return func(m *Model) {
		m.sessionEvents = ch
	}
}

// New builds the dashboard model. The query's city and limit come from
// configuration; keyword and dates may be pre-seeded from flags.
func New(backend Backend, q api.Query, userName string, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "keyword"
	ti.CharLimit = 128
	ti.Prompt = "/ "

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		backend:  backend,
		ctx:      ctx,
		cancel:   cancel,
		query:    q.Normalize(),
		home:     q.City,
		input:    ti,
		userName: userName,
		theme:    theme.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init kicks off the first combined refresh.
func (m *Model) Init() tea.Cmd {
	if m.sessionEvents != nil {
		return tea.Batch(m.refresh(), m.watchSession())
	}
	return m.refresh()
}

// watchSession blocks on the next token change notification.
func (m *Model) watchSession() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case _, ok := <-m.sessionEvents:
			if !ok {
				return nil
			}
			return sessionChangedMsg{}
		}
	}
}

// refresh bumps the generation and reissues both fetches from one snapshot
// of the query. Earlier in-flight results become stale on arrival.
func (m *Model) refresh() tea.Cmd {
	m.gen++
	m.loading = true
	snapshot := m.query
	return tea.Batch(m.loadEvents(snapshot, m.gen), m.loadStats(snapshot, m.gen))
}

func (m *Model) loadEvents(snapshot api.Query, gen int) tea.Cmd {
	return func() tea.Msg {
		events, page, err := m.backend.DashboardEvents(m.ctx, snapshot)
		if err != nil {
			return fetchFailedMsg{gen: gen, scope: "events", err: err}
		}
		return eventsLoadedMsg{gen: gen, events: events, page: page}
	}
}

func (m *Model) loadStats(snapshot api.Query, gen int) tea.Cmd {
	return func() tea.Msg {
		stats, err := m.backend.DashboardStats(m.ctx, snapshot.StatsQuery())
		if err != nil {
			return fetchFailedMsg{gen: gen, scope: "stats", err: err}
		}
		return statsLoadedMsg{gen: gen, stats: stats}
	}
}

func (m *Model) importEvent(id string) tea.Cmd {
	return func() tea.Msg {
		return importDoneMsg{id: id, err: m.backend.ImportEvent(m.ctx, id)}
	}
}

// search applies the pending keyword, resets to page 1, and refreshes.
func (m *Model) search() tea.Cmd {
	m.query.Keyword = m.input.Value()
	m.query.Page = 1
	return m.refresh()
}

// selectedEvent resolves the selection against the current list. Selection is
// held by id only, so a refresh that drops the record clears it naturally.
func (m *Model) selectedEvent() *api.EventRecord {
	return findEvent(m.events, m.selectedID)
}

func findEvent(events []api.EventRecord, id string) *api.EventRecord {
	if id == "" {
		return nil
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case eventsLoadedMsg:
		if msg.gen != m.gen {
			break // superseded by a newer refresh
		}
		m.events = msg.events
		m.page = msg.page
		m.loading = false
		if m.cursor >= len(m.events) {
			m.cursor = len(m.events) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		if m.selectedID != "" && findEvent(m.events, m.selectedID) == nil {
			m.selectedID = ""
		}

	case statsLoadedMsg:
		if msg.gen != m.gen {
			break
		}
		m.stats = msg.stats

	case fetchFailedMsg:
		if msg.gen != m.gen {
			break
		}
		// fail soft: keep whatever is already on screen
		m.loading = false
		m.setStatus("ERR: fetch " + msg.scope + ": " + msg.err.Error())

	case importDoneMsg:
		if msg.err != nil {
			m.setStatus("Import failed: " + describeError(msg.err))
			break
		}
		m.setStatus("Event imported")
		if m.selectedID == msg.id {
			m.selectedID = ""
		}
		cmds = append(cmds, m.refresh())

	case sessionChangedMsg:
		m.setStatus("Session changed in another terminal; restart to pick it up")
		cmds = append(cmds, m.watchSession())

	case tea.KeyPressMsg:
		cmds = m.handleKey(msg, cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg, cmds []tea.Cmd) []tea.Cmd {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg, cmds)
	case modeConfirm:
		return m.handleConfirmKey(msg, cmds)
	}
	return m.handleBrowseKey(msg, cmds)
}

func (m *Model) handleBrowseKey(msg tea.KeyPressMsg, cmds []tea.Cmd) []tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.cancel()
		return append(cmds, tea.Quit)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.events)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(m.events) {
			m.selectedID = m.events[m.cursor].ID
		}

	case "esc":
		m.selectedID = ""

	case "n", "right":
		if m.query.Page < m.page.Pages {
			m.query.Page++
			cmds = append(cmds, m.refresh())
		}

	case "p", "left":
		if m.query.Page > 1 {
			m.query.Page--
			cmds = append(cmds, m.refresh())
		}

	case "c":
		if m.query.City == "" {
			m.query.City = m.home
		} else {
			m.query.City = ""
		}
		cmds = append(cmds, m.refresh())

	case "f":
		m.query.Status = nextStatus(m.query.Status)
		cmds = append(cmds, m.refresh())

	case "/":
		m.mode = modeSearch
		m.input.SetValue(m.query.Keyword)
		m.input.Focus()

	case "r":
		cmds = append(cmds, m.refresh())

	case "i":
		e := m.targetEvent()
		if e == nil {
			break
		}
		if !e.Importable() {
			m.setStatus("Already imported")
			break
		}
		m.confirmID = e.ID
		m.mode = modeConfirm
	}
	return cmds
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg, cmds []tea.Cmd) []tea.Cmd {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.input.Blur()
		return append(cmds, m.search())
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return cmds
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return cmds
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg, cmds []tea.Cmd) []tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmID
		m.confirmID = ""
		m.mode = modeBrowse
		m.setStatus("Importing…")
		return append(cmds, m.importEvent(id))
	case "n", "esc", "q":
		m.confirmID = ""
		m.mode = modeBrowse
		m.setStatus("Import cancelled")
	}
	return cmds
}

// targetEvent is the record an action applies to: the selection when one is
// held, otherwise the row under the cursor.
func (m *Model) targetEvent() *api.EventRecord {
	if e := m.selectedEvent(); e != nil {
		return e
	}
	if m.cursor < len(m.events) {
		return &m.events[m.cursor]
	}
	return nil
}

func (m *Model) setStatus(s string) {
	m.status = s
}

func nextStatus(s api.Status) api.Status {
	for i, candidate := range statusCycle {
		if candidate == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return ""
}

func describeError(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "request failed"
}

// Run launches the interactive dashboard.
func Run(backend Backend, q api.Query, userName string, opts ...Option) error {
	p := tea.NewProgram(New(backend, q, userName, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
