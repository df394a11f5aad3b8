package states

import (
	"sync"

	"github.com/matb3l/tg-bot/models"
)

type Flow string

const (
	FlowNone        Flow = "none"
	FlowRegistering Flow = "registering"
	FlowEditing     Flow = "editing"
	FlowDeleting    Flow = "deleting"
	FlowBrowsing    Flow = "browsing"
)

// Stages within a flow. Registration tracks its position with Step
// instead; browsing walks filter → range/position input → paging.
const (
	StageChooseFilter   = "choose_filter"
	StageAwaitRange     = "await_range"
	StageAwaitPosition  = "await_position"
	StagePaging         = "paging"
	StageChooseField    = "choose_field"
	StageAwaitFieldData = "await_field_data"
	StageConfirmDelete  = "confirm_delete"
)

// Session is the transient per-identity dialog state. A new flow start
// replaces whatever was pending; "return to main menu" destroys it.
type Session struct {
	Flow    Flow
	Stage   string
	Step    int               // registration question cursor
	Answers map[string]string // collected field values so far

	EditField string // field picked in the edit flow

	Filter     models.BrowseFilter
	FilterBoth bool // combined rating+position filter: ask for the position after the range
	Offset     int
}

// Manager owns every active session, keyed by chat identity.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the active session for id, or nil when the identity is
// idle. Callers mutate the returned session directly; each identity
// drives its own single conversation, so no two handlers touch the same
// session concurrently.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Start discards any pending flow for id and begins a fresh one.
func (m *Manager) Start(id string, flow Flow) *Session {
	s := &Session{Flow: flow, Answers: make(map[string]string)}
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s
}

// Reset destroys the session for id, dropping partial answers.
func (m *Manager) Reset(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
