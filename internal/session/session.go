// Package session holds the client-side authentication record: an opaque
// bearer token plus the user profile, persisted in local storage and read
// on every navigation. It exposes the derived predicates the navigation
// guard evaluates, and the logout flow that broadcasts over the event bus.
package session

import (
	"encoding/json"

	"github.com/harborbank/teller/internal/events"
	"github.com/harborbank/teller/internal/log"
	"github.com/harborbank/teller/internal/routes"
	"github.com/harborbank/teller/internal/storage"
)

// Storage keys. A profile written under KeyUser must round-trip exactly:
// role, approved, and the passthrough identity fields.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Profile is the authenticated user's claims as persisted by the login
// flow. Fields beyond role and approved are carried for the UI and play
// no part in authorization.
type Profile struct {
	ID        int64       `json:"id,omitempty"`
	Email     string      `json:"email,omitempty"`
	FirstName string      `json:"firstName,omitempty"`
	LastName  string      `json:"lastName,omitempty"`
	Role      routes.Role `json:"role"`
	Approved  bool        `json:"approved"`
}

// Record is the session snapshot read from storage. It is either fully
// absent (logged out) or carries both a non-empty token and a valid
// profile; Manager.Session never returns a partial record.
type Record struct {
	Token string
	User  *Profile
}

// Absent reports whether the record represents a logged-out state.
func (r Record) Absent() bool {
	return r.Token == "" && r.User == nil
}

// Navigator moves the user to a route programmatically. It is satisfied
// by the navigation host; Logout uses it to land on the login page.
type Navigator interface {
	Navigate(route routes.Route)
}

// Manager reads and writes the session record and exposes the derived
// predicates. It is constructed explicitly and passed to the guard and to
// UI components; there is no package-level session state.
type Manager struct {
	store  storage.Store
	bus    *events.Bus
	nav    Navigator
	logger *log.Logger
}

// NewManager creates a session manager over the given storage.
//
// The bus receives a user-logged-out event on logout. The navigator may be
// nil until the navigation host exists; SetNavigator wires it in later.
func NewManager(store storage.Store, bus *events.Bus, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Manager{
		store:  store,
		bus:    bus,
		logger: logger.With("component", "session"),
	}
}

// SetNavigator wires the navigation host used by Logout.
func (m *Manager) SetNavigator(nav Navigator) {
	m.nav = nav
}

// Session reads the current record from storage.
//
// Corruption is fully absorbed: a token without a parseable profile, a
// profile without a token, or a profile with an unknown role is cleared
// from storage and reported as absent, never as authenticated. Callers
// never see an error.
func (m *Manager) Session() Record {
	token, hasToken := m.store.Get(KeyToken)
	userJSON, hasUser := m.store.Get(KeyUser)

	if !hasToken && !hasUser {
		return Record{}
	}

	// Partial state is stale residue from an interrupted write or manual
	// tampering; purge it rather than guessing.
	if !hasToken || token == "" || !hasUser {
		m.logger.Warn("partial session state found, clearing",
			"has_token", hasToken && token != "",
			"has_user", hasUser,
		)
		m.mustClear()
		return Record{}
	}

	var profile Profile
	if err := json.Unmarshal([]byte(userJSON), &profile); err != nil {
		m.logger.Warn("stored profile is not parseable, clearing", "error", err.Error())
		m.mustClear()
		return Record{}
	}

	// A parseable profile with an unknown role must not become an
	// authenticated session with no matching role.
	if !profile.Role.Valid() {
		m.logger.Warn("stored profile has unknown role, clearing", "role", string(profile.Role))
		m.mustClear()
		return Record{}
	}

	return Record{Token: token, User: &profile}
}

// Token returns the bearer token of the current session, or "" when
// logged out. The API client reads it per request.
func (m *Manager) Token() string {
	return m.Session().Token
}

// IsAuthenticated reports whether both token and profile are present.
func (m *Manager) IsAuthenticated() bool {
	record := m.Session()
	return record.Token != "" && record.User != nil
}

// HasRole reports whether the session is authenticated as role. An absent
// role claim never matches.
func (m *Manager) HasRole(role routes.Role) bool {
	record := m.Session()
	return record.User != nil && record.User.Role == role
}

// IsApproved reports whether the authenticated account has been approved.
// A missing session or missing approval flag counts as not approved.
func (m *Manager) IsApproved() bool {
	record := m.Session()
	return record.User != nil && record.User.Approved
}

// Save persists a freshly obtained token and profile. This is the write
// the login flow performs.
func (m *Manager) Save(token string, profile Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := m.store.Set(KeyToken, token); err != nil {
		return err
	}
	return m.store.Set(KeyUser, string(data))
}

// ClearSession removes token and profile from storage. It is idempotent
// and has no side effects beyond storage.
func (m *Manager) ClearSession() error {
	if err := m.store.Remove(KeyToken); err != nil {
		return err
	}
	return m.store.Remove(KeyUser)
}

// Logout clears the session, broadcasts user-logged-out so UI components
// can reset their state, and sends the user to the login page. It is the
// one session operation with cross-component side effects.
func (m *Manager) Logout() {
	m.mustClear()

	if m.bus != nil {
		m.bus.Emit(events.UserLoggedOut, nil)
	}

	if m.nav != nil {
		m.nav.Navigate(routes.Login)
	}
}

// mustClear clears storage, logging rather than propagating a failure;
// session corruption handling never surfaces errors to callers.
func (m *Manager) mustClear() {
	if err := m.ClearSession(); err != nil {
		m.logger.Error("failed to clear session storage", "error", err.Error())
	}
}
