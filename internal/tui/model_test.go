package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborbank/teller/internal/api"
	"github.com/harborbank/teller/internal/events"
	"github.com/harborbank/teller/internal/guard"
	"github.com/harborbank/teller/internal/nav"
	"github.com/harborbank/teller/internal/routes"
	"github.com/harborbank/teller/internal/session"
	"github.com/harborbank/teller/internal/storage"
)

// newTestModel wires a model the way the ui command does, backed by an
// in-memory store. A nil profile starts the model signed out.
func newTestModel(t *testing.T, profile *session.Profile) (Model, *session.Manager) {
	t.Helper()

	bus := events.NewBus(nil)
	sessions := session.NewManager(storage.NewMemoryStore(), bus, nil)
	if profile != nil {
		require.NoError(t, sessions.Save("tok-test", *profile))
	}

	router := nav.NewRouter(routes.Login, nil)
	g := guard.New(sessions, nil)
	router.BeforeEach(func(target, from routes.Route) guard.Outcome {
		return g.Evaluate(target, from)
	})
	sessions.SetNavigator(router)

	return NewModel(router, sessions, api.NewClient(""), bus, nil), sessions
}

func TestSignedOutModelStartsOnLogin(t *testing.T) {
	m, _ := newTestModel(t, nil)

	assert.Equal(t, routes.Login, m.route)
	assert.Len(t, m.inputs, 2)
	assert.True(t, m.formScreen())
}

func TestEmployeeStartsOnCustomerManagement(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{
		ID: 1, Email: "emp@harborbank.test", Role: routes.RoleEmployee,
	})

	assert.Equal(t, routes.EmployeeCustomerManagement, m.route)
}

func TestUnapprovedCustomerStartsOnWelcome(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{
		ID: 2, Email: "new@harborbank.test", Role: routes.RoleCustomer, Approved: false,
	})

	assert.Equal(t, routes.Welcome, m.route)
}

func TestApprovedCustomerStartsOnATM(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{
		ID: 3, Email: "anna@harborbank.test", Role: routes.RoleCustomer, Approved: true,
	})

	assert.Equal(t, routes.CustomerATM, m.route)
}

func TestScreenKeysFollowRole(t *testing.T) {
	employee, _ := newTestModel(t, &session.Profile{ID: 1, Role: routes.RoleEmployee})
	customer, _ := newTestModel(t, &session.Profile{ID: 2, Role: routes.RoleCustomer, Approved: true})

	target, ok := employee.screenForKey("4")
	require.True(t, ok)
	assert.Equal(t, routes.EmployeeAllTransfers, target)

	target, ok = customer.screenForKey("2")
	require.True(t, ok)
	assert.Equal(t, routes.CustomerTransfer, target)

	_, ok = customer.screenForKey("4")
	assert.False(t, ok, "customers have no fourth screen")

	_, ok = employee.screenForKey("x")
	assert.False(t, ok)
}

func TestNavigateBlockedWhileSignedOut(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.navigate(routes.CustomerATM)

	assert.Equal(t, routes.Login, m.route, "protected screens stay out of reach")
}

func TestEmptyLoginFormRejectedLocally(t *testing.T) {
	m, _ := newTestModel(t, nil)

	updated, cmd := m.submitForm()

	assert.Nil(t, cmd, "no backend call for an empty form")
	assert.NotEmpty(t, updated.(Model).lastError)
}

func TestLogoutKeyEndsSessionAndReturnsToLogin(t *testing.T) {
	m, sessions := newTestModel(t, &session.Profile{ID: 1, Role: routes.RoleEmployee})
	require.Equal(t, routes.EmployeeCustomerManagement, m.route)

	updated, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	got := updated.(Model)

	assert.False(t, sessions.IsAuthenticated())
	assert.Equal(t, routes.Login, got.router.Current())
}

func TestEnterOpensAccountSettingsForSelectedCustomer(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{ID: 1, Role: routes.RoleEmployee})
	m.customers = []api.Customer{
		{ID: 7, FirstName: "Anna", LastName: "Kovacs"},
		{ID: 8, FirstName: "Ben", LastName: "de Vries"},
	}
	m.selected = 1

	updated, cmd := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	assert.Equal(t, routes.EmployeeAccountSettings, got.route)
	require.NotNil(t, got.settingsCustomer)
	assert.Equal(t, int64(8), got.settingsCustomer.ID)
	assert.NotNil(t, cmd, "the selected customer's accounts load immediately")
	assert.Len(t, got.inputs, 2, "limit fields are prepared")
}

func TestAccountSettingsWithoutCustomerLoadsNothing(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{ID: 1, Role: routes.RoleEmployee})

	m.navigate(routes.EmployeeAccountSettings)

	assert.Equal(t, routes.EmployeeAccountSettings, m.route)
	assert.Nil(t, m.settingsCustomer)
	assert.Nil(t, m.loadCmd(), "no customer picked means nothing to fetch")
}

func TestLimitsFormRejectsBadInput(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{ID: 1, Role: routes.RoleEmployee})
	customer := api.Customer{ID: 7, FirstName: "Anna"}
	m.settingsCustomer = &customer
	m.navigate(routes.EmployeeAccountSettings)
	m.accounts = []api.Account{{IBAN: "NL01HARB0000000001"}}
	m.inputs[0].SetValue("not-a-number")
	m.inputs[1].SetValue("500")

	updated, cmd := m.submitForm()

	assert.Nil(t, cmd, "no backend call for a malformed limit")
	assert.NotEmpty(t, updated.(Model).lastError)
}

func TestCloseAccountNeedsSelection(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{ID: 1, Role: routes.RoleEmployee})
	customer := api.Customer{ID: 7}
	m.settingsCustomer = &customer
	m.navigate(routes.EmployeeAccountSettings)

	updated, cmd := m.submitCloseAccount()

	assert.Nil(t, cmd)
	assert.NotEmpty(t, updated.(Model).lastError)
}

func TestAccountHistoryNeedsSelection(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{ID: 1, Role: routes.RoleEmployee})
	customer := api.Customer{ID: 7}
	m.settingsCustomer = &customer
	m.navigate(routes.EmployeeAccountSettings)

	updated, cmd := m.submitAccountHistory()

	assert.Nil(t, cmd)
	assert.NotEmpty(t, updated.(Model).lastError)

	m.accounts = []api.Account{{IBAN: "NL01HARB0000000001"}}
	_, cmd = m.submitAccountHistory()
	assert.NotNil(t, cmd, "a selected account has history to fetch")
}

func TestIBANLookupFillsRecipientField(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{ID: 3, Role: routes.RoleCustomer, Approved: true})
	m.navigate(routes.CustomerTransfer)
	require.Len(t, m.inputs, 4)

	updated, _ := m.Update(ibanMatchesMsg{matches: []api.IBANMatch{
		{FirstName: "Anna", LastName: "Kovacs", IBAN: "NL01HARB0000000009"},
	}})
	got := updated.(Model)

	assert.Equal(t, "NL01HARB0000000009", got.inputs[1].Value())
	assert.Empty(t, got.lastError)
}

func TestIBANLookupNeedsFullName(t *testing.T) {
	m, _ := newTestModel(t, &session.Profile{ID: 3, Role: routes.RoleCustomer, Approved: true})
	m.navigate(routes.CustomerTransfer)
	m.inputs[1].SetValue("Anna")

	updated, cmd := m.submitIBANSearch()

	assert.Nil(t, cmd, "a bare first name is not searchable")
	assert.NotEmpty(t, updated.(Model).lastError)
}

func TestSessionEndedMessageResyncsModel(t *testing.T) {
	m, sessions := newTestModel(t, &session.Profile{ID: 1, Role: routes.RoleEmployee})
	m.customers = []api.Customer{{ID: 9}}

	sessions.Logout()
	updated, _ := m.Update(sessionEndedMsg{})
	got := updated.(Model)

	assert.Equal(t, routes.Login, got.route)
	assert.Empty(t, got.customers)
}
