// Package tui is the terminal UI of the teller client. Every screen
// switch goes through the navigation router, so the guard governs each
// transition exactly as it would in a browser shell.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harborbank/teller/internal/api"
	"github.com/harborbank/teller/internal/events"
	"github.com/harborbank/teller/internal/log"
	"github.com/harborbank/teller/internal/nav"
	"github.com/harborbank/teller/internal/routes"
	"github.com/harborbank/teller/internal/session"
)

// Model represents the TUI application state
type Model struct {
	router   *nav.Router
	sessions *session.Manager
	client   *api.Client
	logger   *log.Logger

	// Route state; mirrors router.Current()
	route routes.Route

	// UI state
	width     int
	height    int
	ready     bool
	quitting  bool
	loading   bool
	statusMsg string
	lastError string

	spinner spinner.Model
	inputs  []textinput.Model
	focus   int

	// Screen data
	accounts     []api.Account
	customers    []api.Customer
	transactions []api.Transaction
	selected     int

	// Customer whose accounts the settings screen manages; picked on the
	// customer management screen.
	settingsCustomer *api.Customer

	// Session lifecycle; armed as a long-running listen command
	logoutCh chan struct{}

	styles Styles
}

// NewModel creates the TUI model. The router decides where the session
// actually starts: the model asks for root and lands wherever the guard
// sends it.
func NewModel(router *nav.Router, sessions *session.Manager, client *api.Client, bus *events.Bus, logger *log.Logger) Model {
	if logger == nil {
		logger = log.DefaultLogger()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	logoutCh := make(chan struct{}, 1)
	bus.On(events.UserLoggedOut, func(any) {
		select {
		case logoutCh <- struct{}{}:
		default:
		}
	})

	router.Navigate(routes.Root)

	m := Model{
		router:   router,
		sessions: sessions,
		client:   client,
		logger:   logger.With("component", "tui"),
		route:    router.Current(),
		spinner:  sp,
		logoutCh: logoutCh,
		styles:   DefaultStyles(),
	}
	m.prepareScreen()
	return m
}

// Init initializes the TUI model (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForLogout(), m.loadCmd())
}

// listenForLogout re-arms the session-ended listener.
func (m Model) listenForLogout() tea.Cmd {
	ch := m.logoutCh
	return func() tea.Msg {
		<-ch
		return sessionEndedMsg{}
	}
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionEndedMsg:
		// The bus told us the session ended; drop everything screen-local
		// and follow the router to wherever logout left it.
		m.resetScreenData()
		m.statusMsg = "Signed out."
		m.lastError = ""
		m.route = m.router.Current()
		m.prepareScreen()
		return m, m.listenForLogout()

	case loginResultMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.lastError = ""
		m.statusMsg = "Signed in."
		m.navigate(routes.Root)
		return m, m.loadCmd()

	case accountsMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.accounts = msg.accounts
		return m, nil

	case customersMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.customers = msg.customers
		if m.selected >= len(m.customers) {
			m.selected = 0
		}
		return m, nil

	case transactionsMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.transactions = msg.transactions
		return m, nil

	case ibanMatchesMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		if len(msg.matches) == 0 {
			m.lastError = "no accounts match that name"
			return m, nil
		}
		if m.route != routes.CustomerTransfer || len(m.inputs) < 2 {
			// The user already left the transfer screen; drop the result.
			return m, nil
		}
		match := msg.matches[0]
		m.inputs[1].SetValue(match.IBAN)
		m.lastError = ""
		m.statusMsg = fmt.Sprintf("Using %s's IBAN (%d match(es)).", match.FirstName, len(msg.matches))
		return m, nil

	case actionDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.lastError = ""
		m.statusMsg = msg.status
		return m, m.loadCmd()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Form screens route most keys into the focused input.
	if m.formScreen() {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.route == routes.Register {
				m.navigate(routes.Login)
			} else {
				m.navigate(routes.Root)
			}
			return m, m.loadCmd()
		case "ctrl+r":
			if m.route == routes.Login {
				m.navigate(routes.Register)
			}
			return m, nil
		case "ctrl+t":
			if m.route == routes.CustomerATM {
				m.navigate(routes.CustomerTransfer)
				return m, nil
			}
			if m.route == routes.EmployeeAccountSettings {
				return m.submitAccountHistory()
			}
			return m, nil
		case "left":
			if m.accountPicker() && m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "right":
			if m.accountPicker() && m.selected < len(m.accounts)-1 {
				m.selected++
			}
			return m, nil
		case "ctrl+w":
			if m.route == routes.CustomerATM {
				return m.submitATM(false)
			}
			return m, nil
		case "ctrl+x":
			if m.route == routes.EmployeeAccountSettings {
				return m.submitCloseAccount()
			}
			return m, nil
		case "ctrl+f":
			if m.route == routes.CustomerTransfer {
				return m.submitIBANSearch()
			}
			return m, nil
		case "tab", "down":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.cycleFocus(-1)
			return m, nil
		case "enter":
			return m.submitForm()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < m.listLength()-1 {
			m.selected++
		}
		return m, nil

	case "r":
		m.loading = true
		return m, m.loadCmd()

	case "L":
		if m.sessions.IsAuthenticated() {
			m.sessions.Logout()
		}
		return m, nil

	case "a":
		if m.route == routes.EmployeeApprovalQueue && m.selected < len(m.customers) {
			m.loading = true
			return m, m.approveCmd(m.customers[m.selected].ID)
		}
		return m, nil

	case "enter":
		if m.route == routes.Welcome && !m.sessions.IsAuthenticated() {
			m.navigate(routes.Login)
			return m, nil
		}
		if m.route == routes.EmployeeCustomerManagement && m.selected < len(m.customers) {
			customer := m.customers[m.selected]
			m.settingsCustomer = &customer
			m.navigate(routes.EmployeeAccountSettings)
			m.loading = true
			return m, m.loadCmd()
		}
		return m, nil
	}

	// Number keys switch screens; the guard decides whether the switch
	// actually happens.
	if target, ok := m.screenForKey(msg.String()); ok {
		m.navigate(target)
		return m, m.loadCmd()
	}

	return m, nil
}

// screenForKey maps number keys onto role-appropriate screens.
func (m Model) screenForKey(key string) (routes.Route, bool) {
	if _, err := strconv.Atoi(key); err != nil {
		return "", false
	}

	if m.sessions.HasRole(routes.RoleEmployee) {
		targets := map[string]routes.Route{
			"1": routes.EmployeeCustomerManagement,
			"2": routes.EmployeeApprovalQueue,
			"3": routes.EmployeeTransfer,
			"4": routes.EmployeeAllTransfers,
			"5": routes.EmployeeAccountSettings,
		}
		target, ok := targets[key]
		return target, ok
	}

	targets := map[string]routes.Route{
		"1": routes.CustomerATM,
		"2": routes.CustomerTransfer,
	}
	target, ok := targets[key]
	return target, ok
}

// navigate pushes the target through the router and syncs the model to
// wherever the guard landed it.
func (m *Model) navigate(target routes.Route) {
	m.router.Navigate(target)
	if m.route != m.router.Current() {
		m.route = m.router.Current()
		m.selected = 0
		m.lastError = ""
		m.prepareScreen()
	}
}

// prepareScreen builds the input fields for form screens.
func (m *Model) prepareScreen() {
	m.inputs = nil
	m.focus = 0

	newInput := func(placeholder string, secret bool) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 64
		if secret {
			in.EchoMode = textinput.EchoPassword
		}
		return in
	}

	switch m.route {
	case routes.Login:
		m.inputs = []textinput.Model{
			newInput("email", false),
			newInput("password", true),
		}
	case routes.Register:
		m.inputs = []textinput.Model{
			newInput("first name", false),
			newInput("last name", false),
			newInput("email", false),
			newInput("password", true),
		}
	case routes.CustomerATM:
		m.inputs = []textinput.Model{
			newInput("amount", false),
		}
	case routes.CustomerTransfer, routes.EmployeeTransfer:
		m.inputs = []textinput.Model{
			newInput("from IBAN", false),
			newInput("to IBAN, or a recipient name to look up", false),
			newInput("amount", false),
			newInput("description", false),
		}
	case routes.EmployeeAccountSettings:
		m.inputs = []textinput.Model{
			newInput("absolute limit", false),
			newInput("daily limit", false),
		}
		// History from a previously inspected account must not bleed in.
		m.transactions = nil
	}

	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

func (m *Model) cycleFocus(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// formScreen reports whether the current screen is input-driven.
func (m Model) formScreen() bool {
	return len(m.inputs) > 0
}

// accountPicker reports whether the current screen selects an account
// with the left/right keys alongside its inputs.
func (m Model) accountPicker() bool {
	return m.route == routes.CustomerATM || m.route == routes.EmployeeAccountSettings
}

func (m Model) listLength() int {
	switch m.route {
	case routes.EmployeeCustomerManagement, routes.EmployeeApprovalQueue:
		return len(m.customers)
	case routes.CustomerATM:
		return len(m.accounts)
	case routes.EmployeeAllTransfers:
		return len(m.transactions)
	default:
		return 0
	}
}

func (m *Model) resetScreenData() {
	m.accounts = nil
	m.customers = nil
	m.transactions = nil
	m.selected = 0
	m.settingsCustomer = nil
}

// submitForm handles enter on a form screen.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = strings.TrimSpace(in.Value())
	}

	switch m.route {
	case routes.Login:
		if values[0] == "" || values[1] == "" {
			m.lastError = "email and password are required"
			return m, nil
		}
		m.loading = true
		return m, m.loginCmd(values[0], values[1])

	case routes.Register:
		for _, v := range values {
			if v == "" {
				m.lastError = "all fields are required"
				return m, nil
			}
		}
		m.loading = true
		return m, m.registerCmd(api.RegisterRequest{
			FirstName: values[0],
			LastName:  values[1],
			Email:     values[2],
			Password:  values[3],
		})

	case routes.CustomerATM:
		return m.submitATM(true)

	case routes.EmployeeAccountSettings:
		return m.submitLimits()

	case routes.CustomerTransfer, routes.EmployeeTransfer:
		amount, err := strconv.ParseFloat(values[2], 64)
		if err != nil || amount <= 0 {
			m.lastError = "amount must be a positive number"
			return m, nil
		}
		m.loading = true
		return m, m.transferCmd(api.TransferRequest{
			FromIBAN:    values[0],
			ToIBAN:      values[1],
			Amount:      amount,
			Description: values[3],
		}, m.route == routes.EmployeeTransfer)
	}

	return m, nil
}

// submitATM runs a deposit or withdrawal against the selected account.
func (m Model) submitATM(deposit bool) (tea.Model, tea.Cmd) {
	if m.selected >= len(m.accounts) {
		m.lastError = "no account selected"
		return m, nil
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[0].Value()), 64)
	if err != nil || amount <= 0 {
		m.lastError = "amount must be a positive number"
		return m, nil
	}
	m.loading = true
	return m, m.atmCmd(m.accounts[m.selected].IBAN, amount, deposit)
}

// submitLimits applies the entered limits to the selected account.
func (m Model) submitLimits() (tea.Model, tea.Cmd) {
	if m.selected >= len(m.accounts) {
		m.lastError = "no account selected"
		return m, nil
	}
	absolute, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[0].Value()), 64)
	if err != nil {
		m.lastError = "absolute limit must be a number"
		return m, nil
	}
	daily, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[1].Value()), 64)
	if err != nil || daily < 0 {
		m.lastError = "daily limit must be a non-negative number"
		return m, nil
	}
	m.loading = true
	return m, m.limitsCmd(m.accounts[m.selected].IBAN, api.LimitUpdateRequest{
		AbsoluteLimit: absolute,
		DailyLimit:    daily,
	})
}

// submitCloseAccount deactivates the selected account.
func (m Model) submitCloseAccount() (tea.Model, tea.Cmd) {
	if m.selected >= len(m.accounts) {
		m.lastError = "no account selected"
		return m, nil
	}
	m.loading = true
	return m, m.closeAccountCmd(m.accounts[m.selected].IBAN)
}

// submitAccountHistory fetches the selected account's transactions.
func (m Model) submitAccountHistory() (tea.Model, tea.Cmd) {
	if m.selected >= len(m.accounts) {
		m.lastError = "no account selected"
		return m, nil
	}
	m.loading = true
	return m, m.accountTxCmd(m.accounts[m.selected].IBAN)
}

// submitIBANSearch resolves the recipient field by name when it does
// not already hold an IBAN.
func (m Model) submitIBANSearch() (tea.Model, tea.Cmd) {
	fields := strings.Fields(m.inputs[1].Value())
	if len(fields) < 2 {
		m.lastError = "enter a first and last name to look up an IBAN"
		return m, nil
	}
	m.loading = true
	return m, m.searchIBANCmd(fields[0], strings.Join(fields[1:], " "))
}

// View renders the current screen (required by Bubble Tea)
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.render()
}

// sessionEndedMsg is delivered when the event bus reports a logout.
type sessionEndedMsg struct{}
