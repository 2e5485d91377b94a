package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harborbank/teller/internal/routes"
)

// render draws the screen for the current route.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.route {
	case routes.Login:
		b.WriteString(m.renderLogin())
	case routes.Register:
		b.WriteString(m.renderRegister())
	case routes.Welcome:
		b.WriteString(m.renderWelcome())
	case routes.CustomerATM:
		b.WriteString(m.renderATM())
	case routes.CustomerTransfer, routes.EmployeeTransfer:
		b.WriteString(m.renderTransfer())
	case routes.EmployeeCustomerManagement:
		b.WriteString(m.renderCustomers("Customers"))
	case routes.EmployeeApprovalQueue:
		b.WriteString(m.renderCustomers("Approval Queue"))
	case routes.EmployeeAllTransfers:
		b.WriteString(m.renderTransactions())
	case routes.EmployeeAccountSettings:
		b.WriteString(m.renderAccountSettings())
	default:
		b.WriteString(m.styles.Muted.Render("Nothing here."))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Harbor Bank Teller")

	who := "not signed in"
	if rec := m.sessions.Session(); rec.User != nil {
		who = fmt.Sprintf("%s %s (%s)", rec.User.FirstName, rec.User.LastName, rec.User.Role)
		if rec.User.Role == routes.RoleCustomer && !rec.User.Approved {
			who += " pending approval"
		}
	}

	status := ""
	if m.loading {
		status = m.spinner.View() + " loading"
	} else if m.lastError != "" {
		status = m.styles.Error.Render(m.lastError)
	} else if m.statusMsg != "" {
		status = m.styles.Success.Render(m.statusMsg)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		title, "  ", m.styles.Subtitle.Render(who))
	if status == "" {
		return line
	}
	return line + "\n" + status
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Sign In"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderRegister() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Create Account"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Welcome to Harbor Bank"))
	b.WriteString("\n\n")
	if m.sessions.IsAuthenticated() {
		b.WriteString("Your account is waiting for an employee to approve it.\n")
		b.WriteString("Once approved you can use the ATM and make transfers.\n")
	} else {
		b.WriteString("Press enter to sign in.\n")
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderATM() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("ATM"))
	b.WriteString("\n\n")

	if len(m.accounts) == 0 {
		b.WriteString(m.styles.Muted.Render("No accounts."))
		b.WriteString("\n")
	}
	for i, acct := range m.accounts {
		line := fmt.Sprintf("%s  %-8s  %10.2f", acct.IBAN, acct.AccountType, acct.Balance)
		if !acct.Active {
			line += "  (closed)"
		}
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.inputs) > 0 {
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderTransfer() string {
	title := "Transfer"
	if m.route == routes.EmployeeTransfer {
		title = "Transfer (on behalf of a customer)"
	}

	var b strings.Builder
	b.WriteString(m.styles.Status.Render(title))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderCustomers(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render(title))
	b.WriteString("\n\n")

	if len(m.customers) == 0 {
		b.WriteString(m.styles.Muted.Render("No customers."))
		b.WriteString("\n")
	}
	for i, cust := range m.customers {
		approved := "pending"
		if cust.Approved {
			approved = "approved"
		}
		line := fmt.Sprintf("%4d  %-20s  %-28s  %s",
			cust.ID, cust.FirstName+" "+cust.LastName, cust.Email, approved)
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderAccountSettings() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Account Settings"))
	b.WriteString("\n\n")

	if m.settingsCustomer == nil {
		b.WriteString("Pick a customer on the customer management screen first\n")
		b.WriteString(m.styles.Muted.Render("(press enter on a customer to manage their accounts)"))
		b.WriteString("\n")
		return m.styles.Border.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("Customer: %s %s (%d)\n\n",
		m.settingsCustomer.FirstName, m.settingsCustomer.LastName, m.settingsCustomer.ID))

	if len(m.accounts) == 0 {
		b.WriteString(m.styles.Muted.Render("No accounts."))
		b.WriteString("\n")
	}
	for i, acct := range m.accounts {
		line := fmt.Sprintf("%s  %-8s  bal %10.2f  abs %10.2f  daily %10.2f",
			acct.IBAN, acct.AccountType, acct.Balance, acct.AbsoluteLimit, acct.DailyLimit)
		if !acct.Active {
			line += "  (closed)"
		}
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if len(m.transactions) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Recent transactions"))
		b.WriteString("\n")
		for i, tx := range m.transactions {
			if i == 10 {
				b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  ... %d more", len(m.transactions)-i)))
				b.WriteString("\n")
				break
			}
			b.WriteString(fmt.Sprintf("  %s  %s -> %s  %10.2f\n",
				tx.Timestamp.Format("2006-01-02 15:04"), tx.FromIBAN, tx.ToIBAN, tx.Amount))
		}
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderTransactions() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("All Transfers"))
	b.WriteString("\n\n")

	if len(m.transactions) == 0 {
		b.WriteString(m.styles.Muted.Render("No transactions."))
		b.WriteString("\n")
	}
	for i, tx := range m.transactions {
		line := fmt.Sprintf("%s  %s -> %s  %10.2f",
			tx.Timestamp.Format("2006-01-02 15:04"), tx.FromIBAN, tx.ToIBAN, tx.Amount)
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderFooter() string {
	keys := m.footerKeys()

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.Key.Render(k[0])+" "+m.styles.KeyDesc.Render(k[1]))
	}
	return m.styles.Help.Render(strings.Join(parts, "  "))
}

func (m Model) footerKeys() [][2]string {
	switch m.route {
	case routes.Login:
		return [][2]string{
			{"tab", "next field"}, {"enter", "sign in"}, {"ctrl+r", "register"}, {"ctrl+c", "quit"},
		}
	case routes.Register:
		return [][2]string{
			{"tab", "next field"}, {"enter", "create"}, {"esc", "back"}, {"ctrl+c", "quit"},
		}
	case routes.Welcome:
		if m.sessions.IsAuthenticated() {
			return [][2]string{{"L", "sign out"}, {"q", "quit"}}
		}
		return [][2]string{{"enter", "sign in"}, {"q", "quit"}}
	case routes.CustomerATM:
		return [][2]string{
			{"←/→", "account"}, {"enter", "deposit"}, {"ctrl+w", "withdraw"},
			{"ctrl+t", "transfer"}, {"esc", "reload"}, {"ctrl+c", "quit"},
		}
	case routes.CustomerTransfer:
		return [][2]string{
			{"tab", "next field"}, {"enter", "send"}, {"ctrl+f", "find IBAN by name"},
			{"esc", "back"}, {"ctrl+c", "quit"},
		}
	case routes.EmployeeTransfer:
		return [][2]string{
			{"tab", "next field"}, {"enter", "send"}, {"esc", "back"}, {"ctrl+c", "quit"},
		}
	case routes.EmployeeAccountSettings:
		return [][2]string{
			{"←/→", "account"}, {"enter", "apply limits"}, {"ctrl+t", "transactions"},
			{"ctrl+x", "close account"}, {"esc", "back"}, {"ctrl+c", "quit"},
		}
	case routes.EmployeeApprovalQueue:
		return [][2]string{
			{"↑/↓", "select"}, {"a", "approve"}, {"r", "reload"},
			{"1-5", "screens"}, {"L", "sign out"}, {"q", "quit"},
		}
	case routes.EmployeeCustomerManagement:
		return [][2]string{
			{"↑/↓", "select"}, {"enter", "account settings"}, {"r", "reload"},
			{"1-5", "screens"}, {"L", "sign out"}, {"q", "quit"},
		}
	case routes.EmployeeAllTransfers:
		return [][2]string{
			{"↑/↓", "select"}, {"r", "reload"}, {"1-5", "screens"}, {"L", "sign out"}, {"q", "quit"},
		}
	}
	return [][2]string{{"q", "quit"}}
}
