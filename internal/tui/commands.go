package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harborbank/teller/internal/api"
	"github.com/harborbank/teller/internal/routes"
)

// requestTimeout bounds every backend call issued from the TUI.
const requestTimeout = 15 * time.Second

type loginResultMsg struct {
	err error
}

type accountsMsg struct {
	accounts []api.Account
	err      error
}

type customersMsg struct {
	customers []api.Customer
	err       error
}

type transactionsMsg struct {
	transactions []api.Transaction
	err          error
}

type actionDoneMsg struct {
	status string
	err    error
}

type ibanMatchesMsg struct {
	matches []api.IBANMatch
	err     error
}

// loadCmd fetches whatever data the current screen shows. Screens
// without backend data return nil so Update has nothing to wait for.
func (m Model) loadCmd() tea.Cmd {
	switch m.route {
	case routes.CustomerATM, routes.CustomerTransfer:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			accounts, err := m.client.Accounts(ctx)
			return accountsMsg{accounts: accounts, err: err}
		}

	case routes.EmployeeCustomerManagement:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			customers, err := m.client.Customers(ctx)
			return customersMsg{customers: customers, err: err}
		}

	case routes.EmployeeApprovalQueue:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			customers, err := m.client.UnapprovedCustomers(ctx)
			return customersMsg{customers: customers, err: err}
		}

	case routes.EmployeeAllTransfers:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			transactions, err := m.client.AllTransactions(ctx)
			return transactionsMsg{transactions: transactions, err: err}
		}

	case routes.EmployeeAccountSettings:
		customer := m.settingsCustomer
		if customer == nil {
			return nil
		}
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			accounts, err := m.client.CustomerAccounts(ctx, customer.ID)
			return accountsMsg{accounts: accounts, err: err}
		}
	}

	return nil
}

// loginCmd authenticates and persists the session before reporting back.
func (m Model) loginCmd(email, password string) tea.Cmd {
	client := m.client
	sessions := m.sessions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.Login(ctx, email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := sessions.Save(resp.Token, resp.User); err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{}
	}
}

// registerCmd creates the account and signs in with it.
func (m Model) registerCmd(req api.RegisterRequest) tea.Cmd {
	client := m.client
	sessions := m.sessions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.Register(ctx, req)
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := sessions.Save(resp.Token, resp.User); err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{}
	}
}

func (m Model) transferCmd(req api.TransferRequest, asEmployee bool) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if asEmployee {
			err = client.EmployeeTransfer(ctx, req)
		} else {
			err = client.Transfer(ctx, req)
		}
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Transferred %.2f to %s.", req.Amount, req.ToIBAN)}
	}
}

func (m Model) atmCmd(iban string, amount float64, deposit bool) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if deposit {
			if err := client.ATMDeposit(ctx, iban, amount); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: fmt.Sprintf("Deposited %.2f into %s.", amount, iban)}
		}
		if err := client.ATMWithdraw(ctx, iban, amount); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Withdrew %.2f from %s.", amount, iban)}
	}
}

func (m Model) limitsCmd(iban string, req api.LimitUpdateRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.UpdateAccountLimits(ctx, iban, req); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Updated limits on %s.", iban)}
	}
}

func (m Model) closeAccountCmd(iban string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.CloseAccount(ctx, iban); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Closed account %s.", iban)}
	}
}

func (m Model) accountTxCmd(iban string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		transactions, err := client.AccountTransactions(ctx, iban)
		return transactionsMsg{transactions: transactions, err: err}
	}
}

func (m Model) searchIBANCmd(firstName, lastName string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		matches, err := client.SearchIBANs(ctx, firstName, lastName)
		return ibanMatchesMsg{matches: matches, err: err}
	}
}

func (m Model) approveCmd(customerID int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.ApproveCustomer(ctx, customerID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Approved customer %d.", customerID)}
	}
}
