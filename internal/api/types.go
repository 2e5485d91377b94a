package api

import "time"

// Account is a bank account as the backend reports it.
type Account struct {
	IBAN          string  `json:"iban"`
	AccountType   string  `json:"accountType"`
	Balance       float64 `json:"balance"`
	AbsoluteLimit float64 `json:"absoluteLimit"`
	DailyLimit    float64 `json:"dailyLimit"`
	Active        bool    `json:"active"`
}

// Transaction is one ledger entry.
type Transaction struct {
	ID        int64     `json:"id"`
	FromIBAN  string    `json:"fromIban"`
	ToIBAN    string    `json:"toIban"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Initiator string    `json:"initiator"`
}

// TransferRequest asks the backend to move money between accounts.
type TransferRequest struct {
	FromIBAN    string  `json:"fromIban"`
	ToIBAN      string  `json:"toIban"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// AmountRequest carries an IBAN and amount for ATM operations.
type AmountRequest struct {
	IBAN   string  `json:"iban"`
	Amount float64 `json:"amount"`
}

// Customer is a bank customer as employees see them.
type Customer struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Approved  bool   `json:"approved"`
}

// IBANMatch is one result of a search for a counterparty's IBAN.
type IBANMatch struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IBAN      string `json:"iban"`
}

// LimitUpdateRequest adjusts an account's limits.
type LimitUpdateRequest struct {
	AbsoluteLimit float64 `json:"absoluteLimit"`
	DailyLimit    float64 `json:"dailyLimit"`
}
