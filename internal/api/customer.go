package api

import (
	"context"
	"fmt"
)

const customerPrefix = "/customer"

// Accounts returns the authenticated customer's accounts
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	resp, err := c.doRequest(ctx, "GET", customerPrefix+"/accounts", nil)
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := parseResponse(resp, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// ATMDeposit deposits cash into the given account
func (c *Client) ATMDeposit(ctx context.Context, iban string, amount float64) error {
	req := AmountRequest{IBAN: iban, Amount: amount}

	resp, err := c.doRequest(ctx, "POST", customerPrefix+"/transactions/atm/deposit", req)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// ATMWithdraw withdraws cash from the given account
func (c *Client) ATMWithdraw(ctx context.Context, iban string, amount float64) error {
	req := AmountRequest{IBAN: iban, Amount: amount}

	resp, err := c.doRequest(ctx, "POST", customerPrefix+"/transactions/atm/withdraw", req)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// Transfer moves money from one of the customer's accounts
func (c *Client) Transfer(ctx context.Context, req TransferRequest) error {
	resp, err := c.doRequest(ctx, "POST", customerPrefix+"/transactions/transfer", req)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// SearchIBANs finds counterparty IBANs by name
func (c *Client) SearchIBANs(ctx context.Context, firstName, lastName string) ([]IBANMatch, error) {
	req := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
	}

	resp, err := c.doRequest(ctx, "POST", customerPrefix+"/accounts/search-iban", req)
	if err != nil {
		return nil, err
	}

	var matches []IBANMatch
	if err := parseResponse(resp, &matches); err != nil {
		return nil, fmt.Errorf("failed to search IBANs: %w", err)
	}

	return matches, nil
}
