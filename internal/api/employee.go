package api

import (
	"context"
	"fmt"
	"net/url"
)

const employeePrefix = "/api/employee"

// UnapprovedCustomers lists customers waiting for approval
func (c *Client) UnapprovedCustomers(ctx context.Context) ([]Customer, error) {
	resp, err := c.doRequest(ctx, "GET", employeePrefix+"/customers/unapproved", nil)
	if err != nil {
		return nil, err
	}

	var customers []Customer
	if err := parseResponse(resp, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

// ApproveCustomer marks a customer account as approved
func (c *Client) ApproveCustomer(ctx context.Context, customerID int64) error {
	req := map[string]bool{"approved": true}

	resp, err := c.doRequest(ctx, "POST", fmt.Sprintf("%s/customers/%d/approve", employeePrefix, customerID), req)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// Customers lists all customers
func (c *Client) Customers(ctx context.Context) ([]Customer, error) {
	resp, err := c.doRequest(ctx, "GET", employeePrefix+"/customers", nil)
	if err != nil {
		return nil, err
	}

	var customers []Customer
	if err := parseResponse(resp, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

// CustomerAccounts lists a customer's accounts
func (c *Client) CustomerAccounts(ctx context.Context, customerID int64) ([]Account, error) {
	resp, err := c.doRequest(ctx, "GET", fmt.Sprintf("%s/accounts/customer/%d", employeePrefix, customerID), nil)
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := parseResponse(resp, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// AccountTransactions lists the transactions of one account
func (c *Client) AccountTransactions(ctx context.Context, iban string) ([]Transaction, error) {
	resp, err := c.doRequest(ctx, "GET", employeePrefix+"/transactions/account/"+url.PathEscape(iban), nil)
	if err != nil {
		return nil, err
	}

	var transactions []Transaction
	if err := parseResponse(resp, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// AllTransactions lists every transaction in the bank
func (c *Client) AllTransactions(ctx context.Context) ([]Transaction, error) {
	resp, err := c.doRequest(ctx, "GET", employeePrefix+"/transactions", nil)
	if err != nil {
		return nil, err
	}

	var transactions []Transaction
	if err := parseResponse(resp, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// EmployeeTransfer performs a transfer on behalf of a customer
func (c *Client) EmployeeTransfer(ctx context.Context, req TransferRequest) error {
	resp, err := c.doRequest(ctx, "POST", employeePrefix+"/transfer", req)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// UpdateAccountLimits adjusts the limits of an account
func (c *Client) UpdateAccountLimits(ctx context.Context, iban string, req LimitUpdateRequest) error {
	resp, err := c.doRequest(ctx, "PUT", fmt.Sprintf("%s/accounts/%s/limits", employeePrefix, url.PathEscape(iban)), req)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// CloseAccount deactivates an account
func (c *Client) CloseAccount(ctx context.Context, iban string) error {
	resp, err := c.doRequest(ctx, "DELETE", employeePrefix+"/accounts/"+url.PathEscape(iban), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// SearchCustomers finds customers by name
func (c *Client) SearchCustomers(ctx context.Context, firstName, lastName string) ([]Customer, error) {
	query := url.Values{}
	query.Set("firstName", firstName)
	query.Set("lastName", lastName)

	resp, err := c.doRequest(ctx, "GET", employeePrefix+"/customers/search?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var customers []Customer
	if err := parseResponse(resp, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}
