package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborbank/teller/internal/errors"
	"github.com/harborbank/teller/internal/routes"
)

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "anna@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"token": "tok-abc",
			"user": {"id": 7, "email": "anna@example.com", "role": "CUSTOMER", "approved": true}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), "anna@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.Token)
	assert.Equal(t, routes.RoleCustomer, resp.User.Role)
	assert.True(t, resp.User.Approved)
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), "anna@example.com", "wrong")

	require.Error(t, err)
	var tellerErr *errors.TellerError
	require.ErrorAs(t, err, &tellerErr)
	assert.Equal(t, errors.ErrCodeAPIAuthFailed, tellerErr.Code)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUnreachableBackend(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Login(context.Background(), "anna@example.com", "hunter2")

	require.Error(t, err)
	var tellerErr *errors.TellerError
	require.ErrorAs(t, err, &tellerErr)
	assert.Equal(t, errors.ErrCodeAPIUnreachable, tellerErr.Code)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL).WithTokenSource(func() string { return "tok-xyz" })
	_, err := client.Accounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-xyz", gotAuth)
}

func TestNoAuthorizationHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL).WithTokenSource(func() string { return "" })
	_, err := client.Accounts(context.Background())

	require.NoError(t, err)
	assert.False(t, hasHeader, "no Authorization header expected, got %q", gotAuth)
}

func TestAccountsDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customer/accounts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"iban": "NL01HARB0000000001", "accountType": "CHECKING", "balance": 120.5, "absoluteLimit": -500, "dailyLimit": 1000, "active": true},
			{"iban": "NL01HARB0000000002", "accountType": "SAVINGS", "balance": 900, "absoluteLimit": 0, "dailyLimit": 250, "active": false}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	accounts, err := client.Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "NL01HARB0000000001", accounts[0].IBAN)
	assert.Equal(t, "CHECKING", accounts[0].AccountType)
	assert.InDelta(t, 120.5, accounts[0].Balance, 0.001)
	assert.True(t, accounts[0].Active)
	assert.False(t, accounts[1].Active)
}

func TestApproveCustomerRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/employee/customers/42/approve", r.URL.Path)

		var body map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body["approved"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.ApproveCustomer(context.Background(), 42))
}

func TestUpdateAccountLimitsRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/employee/accounts/NL01HARB0000000001/limits", r.URL.Path)

		var body LimitUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.InDelta(t, -250.0, body.AbsoluteLimit, 0.001)
		assert.InDelta(t, 500.0, body.DailyLimit, 0.001)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdateAccountLimits(context.Background(), "NL01HARB0000000001", LimitUpdateRequest{
		AbsoluteLimit: -250,
		DailyLimit:    500,
	})

	require.NoError(t, err)
}

func TestCloseAccountRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/employee/accounts/NL01HARB0000000002", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.CloseAccount(context.Background(), "NL01HARB0000000002"))
}

func TestAccountTransactionsRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/employee/transactions/account/NL01HARB0000000001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "fromIban": "NL01HARB0000000001", "toIban": "NL01HARB0000000002", "amount": 12.5}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	transactions, err := client.AccountTransactions(context.Background(), "NL01HARB0000000001")

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "NL01HARB0000000002", transactions[0].ToIBAN)
}

func TestSearchIBANsRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/customer/accounts/search-iban", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Anna", body["firstName"])
		assert.Equal(t, "Kovacs", body["lastName"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"firstName": "Anna", "lastName": "Kovacs", "iban": "NL01HARB0000000009"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	matches, err := client.SearchIBANs(context.Background(), "Anna", "Kovacs")

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "NL01HARB0000000009", matches[0].IBAN)
}

func TestSearchCustomersQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/employee/customers/search", r.URL.Path)
		assert.Equal(t, "Anna", r.URL.Query().Get("firstName"))
		assert.Equal(t, "Kovacs", r.URL.Query().Get("lastName"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "firstName": "Anna", "lastName": "Kovacs", "approved": true}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	customers, err := client.SearchCustomers(context.Background(), "Anna", "Kovacs")

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Anna", customers[0].FirstName)
}

func TestErrorBodyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Customers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "boom")
}

func TestDefaultBaseURL(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
}
