package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyForDeclaredRoutes(t *testing.T) {
	tests := []struct {
		name             string
		route            Route
		requiresAuth     bool
		requiredRole     Role
		requiresApproval bool
	}{
		{"welcome is public", Welcome, false, "", false},
		{"login is public", Login, false, "", false},
		{"register is public", Register, false, "", false},
		{"root is public", Root, false, "", false},
		{"not-found is public", NotFound, false, "", false},
		{"customer atm", CustomerATM, true, RoleCustomer, true},
		{"customer transfer", CustomerTransfer, true, RoleCustomer, true},
		{"employee customer management", EmployeeCustomerManagement, true, RoleEmployee, false},
		{"employee approval queue", EmployeeApprovalQueue, true, RoleEmployee, false},
		{"employee transfer", EmployeeTransfer, true, RoleEmployee, false},
		{"employee account settings", EmployeeAccountSettings, true, RoleEmployee, false},
		{"employee all transfers", EmployeeAllTransfers, true, RoleEmployee, false},
		{"employee dashboard alias", EmployeeDashboard, true, RoleEmployee, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := PolicyFor(tt.route)
			assert.Equal(t, tt.route, policy.Route)
			assert.Equal(t, tt.requiresAuth, policy.RequiresAuth, "RequiresAuth")
			assert.Equal(t, tt.requiredRole, policy.RequiredRole, "RequiredRole")
			assert.Equal(t, tt.requiresApproval, policy.RequiresApproval, "RequiresApproval")
		})
	}
}

func TestPolicyForUnknownRouteFallsBackToNotFound(t *testing.T) {
	policy := PolicyFor("customer-vault")

	assert.Equal(t, NotFound, policy.Route)
	assert.False(t, policy.RequiresAuth, "not-found fallback must be public")
}

func TestEmployeeRoutesAreNeverApprovalGated(t *testing.T) {
	for _, policy := range All() {
		if policy.RequiredRole == RoleEmployee {
			assert.False(t, policy.RequiresApproval,
				"employee route %s must not be approval-gated", policy.Route)
		}
	}
}

func TestAllListsEveryDeclaredRouteOnce(t *testing.T) {
	policies := All()
	require.Len(t, policies, len(table))

	seen := make(map[Route]bool)
	for _, policy := range policies {
		assert.False(t, seen[policy.Route], "route %s listed twice", policy.Route)
		seen[policy.Route] = true
	}
}

func TestResolveFollowsAliases(t *testing.T) {
	assert.Equal(t, EmployeeCustomerManagement, Resolve(EmployeeDashboard))
	assert.Equal(t, CustomerATM, Resolve(CustomerATM), "non-aliased routes resolve to themselves")
	assert.Equal(t, Route("unknown"), Resolve("unknown"))
}

func TestEntryPages(t *testing.T) {
	assert.True(t, EntryPages[Login])
	assert.True(t, EntryPages[Register])
	assert.True(t, EntryPages[Welcome])
	assert.False(t, EntryPages[NotFound], "not-found is public but not an entry page")
	assert.False(t, EntryPages[Root])
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleEmployee.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("ADMIN").Valid())
}
