// Package routes declares the application's route identifiers and the
// static access policy attached to each one. The table is the declarative
// contract every screen supplies: whether it needs a session, which role,
// and whether the account must be approved.
package routes

// Route identifies one navigable screen.
type Route string

// Declared routes.
const (
	// Pre-authentication entry pages.
	Login    Route = "login"
	Register Route = "register"

	// Welcome doubles as the waiting page for unapproved customers.
	Welcome Route = "welcome"

	// Root is never a destination of its own; the guard resolves it to a
	// role-appropriate landing page or to login.
	Root Route = "/"

	// NotFound is the public catch-all for unknown targets.
	NotFound Route = "not-found"

	// Customer screens.
	CustomerATM      Route = "customer-atm"
	CustomerTransfer Route = "customer-transfer"

	// Employee screens.
	EmployeeCustomerManagement Route = "employee-customer-management"
	EmployeeApprovalQueue      Route = "employee-approval-queue"
	EmployeeTransfer           Route = "employee-transfer"
	EmployeeAccountSettings    Route = "employee-account-settings"
	EmployeeAllTransfers       Route = "employee-all-transfers"

	// EmployeeDashboard is an alias kept for deep links; it resolves to
	// customer management.
	EmployeeDashboard Route = "employee-dashboard"
)

// Role is the access level a route may require.
type Role string

// Assigned roles.
const (
	RoleCustomer Role = "CUSTOMER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is a known role. Absence of a role claim is
// never a wildcard match.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleEmployee
}

// EntryPages are the pre-authentication pages an authenticated user is
// redirected away from, toward a role-appropriate home. This is
// deliberately narrower than "public": not-found is public but is not an
// entry page. Welcome is listed even though it is the waiting page for
// unapproved customers; the guard allows it when it already is the
// user's home.
var EntryPages = map[Route]bool{
	Login:    true,
	Register: true,
	Welcome:  true,
}

// aliases maps convenience routes onto their real destination.
var aliases = map[Route]Route{
	EmployeeDashboard: EmployeeCustomerManagement,
}

// Resolve follows route aliases to the concrete destination. Non-aliased
// routes resolve to themselves.
func Resolve(route Route) Route {
	if target, ok := aliases[route]; ok {
		return target
	}
	return route
}
