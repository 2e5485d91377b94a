package routes

// Policy is the static access-requirement descriptor for one route.
//
// Entries are defined at startup and never mutated. RequiredRole is only
// consulted when RequiresAuth is set; RequiresApproval is only meaningful
// for customer routes, since employees have no approval concept.
type Policy struct {
	Route            Route
	RequiresAuth     bool
	RequiredRole     Role
	RequiresApproval bool
}

// table maps every declared route to exactly one policy entry.
var table = map[Route]Policy{
	Welcome:  {Route: Welcome},
	Login:    {Route: Login},
	Register: {Route: Register},
	Root:     {Route: Root},
	NotFound: {Route: NotFound},

	CustomerATM: {
		Route:            CustomerATM,
		RequiresAuth:     true,
		RequiredRole:     RoleCustomer,
		RequiresApproval: true,
	},
	CustomerTransfer: {
		Route:            CustomerTransfer,
		RequiresAuth:     true,
		RequiredRole:     RoleCustomer,
		RequiresApproval: true,
	},

	EmployeeCustomerManagement: {
		Route:        EmployeeCustomerManagement,
		RequiresAuth: true,
		RequiredRole: RoleEmployee,
	},
	EmployeeApprovalQueue: {
		Route:        EmployeeApprovalQueue,
		RequiresAuth: true,
		RequiredRole: RoleEmployee,
	},
	EmployeeTransfer: {
		Route:        EmployeeTransfer,
		RequiresAuth: true,
		RequiredRole: RoleEmployee,
	},
	EmployeeAccountSettings: {
		Route:        EmployeeAccountSettings,
		RequiresAuth: true,
		RequiredRole: RoleEmployee,
	},
	EmployeeAllTransfers: {
		Route:        EmployeeAllTransfers,
		RequiresAuth: true,
		RequiredRole: RoleEmployee,
	},

	EmployeeDashboard: {
		Route:        EmployeeDashboard,
		RequiresAuth: true,
		RequiredRole: RoleEmployee,
	},
}

// PolicyFor returns the policy entry for route. The lookup is total:
// unknown routes fall back to the public not-found entry, so a policy
// miss is never fatal.
func PolicyFor(route Route) Policy {
	if policy, ok := table[route]; ok {
		return policy
	}
	return table[NotFound]
}

// All returns every declared policy entry. The slice is a copy; mutating
// it does not affect the table.
func All() []Policy {
	policies := make([]Policy, 0, len(table))
	for _, route := range ordered {
		policies = append(policies, table[route])
	}
	return policies
}

// ordered fixes a stable listing order for All.
var ordered = []Route{
	Welcome,
	Login,
	Register,
	EmployeeDashboard,
	EmployeeCustomerManagement,
	EmployeeApprovalQueue,
	EmployeeTransfer,
	EmployeeAccountSettings,
	EmployeeAllTransfers,
	CustomerATM,
	CustomerTransfer,
	Root,
	NotFound,
}
