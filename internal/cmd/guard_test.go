package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborbank/teller/internal/errors"
	"github.com/harborbank/teller/internal/routes"
)

func TestParseRouteKnown(t *testing.T) {
	got, err := parseRoute("customer-atm")

	require.NoError(t, err)
	assert.Equal(t, routes.CustomerATM, got)
}

func TestParseRouteFollowsAlias(t *testing.T) {
	got, err := parseRoute(string(routes.EmployeeDashboard))

	require.NoError(t, err)
	assert.Equal(t, routes.EmployeeCustomerManagement, got)
}

func TestParseRouteUnknown(t *testing.T) {
	_, err := parseRoute("no-such-screen")

	require.Error(t, err)
	var tellerErr *errors.TellerError
	require.ErrorAs(t, err, &tellerErr)
	assert.Equal(t, errors.ErrCodeRouteUnknown, tellerErr.Code)
}
