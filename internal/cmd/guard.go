package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborbank/teller/internal/errors"
	"github.com/harborbank/teller/internal/guard"
	"github.com/harborbank/teller/internal/routes"
)

var guardCmd = &cobra.Command{
	Use:   "guard <route>",
	Short: "Show where a navigation attempt would land",
	Long: `Show where a navigation attempt would land for the current session.

Useful when a screen seems unreachable: the command evaluates the
access rules exactly as the UI does and prints the decision.

Examples:
  teller guard customer-atm
  teller guard employee-customer-management --from login`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		target, err := parseRoute(args[0])
		if err != nil {
			return err
		}

		from := routes.Login
		if name, _ := cmd.Flags().GetString("from"); name != "" {
			if from, err = parseRoute(name); err != nil {
				return err
			}
		}

		g := guard.New(e.sessions, e.logger)
		outcome := g.Evaluate(target, from)

		fmt.Printf("Target:   %s\n", target)
		fmt.Printf("From:     %s\n", from)
		fmt.Printf("Decision: %s\n", outcome)
		if outcome.Decision == guard.DecisionRedirect {
			fmt.Printf("Lands on: %s\n", routes.Resolve(outcome.Target))
		}
		return nil
	},
}

// parseRoute maps a route name onto a known route, following aliases.
func parseRoute(name string) (routes.Route, error) {
	candidate := routes.Resolve(routes.Route(name))
	for _, policy := range routes.All() {
		if policy.Route == candidate {
			return candidate, nil
		}
	}
	return "", errors.NewRouteUnknownError(name)
}

func init() {
	guardCmd.Flags().String("from", "", "route the attempt starts from (default login)")
	rootCmd.AddCommand(guardCmd)
}
