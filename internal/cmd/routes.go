package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harborbank/teller/internal/routes"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List every screen and its access rules",
	Long: `List every screen the client knows, with the authentication, role,
and approval requirements that apply to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ROUTE\tAUTH\tROLE\tAPPROVAL")

		for _, policy := range routes.All() {
			auth := "-"
			if policy.RequiresAuth {
				auth = "required"
			}
			role := "-"
			if policy.RequiredRole != "" {
				role = string(policy.RequiredRole)
			}
			approval := "-"
			if policy.RequiresApproval {
				approval = "required"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", policy.Route, auth, role, approval)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
