package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harborbank/teller/internal/guard"
	"github.com/harborbank/teller/internal/nav"
	"github.com/harborbank/teller/internal/routes"
	"github.com/harborbank/teller/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the full-screen banking UI",
	Long: `Open the full-screen banking UI.

The UI starts from the stored session: a signed-out user lands on the
sign-in screen, an employee on customer management, an approved
customer on the ATM, and a customer waiting for approval on the
welcome screen. Every screen change is checked against the same rules,
so screens outside the signed-in role are unreachable.

Examples:
  teller ui
  teller ui --api-url http://localhost:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		router := nav.NewRouter(routes.Login, e.logger)
		g := guard.New(e.sessions, e.logger)
		router.BeforeEach(func(target, from routes.Route) guard.Outcome {
			return g.Evaluate(target, from)
		})
		e.sessions.SetNavigator(router)

		model := tui.NewModel(router, e.sessions, e.client, e.bus, e.logger)

		program := tea.NewProgram(model,
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("ui failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
