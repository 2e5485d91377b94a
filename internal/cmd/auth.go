package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/harborbank/teller/internal/api"
	"github.com/harborbank/teller/internal/routes"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the bank session",
	Long: `Manage the bank session stored in the teller directory.

Subcommands:
  login     Sign in with email and password
  register  Create a customer account and sign in
  logout    Sign out and clear the stored session
  status    Show who is signed in

Examples:
  teller auth login --email anna@example.com
  teller auth status
  teller auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the bank",
	Long: `Sign in to the bank with your email and password.

The session token and profile are saved in the teller directory and
picked up by every later command. Missing flags are prompted for.

Examples:
  teller auth login --email anna@example.com --password mypass
  teller auth login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}
		if password == "" {
			return fmt.Errorf("password is required")
		}

		resp, err := e.client.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		if err := e.sessions.Save(resp.Token, resp.User); err != nil {
			return err
		}

		fmt.Printf("Signed in as %s %s (%s).\n", resp.User.FirstName, resp.User.LastName, resp.User.Role)
		if resp.User.Role == routes.RoleCustomer && !resp.User.Approved {
			fmt.Println("Your account is waiting for employee approval.")
		}
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a customer account",
	Long: `Create a customer account and sign in with it.

New accounts start unapproved; an employee has to approve the account
before the ATM and transfers open up. Missing flags are prompted for.

Examples:
  teller auth register --email anna@example.com --first-name Anna --last-name Kovacs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		req := api.RegisterRequest{}
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")

		if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("First name").Value(&req.FirstName),
				huh.NewInput().Title("Last name").Value(&req.LastName),
				huh.NewInput().Title("Email").Value(&req.Email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&req.Password),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
		}
		if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
			return fmt.Errorf("first name, last name, email, and password are required")
		}

		resp, err := e.client.Register(cmd.Context(), req)
		if err != nil {
			return err
		}
		if err := e.sessions.Save(resp.Token, resp.User); err != nil {
			return err
		}

		fmt.Printf("Account created. Signed in as %s %s.\n", resp.User.FirstName, resp.User.LastName)
		fmt.Println("An employee has to approve your account before you can bank.")
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		rec := e.sessions.Session()
		if rec.Absent() {
			fmt.Println("Not signed in.")
			return nil
		}

		fmt.Printf("Signing out %s.\n", rec.User.Email)
		e.sessions.Logout()

		fmt.Println("Signed out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is signed in",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}

		rec := e.sessions.Session()
		if rec.Absent() {
			fmt.Println("Not signed in.")
			fmt.Println()
			fmt.Println("Use 'teller auth login' to sign in.")
			return nil
		}

		fmt.Printf("Signed in:  %s %s\n", rec.User.FirstName, rec.User.LastName)
		fmt.Printf("Email:      %s\n", rec.User.Email)
		fmt.Printf("Role:       %s\n", rec.User.Role)
		if rec.User.Role == routes.RoleCustomer {
			if rec.User.Approved {
				fmt.Println("Approved:   yes")
			} else {
				fmt.Println("Approved:   no (waiting for an employee)")
			}
		}
		fmt.Printf("Session:    %s\n", e.store.Path())
		return nil
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	authLoginCmd.Flags().String("email", "", "Email address")
	authLoginCmd.Flags().String("password", "", "Password")

	authRegisterCmd.Flags().String("email", "", "Email address")
	authRegisterCmd.Flags().String("password", "", "Password")
	authRegisterCmd.Flags().String("first-name", "", "First name")
	authRegisterCmd.Flags().String("last-name", "", "Last name")

	rootCmd.AddCommand(authCmd)
}
