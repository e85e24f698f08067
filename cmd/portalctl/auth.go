package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	portal "github.com/swdepot/go-portal"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the portal",
	Long: `Authenticate against the portal and persist the session locally.

Examples:
  portalctl login --username alice --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		res, err := app.store.Login(cmd.Context(), portal.Credentials{
			Username: username,
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s", username)
		if res.User != nil {
			fmt.Printf(" (role: %s)", res.User.Role)
		}
		fmt.Println()
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.store.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new portal account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		password, _ := cmd.Flags().GetString("password")

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		profile, err := app.auth.Register(cmd.Context(), portal.Registration{
			Username: username,
			Email:    email,
			Phone:    phone,
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Registered %s. Use 'portalctl login' to sign in.\n", profile.Username)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		if app.store.Token() == "" {
			fmt.Println("Not logged in.")
			return nil
		}

		profile, err := app.store.FetchUserInfo(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Username: %s\n", profile.Username)
		fmt.Printf("Role:     %s\n", profile.Role)
		if profile.Email != "" {
			fmt.Printf("Email:    %s\n", profile.Email)
		}

		if info, err := portal.InspectToken(app.store.Token()); err == nil && info.ExpiresAt != nil {
			fmt.Printf("Token expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().String("username", "", "portal username")
	loginCmd.Flags().String("password", "", "portal password")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().String("username", "", "desired username")
	registerCmd.Flags().String("email", "", "contact email")
	registerCmd.Flags().String("phone", "", "contact phone")
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd)
}
