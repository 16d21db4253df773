package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Sign in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Print("Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimSpace(line)
		}

		ctx := context.Background()
		token, err := a.Client().Login(ctx, args[0], password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := a.Session().Login(ctx, token.AccessToken); err != nil {
			return err
		}

		user := a.Session().User()
		if user == nil {
			return fmt.Errorf("token accepted but identity could not be resolved")
		}
		fmt.Printf("✅ Signed in as %s\n", user.Username)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
}
