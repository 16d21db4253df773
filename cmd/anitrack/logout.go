package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		a.Session().Logout()
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
