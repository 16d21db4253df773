package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		a.Session().FetchUser(context.Background())
		user := a.Session().User()
		if user == nil {
			fmt.Println("Not signed in. Use 'anitrack login <username>'.")
			return nil
		}
		fmt.Printf("%s <%s> (id %d)\n", user.Username, user.Email, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
