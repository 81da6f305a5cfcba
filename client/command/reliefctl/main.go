package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitmark-inc/relief-api/client"
	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
)

var (
	serverURL string
	actorID   string
	actorRole string
)

var rootCmd = &cobra.Command{
	Use:          "reliefctl",
	Short:        "Command line client of the relief api",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "relief api endpoint")
	rootCmd.PersistentFlags().StringVar(&actorID, "actor", "", "actor id sent as Actor-Id")
	rootCmd.PersistentFlags().StringVar(&actorRole, "role", string(schema.RoleRequester), "actor role sent as Actor-Role")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(transitionCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
}

func newClient() (*client.Client, error) {
	if actorID == "" {
		return nil, fmt.Errorf("--actor is required")
	}

	role, err := schema.ParseRole(actorRole)
	if err != nil {
		return nil, err
	}

	return client.New(serverURL, lifecycle.Actor{ID: actorID, Role: role}), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
