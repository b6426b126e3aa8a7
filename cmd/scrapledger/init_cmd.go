// Init command: create the ledger and seed the first admin account.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ledger storage",
	Long: `Init creates the data directory, the database file, and the baseline
schema, then seeds an "admin" account if no user exists yet. The initial
admin password is generated and printed exactly once.

Example:
  scrapledger init
  scrapledger --data-dir /srv/ledger init`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	users, err := svcs.Users.GetAll(true)
	if err != nil {
		return fmt.Errorf("checking users: %w", err)
	}

	if len(users) > 0 {
		fmt.Printf("Ledger ready at %s\n", store.Path())
		return nil
	}

	admin := &types.User{
		Username: "admin",
		Name:     "Administrator",
		Role:     types.RoleAdmin,
		IsActive: true,
	}
	initial, err := svcs.Users.Save(admin)
	if err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}

	fmt.Printf("Ledger created at %s\n", store.Path())
	fmt.Printf("Admin account created. Initial password: %s\n", initial)
	fmt.Println("Change it with: scrapledger user passwd admin")
	return nil
}
