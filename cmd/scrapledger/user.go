// User commands: manage application accounts.
package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var (
	userUsername string
	userFullName string
	userRole     string
	userAll      bool
)

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user account",
	Long: `Add creates an account with a generated initial password, printed
exactly once.

Example:
  scrapledger user add --username maria --name "Maria P." --role admin`,
	RunE: runUserAdd,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts (active by default)",
	RunE:  runUserList,
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd <username>",
	Short: "Change an account password",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserPasswd,
}

var userRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Deactivate a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserRm,
}

func init() {
	userAddCmd.Flags().StringVar(&userUsername, "username", "", "login name (required)")
	userAddCmd.Flags().StringVar(&userFullName, "name", "", "display name")
	userAddCmd.Flags().StringVar(&userRole, "role", types.RoleUser, "role: admin or user")
	_ = userAddCmd.MarkFlagRequired("username")

	userListCmd.Flags().BoolVar(&userAll, "all", false, "include inactive accounts")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userPasswdCmd)
	userCmd.AddCommand(userRmCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	u := &types.User{
		Username: userUsername,
		Name:     userFullName,
		Role:     userRole,
		IsActive: true,
	}
	initial, err := svcs.Users.Save(u)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Printf("Created user %s: %s\n", idString(u.ID), u.Username)
	fmt.Printf("Initial password: %s\n", initial)
	return nil
}

func runUserList(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	users, err := svcs.Users.GetAll(userAll)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	if flagJSON {
		// The hash stays out of the JSON output as well.
		type userOut struct {
			ID       *int64 `json:"id"`
			Username string `json:"username"`
			Name     string `json:"name"`
			Role     string `json:"role"`
			IsActive bool   `json:"is_active"`
		}
		out := make([]userOut, 0, len(users))
		for _, u := range users {
			out = append(out, userOut{u.ID, u.Username, u.Name, u.Role, u.IsActive})
		}
		return printJSON(out)
	}
	for _, u := range users {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
			idString(u.ID), u.Username, u.Name, u.Role, activeString(u.IsActive))
	}
	return nil
}

func runUserPasswd(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	u, err := svcs.Users.GetByUsername(args[0])
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return fmt.Errorf("user %q not found", args[0])
	}

	fmt.Print("New password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	if err := svcs.Users.ChangePassword(*u.ID, string(pw)); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	fmt.Printf("Password changed for %s\n", u.Username)
	return nil
}

func runUserRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := svcs.Users.Delete(id); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	fmt.Printf("User %d deactivated\n", id)
	return nil
}
