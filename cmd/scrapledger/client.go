// Client commands: manage the business's client records.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var (
	clientName     string
	clientBusiness string
	clientRUT      string
	clientAddress  string
	clientPhone    string
	clientEmail    string
	clientContact  string
	clientNotes    string
	clientType     string
	clientAll      bool
)

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a client",
	Long: `Add creates a client record.

Example:
  scrapledger client add --name "Acme" --business "Acme S.A." --rut 76.543.210-K`,
	RunE: runClientAdd,
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients (active by default)",
	RunE:  runClientList,
}

var clientShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientShow,
}

var clientSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search active clients by name, business name, RUT, or contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientSearch,
}

var clientRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Deactivate a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientRm,
}

func init() {
	clientAddCmd.Flags().StringVar(&clientName, "name", "", "client name (required)")
	clientAddCmd.Flags().StringVar(&clientBusiness, "business", "", "business name (required)")
	clientAddCmd.Flags().StringVar(&clientRUT, "rut", "", "tax identifier (required)")
	clientAddCmd.Flags().StringVar(&clientAddress, "address", "", "address")
	clientAddCmd.Flags().StringVar(&clientPhone, "phone", "", "phone number")
	clientAddCmd.Flags().StringVar(&clientEmail, "email", "", "email address")
	clientAddCmd.Flags().StringVar(&clientContact, "contact", "", "contact person")
	clientAddCmd.Flags().StringVar(&clientNotes, "notes", "", "free-form notes")
	clientAddCmd.Flags().StringVar(&clientType, "type", types.ClientTypeBoth, "client type: supplier, buyer, or both")
	_ = clientAddCmd.MarkFlagRequired("name")
	_ = clientAddCmd.MarkFlagRequired("business")
	_ = clientAddCmd.MarkFlagRequired("rut")

	clientListCmd.Flags().BoolVar(&clientAll, "all", false, "include inactive clients")

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientShowCmd)
	clientCmd.AddCommand(clientSearchCmd)
	clientCmd.AddCommand(clientRmCmd)
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	c := &types.Client{
		Name:          clientName,
		BusinessName:  clientBusiness,
		RUT:           clientRUT,
		Address:       clientAddress,
		Phone:         clientPhone,
		Email:         clientEmail,
		ContactPerson: clientContact,
		Notes:         clientNotes,
		IsActive:      true,
		ClientType:    clientType,
	}
	if err := svcs.Clients.Save(c); err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	if flagJSON {
		return printJSON(c)
	}
	fmt.Printf("Created client %s: %s\n", idString(c.ID), c.Name)
	return nil
}

func runClientList(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	clients, err := svcs.Clients.GetAll(clientAll)
	if err != nil {
		return fmt.Errorf("list clients: %w", err)
	}

	if flagJSON {
		return printJSON(clients)
	}
	for _, c := range clients {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
			idString(c.ID), c.Name, c.BusinessName, c.RUT, activeString(c.IsActive))
	}
	return nil
}

func runClientShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	c, err := svcs.Clients.GetByID(id)
	if err != nil {
		return fmt.Errorf("get client: %w", err)
	}
	if c == nil {
		return fmt.Errorf("client %d not found", id)
	}

	if flagJSON {
		return printJSON(c)
	}
	fmt.Printf("Client %s\n", idString(c.ID))
	fmt.Printf("  Name:      %s\n", c.Name)
	fmt.Printf("  Business:  %s\n", c.BusinessName)
	fmt.Printf("  RUT:       %s\n", c.RUT)
	fmt.Printf("  Contact:   %s\n", c.ContactPerson)
	fmt.Printf("  Type:      %s\n", c.ClientType)
	fmt.Printf("  Status:    %s\n", activeString(c.IsActive))
	return nil
}

func runClientSearch(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	clients, err := svcs.Clients.Search(args[0])
	if err != nil {
		return fmt.Errorf("search clients: %w", err)
	}

	if flagJSON {
		return printJSON(clients)
	}
	for _, c := range clients {
		fmt.Printf("%s\t%s\t%s\t%s\n", idString(c.ID), c.Name, c.BusinessName, c.RUT)
	}
	return nil
}

func runClientRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := svcs.Clients.Delete(id); err != nil {
		return fmt.Errorf("remove client: %w", err)
	}
	fmt.Printf("Client %d deactivated\n", id)
	return nil
}
