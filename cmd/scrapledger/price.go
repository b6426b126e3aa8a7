// Price commands: manage the priced pairing between clients and materials.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Manage client material prices",
}

var (
	pricePrice float64
	priceTax   bool
	priceNotes string
)

var priceSetCmd = &cobra.Command{
	Use:   "set <client-id> <material-id>",
	Short: "Pair a material with a client at a price",
	Long: `Set pairs a material with a client. Each client-material pair exists
at most once; setting an already paired material fails, and its price is
changed with "price update" instead.

Example:
  scrapledger price set 3 7 --price 120.5 --tax`,
	Args: cobra.ExactArgs(2),
	RunE: runPriceSet,
}

var priceUpdateCmd = &cobra.Command{
	Use:   "update <pairing-id>",
	Short: "Change the price of an existing pairing",
	Args:  cobra.ExactArgs(1),
	RunE:  runPriceUpdate,
}

var priceListCmd = &cobra.Command{
	Use:   "list <client-id>",
	Short: "List a client's priced materials",
	Args:  cobra.ExactArgs(1),
	RunE:  runPriceList,
}

var priceAvailableCmd = &cobra.Command{
	Use:   "available <client-id>",
	Short: "List active materials not yet priced for a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runPriceAvailable,
}

var priceRmCmd = &cobra.Command{
	Use:   "rm <pairing-id>",
	Short: "Remove a pairing",
	Args:  cobra.ExactArgs(1),
	RunE:  runPriceRm,
}

func init() {
	priceSetCmd.Flags().Float64Var(&pricePrice, "price", 0, "unit price (required)")
	priceSetCmd.Flags().BoolVar(&priceTax, "tax", false, "price includes tax")
	priceSetCmd.Flags().StringVar(&priceNotes, "notes", "", "free-form notes")
	_ = priceSetCmd.MarkFlagRequired("price")

	priceUpdateCmd.Flags().Float64Var(&pricePrice, "price", 0, "unit price (required)")
	priceUpdateCmd.Flags().BoolVar(&priceTax, "tax", false, "price includes tax")
	priceUpdateCmd.Flags().StringVar(&priceNotes, "notes", "", "free-form notes")
	_ = priceUpdateCmd.MarkFlagRequired("price")

	priceCmd.AddCommand(priceSetCmd)
	priceCmd.AddCommand(priceUpdateCmd)
	priceCmd.AddCommand(priceListCmd)
	priceCmd.AddCommand(priceAvailableCmd)
	priceCmd.AddCommand(priceRmCmd)
}

func runPriceSet(cmd *cobra.Command, args []string) error {
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}
	materialID, err := parseID(args[1])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := svcs.Pricing.Assign(clientID, materialID, pricePrice, priceTax, priceNotes)
	if err != nil {
		if errors.Is(err, types.ErrDuplicatePair) {
			return fmt.Errorf("material %d is already priced for client %d; use \"price update\"", materialID, clientID)
		}
		return fmt.Errorf("set price: %w", err)
	}

	if flagJSON {
		return printJSON(p)
	}
	fmt.Printf("Pairing %s: client %d, material %d at %s\n",
		idString(p.ID), clientID, materialID, priceString(p.Price, p.IncludesTax))
	return nil
}

func runPriceUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := svcs.Pricing.Get(id)
	if err != nil {
		return fmt.Errorf("get pairing: %w", err)
	}
	if p == nil {
		return fmt.Errorf("pairing %d not found", id)
	}

	p.Price = pricePrice
	p.IncludesTax = priceTax
	if cmd.Flags().Changed("notes") {
		p.Notes = priceNotes
	}
	if err := svcs.Pricing.Update(p); err != nil {
		return fmt.Errorf("update price: %w", err)
	}
	fmt.Printf("Pairing %d updated to %s\n", id, priceString(p.Price, p.IncludesTax))
	return nil
}

func runPriceList(cmd *cobra.Command, args []string) error {
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	priced, err := svcs.Pricing.ListForClient(clientID)
	if err != nil {
		return fmt.Errorf("list prices: %w", err)
	}

	if flagJSON {
		return printJSON(priced)
	}
	for _, pm := range priced {
		fmt.Printf("%s\t%s\t%s\t%s\n",
			idString(pm.Pairing.ID), pm.Material.FullName(),
			priceString(pm.Pairing.Price, pm.Pairing.IncludesTax), pm.Pairing.Notes)
	}
	return nil
}

func runPriceAvailable(cmd *cobra.Command, args []string) error {
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	materials, err := svcs.Pricing.AvailableForClient(clientID)
	if err != nil {
		return fmt.Errorf("list available materials: %w", err)
	}

	if flagJSON {
		return printJSON(materials)
	}
	for _, m := range materials {
		fmt.Printf("%s\t%s\n", idString(m.ID), m.FullName())
	}
	return nil
}

func runPriceRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := svcs.Pricing.Remove(id)
	if err != nil {
		return fmt.Errorf("remove pairing: %w", err)
	}
	if !removed {
		return fmt.Errorf("pairing %d not found", id)
	}
	fmt.Printf("Pairing %d removed\n", id)
	return nil
}

func priceString(price float64, includesTax bool) string {
	if includesTax {
		return fmt.Sprintf("%.2f (tax included)", price)
	}
	return fmt.Sprintf("%.2f", price)
}
