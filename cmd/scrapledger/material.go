// Material commands: manage the recyclable materials catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Manage materials",
}

var (
	materialName        string
	materialDescription string
	materialType        string
	materialSubtype     string
	materialState       string
	materialCustom      string
	materialAll         bool
)

var materialAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a material",
	Long: `Add creates a material. Plastic materials may carry a subtype
(candy, gum, other) and a state (clean, dirty).

Example:
  scrapledger material add --name PET --type plastic --subtype candy --state clean
  scrapledger material add --name Cardboard --type custom`,
	RunE: runMaterialAdd,
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List materials (active by default)",
	RunE:  runMaterialList,
}

var materialShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one material",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaterialShow,
}

var materialRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a material (deactivates it when priced for a client)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaterialRm,
}

func init() {
	materialAddCmd.Flags().StringVar(&materialName, "name", "", "material name (required)")
	materialAddCmd.Flags().StringVar(&materialDescription, "description", "", "description")
	materialAddCmd.Flags().StringVar(&materialType, "type", types.MaterialTypePlastic, "material type: plastic or custom")
	materialAddCmd.Flags().StringVar(&materialSubtype, "subtype", "", "plastic subtype: candy, gum, or other")
	materialAddCmd.Flags().StringVar(&materialState, "state", "", "plastic state: clean or dirty")
	materialAddCmd.Flags().StringVar(&materialCustom, "custom-subtype", "", "name for subtype \"other\" or type \"custom\"")
	_ = materialAddCmd.MarkFlagRequired("name")

	materialListCmd.Flags().BoolVar(&materialAll, "all", false, "include inactive materials")

	materialCmd.AddCommand(materialAddCmd)
	materialCmd.AddCommand(materialListCmd)
	materialCmd.AddCommand(materialShowCmd)
	materialCmd.AddCommand(materialRmCmd)
}

func runMaterialAdd(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	m := &types.Material{
		Name:             materialName,
		Description:      materialDescription,
		MaterialType:     materialType,
		IsPlasticSubtype: materialSubtype != "",
		PlasticSubtype:   materialSubtype,
		PlasticState:     materialState,
		CustomSubtype:    materialCustom,
		IsActive:         true,
	}
	if err := svcs.Materials.Save(m); err != nil {
		return fmt.Errorf("create material: %w", err)
	}

	if flagJSON {
		return printJSON(m)
	}
	fmt.Printf("Created material %s: %s\n", idString(m.ID), m.FullName())
	return nil
}

func runMaterialList(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	materials, err := svcs.Materials.GetAll(materialAll)
	if err != nil {
		return fmt.Errorf("list materials: %w", err)
	}

	if flagJSON {
		return printJSON(materials)
	}
	for _, m := range materials {
		fmt.Printf("%s\t%s\t%s\t%s\n",
			idString(m.ID), m.FullName(), m.MaterialType, activeString(m.IsActive))
	}
	return nil
}

func runMaterialShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	m, err := svcs.Materials.GetByID(id)
	if err != nil {
		return fmt.Errorf("get material: %w", err)
	}
	if m == nil {
		return fmt.Errorf("material %d not found", id)
	}

	if flagJSON {
		return printJSON(m)
	}
	fmt.Printf("Material %s\n", idString(m.ID))
	fmt.Printf("  Name:        %s\n", m.FullName())
	fmt.Printf("  Type:        %s\n", m.MaterialType)
	fmt.Printf("  Description: %s\n", m.Description)
	fmt.Printf("  Status:      %s\n", activeString(m.IsActive))
	return nil
}

func runMaterialRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := svcs.Materials.Delete(id); err != nil {
		return fmt.Errorf("remove material: %w", err)
	}
	fmt.Printf("Material %d removed\n", id)
	return nil
}
