// Worker commands: manage employee records.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Manage workers",
}

var (
	workerName    string
	workerRUT     string
	workerPhone   string
	workerAddress string
	workerEmail   string
	workerRole    string
	workerSalary  float64
	workerNotes   string
	workerAll     bool
)

var workerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a worker",
	RunE:  runWorkerAdd,
}

var workerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workers (active by default)",
	RunE:  runWorkerList,
}

var workerSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search active workers by name or RUT",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkerSearch,
}

var workerRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Deactivate a worker",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkerRm,
}

var workerToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a worker between active and inactive",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkerToggle,
}

func init() {
	workerAddCmd.Flags().StringVar(&workerName, "name", "", "worker name (required)")
	workerAddCmd.Flags().StringVar(&workerRUT, "rut", "", "identity document")
	workerAddCmd.Flags().StringVar(&workerPhone, "phone", "", "phone number")
	workerAddCmd.Flags().StringVar(&workerAddress, "address", "", "address")
	workerAddCmd.Flags().StringVar(&workerEmail, "email", "", "email address")
	workerAddCmd.Flags().StringVar(&workerRole, "role", "", "position")
	workerAddCmd.Flags().Float64Var(&workerSalary, "salary", 0, "salary")
	workerAddCmd.Flags().StringVar(&workerNotes, "notes", "", "free-form notes")
	_ = workerAddCmd.MarkFlagRequired("name")

	workerListCmd.Flags().BoolVar(&workerAll, "all", false, "include inactive workers")

	workerCmd.AddCommand(workerAddCmd)
	workerCmd.AddCommand(workerListCmd)
	workerCmd.AddCommand(workerSearchCmd)
	workerCmd.AddCommand(workerRmCmd)
	workerCmd.AddCommand(workerToggleCmd)
}

func runWorkerAdd(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	w := &types.Worker{
		Name:    workerName,
		RUT:     workerRUT,
		Phone:   workerPhone,
		Address: workerAddress,
		Email:   workerEmail,
		Role:    workerRole,
		Salary:  workerSalary,
		Notes:   workerNotes,
		Active:  true,
	}
	if err := svcs.Workers.Save(w); err != nil {
		return fmt.Errorf("create worker: %w", err)
	}

	if flagJSON {
		return printJSON(w)
	}
	fmt.Printf("Created worker %s: %s\n", idString(w.ID), w.Name)
	return nil
}

func runWorkerList(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	workers, err := svcs.Workers.GetAll(workerAll)
	if err != nil {
		return fmt.Errorf("list workers: %w", err)
	}

	if flagJSON {
		return printJSON(workers)
	}
	for _, w := range workers {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
			idString(w.ID), w.Name, w.RUT, w.Role, activeString(w.Active))
	}
	return nil
}

func runWorkerSearch(cmd *cobra.Command, args []string) error {
	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	workers, err := svcs.Workers.Search(args[0])
	if err != nil {
		return fmt.Errorf("search workers: %w", err)
	}

	if flagJSON {
		return printJSON(workers)
	}
	for _, w := range workers {
		fmt.Printf("%s\t%s\t%s\n", idString(w.ID), w.Name, w.RUT)
	}
	return nil
}

func runWorkerRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := svcs.Workers.Delete(id); err != nil {
		return fmt.Errorf("remove worker: %w", err)
	}
	fmt.Printf("Worker %d deactivated\n", id)
	return nil
}

func runWorkerToggle(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, svcs, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	w, err := svcs.Workers.ToggleStatus(id)
	if err != nil {
		return fmt.Errorf("toggle worker: %w", err)
	}
	if w == nil {
		return fmt.Errorf("worker %d not found", id)
	}
	fmt.Printf("Worker %d is now %s\n", id, activeString(w.Active))
	return nil
}
