// Shared helpers for scrapledger CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/scrapledger/internal/service"
	"github.com/mesh-intelligence/scrapledger/internal/sqlite"
	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// openLedger resolves the data directory and wires the store and services.
// The caller must defer store.Close().
func openLedger() (*sqlite.Store, *service.Services, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{DataDir: dataDir}
	store := sqlite.New(cfg)
	if err := store.Open(); err != nil {
		return nil, nil, fmt.Errorf("open ledger: %w", err)
	}

	svcs := service.New(store, nil, cliLogger())
	return store, svcs, nil
}

// cliLogger returns a development logger on --verbose, otherwise a no-op.
func cliLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// parseID parses a positional identity argument. Zero is a valid identity.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// printJSON writes the value as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// idString renders a possibly-absent identity for text output.
func idString(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

// activeString renders a soft-delete flag for text output.
func activeString(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// fatalf prints to stderr and exits with the system error code. Used for
// failures after the command already mutated state.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitSysError)
}
