package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/solset/stringlens/config"
	"github.com/solset/stringlens/errors"
	"github.com/solset/stringlens/logger"
	"github.com/solset/stringlens/server"
)

// ServerCmd starts the stringlens HTTP API server
var ServerCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"serve"},
	Short:   "Start the stringlens HTTP API server",
	Long: `Launch the HTTP API for submitting strings, retrieving their computed
properties, and filtering the collection with structured parameters or
natural-language phrases.`,
	RunE: runServer,
}

var (
	serverPortFlag int
	serverDBPath   string
)

func init() {
	ServerCmd.Flags().IntVar(&serverPortFlag, "port", 0, "Listen port (overrides config)")
	ServerCmd.Flags().StringVar(&serverDBPath, "db-path", "", "Custom database path (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	if verbosity == 0 {
		verbosity = 1
	}

	// Port priority: --port flag > config system (env > project > user > system > default)
	serverPort := serverPortFlag
	if serverPort == 0 {
		serverPort = config.GetServerPort()
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	database, dbPath, err := openDatabase(serverDBPath)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	printStartupBanner(verbosity, dbPath)

	srv := server.New(database, dbPath, cfg, logger.Logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(serverPort)
	}()

	// Wait for shutdown signal (Ctrl+C)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return errors.Wrap(err, "server failed to start")
	case <-sigChan:
		// First Ctrl+C - graceful shutdown
		pterm.Info.Println("\nShutting down gracefully (press Ctrl+C again to force)...")

		shutdownDone := make(chan error, 1)
		go func() {
			shutdownDone <- srv.Stop()
		}()

		select {
		case err := <-shutdownDone:
			if err != nil {
				return fmt.Errorf("shutdown error: %w", err)
			}
			pterm.Success.Println("Server stopped cleanly")
			return nil
		case <-sigChan:
			// Second Ctrl+C - force immediate exit
			pterm.Warning.Println("\nForce shutdown - exiting immediately")
			os.Exit(1)
			return nil // unreachable
		}
	}
}
