package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tradeify/tradeify/internal/client/api"
	"github.com/tradeify/tradeify/internal/client/cli"
	"github.com/tradeify/tradeify/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "tradeify-client.db", "Path to local session database")
	flag.Usage = cli.PrintUsage
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	sessions, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open local database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = sessions.Close()
	}()

	apiClient := api.NewClient(*serverURL)

	c := cli.New(apiClient, sessions)
	c.Run(ctx, args[0], args[1:])
}

func printVersion() {
	fmt.Printf("Tradeify Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
