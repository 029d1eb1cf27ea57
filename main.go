package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/contractbook/internal/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "browse":
		commands.Browse(os.Args[2:])
	case "list", "ls":
		commands.List(os.Args[2:])
	case "show":
		commands.Show(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "watch":
		commands.Watch(os.Args[2:])
	case "start":
		commands.Start(os.Args[2:])
	case "stop":
		commands.Stop()
	case "status":
		commands.Status(os.Args[2:])
	case "init":
		commands.Init(os.Args[2:])
	case "install":
		commands.Install()
	case "uninstall":
		commands.Uninstall()
	case "version", "-v", "--version":
		fmt.Printf("contractbook v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`contractbook - Browse and monitor contract deployment records

Usage:
  contractbook <command> [options]

Commands:
  browse      Interactive deployment browser
  list        Print matching entries (--network, --category, --search, --json)
  show        Print one entry by title
  diff        Compare two deployments documents
  watch       Monitor the document in the foreground
  start       Start the monitor in the background
  stop        Stop the running monitor
  status      Display monitor state
  init        Write a starter config file
  install     Generate system service files for the monitor
  uninstall   Remove system service files
  version     Show version information
  help        Show this help message

Options:
  --config <path>   Use an alternate config file
  --url <url>       Override the document URL
  --file <path>     Override the local fallback file

Examples:
  contractbook init --url https://example.com/deployments.md
  contractbook browse
  contractbook list --network mainnet
  contractbook list --search multicall --json
  contractbook show GovernanceToken
  contractbook diff old/deployments.md new/deployments.md
  contractbook start --interval 10m
  contractbook status

Version: %s
`, version)
	fmt.Println(usage)
}
