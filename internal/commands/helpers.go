package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gerunddev/contractbook/internal/config"
	"github.com/gerunddev/contractbook/internal/filter"
	"github.com/gerunddev/contractbook/internal/logger"
	"github.com/gerunddev/contractbook/internal/registry"
	"github.com/gerunddev/contractbook/internal/source"
)

// loadConfig loads the configuration, applying common command-line overrides:
// --url, --file, and --config.
func loadConfig(args []string) *config.Config {
	path := config.ConfigPath()
	if v, ok := flagValue(args, "--config"); ok {
		path = v
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if v, ok := flagValue(args, "--url"); ok {
		cfg.DocumentURL = v
	}
	if v, ok := flagValue(args, "--file"); ok {
		cfg.FallbackFile = v
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	return cfg
}

// flagValue extracts a --flag value from an argument list
func flagValue(args []string, flag string) (string, bool) {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1], true
		}
		if strings.HasPrefix(arg, flag+"=") {
			return arg[len(flag)+1:], true
		}
	}
	return "", false
}

// hasFlag reports whether a bare flag is present in an argument list
func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

// valueFlags are the flags that consume the argument after them
var valueFlags = map[string]bool{
	"--config":   true,
	"--url":      true,
	"--file":     true,
	"--network":  true,
	"--category": true,
	"--search":   true,
	"--interval": true,
}

// positionalArgs returns the arguments that are not flags or flag values
func positionalArgs(args []string) []string {
	out := []string{}
	skip := false
	for _, arg := range args {
		if skip {
			skip = false
			continue
		}
		if strings.HasPrefix(arg, "--") {
			if valueFlags[arg] {
				skip = true
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}

// fetchRegistry acquires and parses the configured document
func fetchRegistry(cfg *config.Config, log *logger.Logger) (*registry.Registry, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout+5*time.Second)
	defer cancel()

	res, err := source.NewFetcher(cfg, log).Fetch(ctx)
	if err != nil {
		return nil, "", err
	}

	return registry.Parse(res.Text), res.Origin, nil
}

// filterParams builds filter parameters from common command-line flags
func filterParams(args []string) filter.Params {
	var p filter.Params
	if v, ok := flagValue(args, "--network"); ok {
		p.Network = v
	}
	if v, ok := flagValue(args, "--category"); ok {
		p.Category = v
	}
	if v, ok := flagValue(args, "--search"); ok {
		p.Query = v
	}
	return p
}

// ParseLogFile reads the last N lines from the log file and extracts the
// most recent completed check
func ParseLogFile(logPath string, maxLines int) ([]string, time.Time, int) {
	content, err := os.ReadFile(logPath)
	if err != nil {
		return []string{"Unable to read log file"}, time.Time{}, 0
	}

	lines := strings.Split(string(content), "\n")

	startIdx := 0
	if len(lines) > maxLines {
		startIdx = len(lines) - maxLines
	}
	recentLines := lines[startIdx:]

	var lastCheck time.Time
	added := 0

	// Look for the most recent "check completed" line
	for i := len(recentLines) - 1; i >= 0; i-- {
		line := recentLines[i]
		if strings.Contains(line, "check completed") {
			// Format: 2025-11-27 14:11:57 INFO check completed
			if len(line) > 19 {
				if t, err := time.Parse("2006-01-02 15:04:05", line[:19]); err == nil {
					lastCheck = t
				}
			}

			if idx := strings.Index(line, "added="); idx != -1 {
				_, _ = fmt.Sscanf(line[idx:], "added=%d", &added) //nolint:errcheck // best effort parsing
			}
			break
		}
	}

	return recentLines, lastCheck, added
}
