package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerunddev/contractbook/internal/daemon"
	"github.com/gerunddev/contractbook/internal/logger"
	"github.com/gerunddev/contractbook/internal/styles"
	"github.com/gerunddev/contractbook/internal/watch"
)

// Watch runs the document monitor in the foreground
func Watch(args []string) {
	cfg := loadConfig(args)

	if v, ok := flagValue(args, "--interval"); ok {
		interval, err := time.ParseDuration(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Invalid interval: %v\n", err)
			os.Exit(1)
		}
		cfg.Interval = interval
	}

	if err := daemon.WritePID(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PID file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := daemon.RemovePID(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove PID file on shutdown: %v\n", err)
		}
	}()

	var log *logger.Logger
	if cfg.LogFile != "" {
		l, cleanup, err := logger.NewFileLogger(cfg.LogFile)
		if err == nil {
			defer cleanup()
			log = l
		} else {
			log = logger.New(os.Stderr)
		}
	} else {
		log = logger.New(os.Stderr)
	}

	log.ConfigLoaded(cfg.DocumentURL, cfg.FallbackFile, cfg.Interval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := watch.NewMonitor(cfg, log)
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Start starts the monitor in background mode
func Start(args []string) {
	running, pid, _ := daemon.IsRunning()
	if running {
		fmt.Println(styles.ErrorStyle.Render(fmt.Sprintf("✗ Monitor already running with PID %d", pid)))
		os.Exit(1)
	}

	// Build args for the background process
	monitorArgs := []string{"watch"}
	if v, ok := flagValue(args, "--interval"); ok {
		monitorArgs = append(monitorArgs, "--interval", v)
	}
	if v, ok := flagValue(args, "--config"); ok {
		monitorArgs = append(monitorArgs, "--config", v)
	}

	if err := daemon.Daemonize(monitorArgs); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to start monitor: " + err.Error()))
		os.Exit(1)
	}

	// Give it a moment to start
	time.Sleep(500 * time.Millisecond)

	running, pid, _ = daemon.IsRunning()
	if running {
		fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Monitor started with PID %d", pid)))
		fmt.Println(styles.DimStyle.Render("  Run 'contractbook status' to check on it"))
	} else {
		fmt.Println(styles.ErrorStyle.Render("✗ Monitor failed to start"))
		os.Exit(1)
	}
}

// Stop stops the running monitor
func Stop() {
	running, pid, _ := daemon.IsRunning()
	if !running {
		fmt.Println(styles.DimStyle.Render("Monitor is not running"))
		return
	}

	fmt.Printf("Stopping monitor (PID %d)...\n", pid)

	if err := daemon.Stop(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to stop monitor: " + err.Error()))
		os.Exit(1)
	}

	for i := 0; i < 10; i++ {
		time.Sleep(500 * time.Millisecond)
		running, _, _ = daemon.IsRunning()
		if !running {
			break
		}
	}

	if running {
		fmt.Println(styles.ErrorStyle.Render("✗ Monitor did not stop gracefully"))
		os.Exit(1)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Monitor stopped"))
}

// Status displays the monitor state and the most recent check
func Status(args []string) {
	cfg := loadConfig(args)

	running, pid, startTime := daemon.IsRunning()
	if running {
		fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Monitor running with PID %d", pid)))
		if !startTime.IsZero() {
			fmt.Println(styles.DimStyle.Render("  started " + startTime.Format(time.DateTime)))
		}
	} else {
		fmt.Println(styles.DimStyle.Render("Monitor is not running"))
	}

	fmt.Println()
	fmt.Printf("%s %s\n", styles.DimStyle.Render("Document:"), cfg.DocumentURL)
	fmt.Printf("%s %s\n", styles.DimStyle.Render("Fallback:"), cfg.FallbackFile)
	fmt.Printf("%s %s\n", styles.DimStyle.Render("Interval:"), cfg.Interval)

	if cfg.LogFile == "" {
		return
	}

	_, lastCheck, added := ParseLogFile(cfg.LogFile, 50)
	if !lastCheck.IsZero() {
		fmt.Printf("%s %s (%d added)\n",
			styles.DimStyle.Render("Last check:"), lastCheck.Format(time.DateTime), added)
	}
}
