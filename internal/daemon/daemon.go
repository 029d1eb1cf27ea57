// Package daemon manages the background monitor process.
package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gerunddev/contractbook/internal/config"
)

// WritePID writes the current process ID to the PID file
func WritePID() error {
	pidFile := config.PIDFilePath()

	if err := os.MkdirAll(filepath.Dir(pidFile), 0755); err != nil {
		return fmt.Errorf("failed to create PID directory: %w", err)
	}

	content := fmt.Sprintf("%d\n", os.Getpid())
	if err := os.WriteFile(pidFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	return nil
}

// ReadPID reads the monitor PID from the PID file
func ReadPID() (int, error) {
	content, err := os.ReadFile(config.PIDFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("monitor not running (PID file not found)")
		}
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}

	return pid, nil
}

// RemovePID removes the PID file
func RemovePID() error {
	if err := os.Remove(config.PIDFilePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// IsRunning checks if the monitor is currently running
func IsRunning() (bool, int, time.Time) {
	pid, err := ReadPID()
	if err != nil {
		return false, 0, time.Time{} // Not running if PID file doesn't exist
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false, 0, time.Time{}
	}

	// Signal 0 checks liveness without touching the process
	if err := process.Signal(syscall.Signal(0)); err != nil {
		// Process doesn't exist, clean up stale PID file
		if cleanupErr := RemovePID(); cleanupErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove stale PID file: %v\n", cleanupErr)
		}
		return false, 0, time.Time{}
	}

	// PID file modification time approximates the start time
	var startTime time.Time
	if info, err := os.Stat(config.PIDFilePath()); err == nil {
		startTime = info.ModTime()
	}

	return true, pid, startTime
}

// Stop stops the monitor by sending SIGTERM
func Stop() error {
	running, pid, _ := IsRunning()
	if !running {
		return fmt.Errorf("monitor is not running")
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to send SIGTERM: %w", err)
	}

	return nil
}

// Daemonize starts the process as a background monitor
func Daemonize(args []string) error {
	running, pid, _ := IsRunning()
	if running {
		return fmt.Errorf("monitor already running with PID %d", pid)
	}

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	cmd := exec.Command(executable, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start monitor: %w", err)
	}

	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release monitor process: %w", err)
	}

	return nil
}
