package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/gerunddev/contractbook/internal/styles"
)

// Install generates system service files so the monitor starts automatically
func Install() {
	fmt.Println(styles.TitleStyle.Render("Contractbook Install"))
	fmt.Println()

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to get home directory: " + err.Error()))
		os.Exit(1)
	}

	execPath, err := os.Executable()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to get executable path: " + err.Error()))
		os.Exit(1)
	}

	switch runtime.GOOS {
	case "darwin":
		// macOS: Generate launchd plist
		plistPath := filepath.Join(home, "Library", "LaunchAgents", "com.contractbook.plist")

		if err := os.MkdirAll(filepath.Dir(plistPath), 0755); err != nil {
			fmt.Println(styles.ErrorStyle.Render("✗ Failed to create LaunchAgents directory: " + err.Error()))
			os.Exit(1)
		}

		plistContent := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>com.contractbook</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
		<string>watch</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<true/>
	<key>StandardOutPath</key>
	<string>/tmp/contractbook.out.log</string>
	<key>StandardErrorPath</key>
	<string>/tmp/contractbook.err.log</string>
</dict>
</plist>`, execPath)

		if err := os.WriteFile(plistPath, []byte(plistContent), 0644); err != nil {
			fmt.Println(styles.ErrorStyle.Render("✗ Failed to write plist file: " + err.Error()))
			os.Exit(1)
		}

		fmt.Println(styles.SuccessStyle.Render("✓ Service file created: " + plistPath))
		fmt.Println()
		fmt.Println("To enable the service:")
		fmt.Println(styles.DimStyle.Render("  launchctl load " + plistPath))
		fmt.Println()
		fmt.Println("To disable the service:")
		fmt.Println(styles.DimStyle.Render("  launchctl unload " + plistPath))

	case "linux":
		// Linux: Generate systemd user service
		servicePath := filepath.Join(home, ".config", "systemd", "user", "contractbook.service")

		if err := os.MkdirAll(filepath.Dir(servicePath), 0755); err != nil {
			fmt.Println(styles.ErrorStyle.Render("✗ Failed to create systemd user directory: " + err.Error()))
			os.Exit(1)
		}

		serviceContent := fmt.Sprintf(`[Unit]
Description=Contractbook - contract deployment record monitor
After=network.target

[Service]
Type=simple
ExecStart=%s watch
Restart=always
RestartSec=10

[Install]
WantedBy=default.target`, execPath)

		if err := os.WriteFile(servicePath, []byte(serviceContent), 0644); err != nil {
			fmt.Println(styles.ErrorStyle.Render("✗ Failed to write service file: " + err.Error()))
			os.Exit(1)
		}

		fmt.Println(styles.SuccessStyle.Render("✓ Service file created: " + servicePath))
		fmt.Println()
		fmt.Println("To enable the service:")
		fmt.Println(styles.DimStyle.Render("  systemctl --user daemon-reload"))
		fmt.Println(styles.DimStyle.Render("  systemctl --user enable contractbook.service"))
		fmt.Println(styles.DimStyle.Render("  systemctl --user start contractbook.service"))
		fmt.Println()
		fmt.Println("To disable the service:")
		fmt.Println(styles.DimStyle.Render("  systemctl --user stop contractbook.service"))
		fmt.Println(styles.DimStyle.Render("  systemctl --user disable contractbook.service"))

	default:
		fmt.Println(styles.ErrorStyle.Render("✗ Unsupported operating system: " + runtime.GOOS))
		fmt.Println("Supported platforms: macOS (darwin), Linux")
		os.Exit(1)
	}
}

// Uninstall removes system service files
func Uninstall() {
	fmt.Println(styles.TitleStyle.Render("Contractbook Uninstall"))
	fmt.Println()

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to get home directory: " + err.Error()))
		os.Exit(1)
	}

	switch runtime.GOOS {
	case "darwin":
		plistPath := filepath.Join(home, "Library", "LaunchAgents", "com.contractbook.plist")

		if _, err := os.Stat(plistPath); os.IsNotExist(err) {
			fmt.Println(styles.WarningStyle.Render("⚠ Service file not found: " + plistPath))
			fmt.Println("Nothing to uninstall.")
			return
		}

		// Try to unload the service first (ignore errors if not loaded)
		fmt.Println("Attempting to unload service...")
		if err := exec.Command("launchctl", "unload", plistPath).Run(); err != nil {
			fmt.Println(styles.WarningStyle.Render("⚠ Could not unload service (may not be loaded): " + err.Error()))
		}

		if err := os.Remove(plistPath); err != nil {
			fmt.Println(styles.ErrorStyle.Render("✗ Failed to remove service file: " + err.Error()))
			os.Exit(1)
		}

		fmt.Println(styles.SuccessStyle.Render("✓ Service file removed: " + plistPath))

	case "linux":
		servicePath := filepath.Join(home, ".config", "systemd", "user", "contractbook.service")

		if _, err := os.Stat(servicePath); os.IsNotExist(err) {
			fmt.Println(styles.WarningStyle.Render("⚠ Service file not found: " + servicePath))
			fmt.Println("Nothing to uninstall.")
			return
		}

		// Try to stop and disable the service first (ignore errors if not running)
		fmt.Println("Attempting to stop and disable service...")
		if err := exec.Command("systemctl", "--user", "stop", "contractbook.service").Run(); err != nil {
			fmt.Println(styles.WarningStyle.Render("⚠ Could not stop service (may not be running): " + err.Error()))
		}
		if err := exec.Command("systemctl", "--user", "disable", "contractbook.service").Run(); err != nil {
			fmt.Println(styles.WarningStyle.Render("⚠ Could not disable service (may not be enabled): " + err.Error()))
		}

		if err := os.Remove(servicePath); err != nil {
			fmt.Println(styles.ErrorStyle.Render("✗ Failed to remove service file: " + err.Error()))
			os.Exit(1)
		}

		if err := exec.Command("systemctl", "--user", "daemon-reload").Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload systemd daemon: %v\n", err)
		}

		fmt.Println(styles.SuccessStyle.Render("✓ Service file removed: " + servicePath))

	default:
		fmt.Println(styles.ErrorStyle.Render("✗ Unsupported operating system: " + runtime.GOOS))
		fmt.Println("Supported platforms: macOS (darwin), Linux")
		os.Exit(1)
	}
}
